// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-pqsig.
//
// go-pqsig is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package keymethod

import (
	"io"

	"github.com/jeremyhahn/go-pqsig/pkg/encoding"
	"github.com/jeremyhahn/go-pqsig/pkg/types"
)

// KeyMethod is the key lifecycle and encoding contract consumed by the
// surrounding library. The set of methods is the capability set for this
// key family; operations a scheme does not support (encryption, key
// agreement, parameter encoding) are simply absent from the contract
// rather than present as empty slots.
type KeyMethod interface {
	Algorithm() types.Algorithm

	DecodePublic(der []byte) (*KeyRecord, error)
	EncodePublic(rec *KeyRecord) ([]byte, error)
	ComparePublic(a, b *KeyRecord) CompareResult
	PrintPublic(w io.Writer, rec *KeyRecord, indent int) error

	DecodePrivate(der []byte) (*KeyRecord, error)
	EncodePrivate(rec *KeyRecord) ([]byte, error)
	PrintPrivate(w io.Writer, rec *KeyRecord, indent int) error

	Size(rec *KeyRecord) int
	Bits(rec *KeyRecord) int
	SecurityBits(rec *KeyRecord) int
	CompareParameters(a, b *KeyRecord) bool
	Free(rec *KeyRecord)

	ItemSign(primary, secondary *encoding.AlgorithmIdentifier) (ItemSignOutcome, error)
	ItemVerify(ai encoding.AlgorithmIdentifier) (ItemVerifyOutcome, error)
	SignatureInfo() SignatureInfo
}

// SignerMethod is the raw sign/verify/keygen contract consumed by the
// surrounding library's signing layer.
type SignerMethod interface {
	Algorithm() types.Algorithm

	Keygen() (*KeyRecord, error)
	Sign(rec *KeyRecord, message []byte) ([]byte, error)
	Verify(rec *KeyRecord, message, signature []byte) (bool, error)
	MaxSignatureLength(rec *KeyRecord) int
	Control(req ControlRequest, arg any) error

	// UsesCustomSignContext reports whether the scheme bypasses the
	// generic digest framework.
	UsesCustomSignContext() bool
}

var (
	_ KeyMethod    = (*Method)(nil)
	_ SignerMethod = (*Method)(nil)
)
