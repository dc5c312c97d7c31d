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
	"fmt"

	"github.com/jeremyhahn/go-pqsig/pkg/encoding"
	"github.com/jeremyhahn/go-pqsig/pkg/types"
)

// ItemSignOutcome tells the caller how to continue producing a signed
// structure after ItemSign returns.
type ItemSignOutcome int

const (
	// ItemSignRejected means the structure could not be prepared.
	ItemSignRejected ItemSignOutcome = iota

	// ItemSignDigest means the caller should continue through the
	// generic digest-then-sign path. Never returned by this scheme.
	ItemSignDigest

	// ItemSignDone means the signature was already produced. Never
	// returned by this scheme.
	ItemSignDone

	// ItemSignRaw means the algorithm identifiers are stamped and the
	// caller should sign the raw content with no digest.
	ItemSignRaw
)

// ItemVerifyOutcome tells the caller how to continue verifying a signed
// structure after the preflight check.
type ItemVerifyOutcome int

const (
	// ItemVerifyRejected means the structure's algorithm identifier does
	// not belong to this scheme.
	ItemVerifyRejected ItemVerifyOutcome = iota

	// ItemVerifyDone means verification already completed. Never
	// returned by this scheme.
	ItemVerifyDone

	// ItemVerifyProceed means the preflight passed and the caller should
	// continue with the generic digest-less verify initialization.
	ItemVerifyProceed
)

// ControlRequest selects a control operation.
type ControlRequest int

const (
	// ControlSetDigest configures the signing digest. Only a nil digest
	// is accepted; the scheme signs caller-supplied data directly.
	ControlSetDigest ControlRequest = iota

	// ControlDigestInit notifies the method that a digest context was
	// initialized. Accepted as a no-op.
	ControlDigestInit
)

// SignatureInfo describes signatures produced by the scheme, used when
// stamping signature metadata on signed structures. No digest algorithm
// is reported because the scheme signs raw content.
type SignatureInfo struct {
	Algorithm    types.Algorithm
	SecurityBits int
	TLSCapable   bool
}

// MaxSignatureLength returns the largest signature the record's
// algorithm can produce, for callers that size buffers before signing.
func (m *Method) MaxSignatureLength(rec *KeyRecord) int {
	return m.Size(rec)
}

// Sign signs the full message with the record's private key. The caller
// hashes first if hashing is desired; no digest is applied here. The
// returned signature is never longer than MaxSignatureLength.
func (m *Method) Sign(rec *KeyRecord, message []byte) ([]byte, error) {
	if rec == nil || rec.engine == nil || rec.privateBytes == nil {
		return nil, m.fail("sign", ErrNoPrivateKey)
	}

	signature, err := rec.engine.Sign(rec.privateBytes, message)
	if err != nil {
		return nil, m.fail("sign", err)
	}
	if max := rec.engine.Details().MaxSignatureLength; len(signature) > max {
		return nil, m.fail("sign", fmt.Errorf("%w: signature %d exceeds maximum %d",
			ErrSizeMismatch, len(signature), max))
	}
	return signature, nil
}

// Verify reports whether signature validates message under the record's
// public key. The boolean carries the verification result; the error
// return is reserved for operational failures (missing key material, nil
// arguments, engine faults) so callers can distinguish "signature
// invalid" from "verify call malfunctioned".
func (m *Method) Verify(rec *KeyRecord, message, signature []byte) (bool, error) {
	if rec == nil || rec.engine == nil || rec.publicBytes == nil {
		return false, m.fail("verify", ErrNoPublicKey)
	}
	if message == nil || signature == nil {
		return false, m.fail("verify", fmt.Errorf("%w: message and signature required", ErrNilArgument))
	}

	ok, err := rec.engine.Verify(rec.publicBytes, message, signature)
	if err != nil {
		return false, m.fail("verify", err)
	}
	return ok, nil
}

// ItemSign stamps the scheme's algorithm identifier, with absent
// parameters, into the signed structure's identifier slots. The second
// slot is optional, for structures that carry the identifier both inside
// the signed content and in the outer envelope.
func (m *Method) ItemSign(primary, secondary *encoding.AlgorithmIdentifier) (ItemSignOutcome, error) {
	if primary == nil {
		return ItemSignRejected, m.fail("item sign", fmt.Errorf("%w: primary identifier slot", ErrNilArgument))
	}

	primary.SetAbsent(m.oid)
	if secondary != nil {
		secondary.SetAbsent(m.oid)
	}
	return ItemSignRaw, nil
}

// ItemVerify preflights a signed structure's algorithm identifier before
// the generic verify initialization: the identifier must name exactly
// this scheme and carry no parameters.
func (m *Method) ItemVerify(ai encoding.AlgorithmIdentifier) (ItemVerifyOutcome, error) {
	if !ai.Algorithm.Equal(m.oid) {
		return ItemVerifyRejected, m.fail("item verify", fmt.Errorf("%w: %v", ErrSchemeMismatch, ai.Algorithm))
	}
	if !ai.ParametersAbsent() {
		return ItemVerifyRejected, m.fail("item verify", fmt.Errorf("%w: parameters present", ErrSchemeMismatch))
	}
	return ItemVerifyProceed, nil
}

// Control handles the method's control requests. Only digest-related
// requests are recognized: the digest may be set to nil, and digest
// initialization is acknowledged as a no-op.
func (m *Method) Control(req ControlRequest, arg any) error {
	switch req {
	case ControlSetDigest:
		if arg != nil {
			return m.fail("control", fmt.Errorf("%w: only a nil digest is accepted", ErrUnsupportedDigest))
		}
		return nil
	case ControlDigestInit:
		return nil
	default:
		return m.fail("control", fmt.Errorf("%w: %d", ErrUnsupportedControl, req))
	}
}

// SignatureInfo returns the metadata stamped on signed structures. Built
// from the static algorithm tables so it is available before any key
// material exists.
func (m *Method) SignatureInfo() SignatureInfo {
	return SignatureInfo{
		Algorithm:    m.algorithm,
		SecurityBits: m.algorithm.SecurityBits(),
		TLSCapable:   true,
	}
}

// UsesCustomSignContext reports that the scheme bypasses the generic
// digest framework and signs through its own context.
func (m *Method) UsesCustomSignContext() bool {
	return true
}
