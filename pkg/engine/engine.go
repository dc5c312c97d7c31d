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

// Package engine defines the contract for post-quantum signature engines
// and binds the algorithms shipped with go-pqsig. An Engine instance is
// exclusively owned by one key record: it carries the algorithm's fixed
// size parameters and a private randomness source that is torn down with
// the engine.
package engine

import (
	"errors"

	"github.com/jeremyhahn/go-pqsig/pkg/types"
)

var (
	// ErrUnsupportedAlgorithm indicates no engine is registered for the algorithm
	ErrUnsupportedAlgorithm = errors.New("engine: unsupported algorithm")

	// ErrBufferSize indicates a caller-supplied buffer has the wrong length
	ErrBufferSize = errors.New("engine: buffer length does not match algorithm parameters")

	// ErrKeygenFailed indicates key pair generation failed
	ErrKeygenFailed = errors.New("engine: key generation failed")

	// ErrSignFailed indicates a signing operation failed
	ErrSignFailed = errors.New("engine: signing operation failed")

	// ErrInvalidKey indicates key bytes could not be loaded into the scheme
	ErrInvalidKey = errors.New("engine: invalid key material")
)

// Details reports the fixed size parameters of an algorithm instance.
type Details struct {
	// Algorithm is the identifier the engine was constructed for.
	Algorithm types.Algorithm

	// PublicKeyLength is the exact encoded public key size in bytes.
	PublicKeyLength int

	// PrivateKeyLength is the exact encoded private key size in bytes.
	PrivateKeyLength int

	// MaxSignatureLength is the largest signature the scheme can produce.
	MaxSignatureLength int

	// SecurityBits is the estimated classical security level.
	SecurityBits int
}

// Engine implements key generation, signing and verification for one
// signature algorithm. Implementations sign the full caller-supplied
// message; no digest is applied internally.
//
// An Engine is not safe for concurrent use. Each key record owns its own
// instance.
type Engine interface {
	// Details returns the algorithm's fixed size parameters.
	Details() Details

	// Keygen generates a fresh key pair, writing into priv and pub. The
	// buffers must be exactly PrivateKeyLength and PublicKeyLength bytes.
	Keygen(priv, pub []byte) error

	// Sign signs message with the private key bytes and returns the
	// signature. The signature length never exceeds MaxSignatureLength.
	Sign(priv, message []byte) ([]byte, error)

	// Verify reports whether signature is valid for message under the
	// public key bytes. The error return is reserved for operational
	// failures such as malformed key material; an invalid signature is
	// (false, nil).
	Verify(pub, message, signature []byte) (bool, error)

	// Close tears down the engine and its randomness source.
	Close()
}
