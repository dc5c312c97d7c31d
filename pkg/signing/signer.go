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

// Package signing bridges post-quantum key methods into the standard
// crypto.Signer contract so keys can flow through code written against
// the standard library interfaces.
package signing

import (
	"crypto"
	"io"
	"sync"

	"github.com/jeremyhahn/go-pqsig/pkg/keymethod"
	"github.com/jeremyhahn/go-pqsig/pkg/types"
)

// Signer adapts a key method and a private-capable key record to
// crypto.Signer.
//
// The wrapped scheme signs raw messages with its own internal
// randomness, so the rand and digest conventions of crypto.Signer bend
// slightly: the rand argument is ignored and the "digest" is treated as
// the full message to sign. Callers must pass nil opts or crypto.Hash(0);
// any request for pre-hashing is rejected.
//
// Close releases the underlying key material. A Signer must not be used
// after Close.
type Signer struct {
	method keymethod.SignerMethod
	rec    *keymethod.KeyRecord
	pub    *PublicKey

	mu     sync.Mutex
	closed bool
}

// NewSigner wraps method and rec into a crypto.Signer. The record must
// hold a private key; ownership of the record transfers to the Signer,
// which releases it on Close.
func NewSigner(method keymethod.SignerMethod, rec *keymethod.KeyRecord) (*Signer, error) {
	if method == nil {
		return nil, ErrMethodRequired
	}
	if rec == nil {
		return nil, ErrRecordRequired
	}
	if !rec.HasPrivate() {
		return nil, ErrPrivateKeyRequired
	}
	return &Signer{
		method: method,
		rec:    rec,
		pub:    NewPublicKey(rec.Algorithm(), rec.PublicBytes()),
	}, nil
}

// Algorithm returns the signature algorithm of the wrapped key.
func (s *Signer) Algorithm() types.Algorithm {
	return s.method.Algorithm()
}

// Public returns the public key corresponding to the wrapped private
// key. Implements crypto.Signer. The returned key remains valid after
// Close.
func (s *Signer) Public() crypto.PublicKey {
	return s.pub
}

// Sign signs message with the wrapped private key. Implements
// crypto.Signer; message is the full content to sign, not a digest, and
// rand is ignored because the scheme draws its own randomness.
func (s *Signer) Sign(rand io.Reader, message []byte, opts crypto.SignerOpts) ([]byte, error) {
	if opts != nil && opts.HashFunc() != crypto.Hash(0) {
		return nil, ErrUnsupportedOpts
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrSignerClosed
	}
	return s.method.Sign(s.rec, message)
}

// MaxSignatureLength returns the largest signature Sign can produce.
func (s *Signer) MaxSignatureLength() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0
	}
	return s.method.MaxSignatureLength(s.rec)
}

// Close releases the wrapped key material. Safe to call more than once.
func (s *Signer) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.rec.Release()
	s.rec = nil
}

var _ crypto.Signer = (*Signer)(nil)
