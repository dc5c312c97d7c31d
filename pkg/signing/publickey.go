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

package signing

import (
	"crypto"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"github.com/jeremyhahn/go-pqsig/pkg/types"
)

// PublicKey is the public half of a post-quantum signing key. It carries
// the raw encoded key bytes plus the algorithm that interprets them, and
// satisfies the comparison contract expected from crypto.PublicKey
// implementations.
type PublicKey struct {
	algorithm types.Algorithm
	raw       []byte
}

// NewPublicKey builds a PublicKey from raw encoded key bytes. The bytes
// are copied.
func NewPublicKey(algorithm types.Algorithm, raw []byte) *PublicKey {
	buf := make([]byte, len(raw))
	copy(buf, raw)
	return &PublicKey{
		algorithm: algorithm,
		raw:       buf,
	}
}

// Algorithm returns the signature algorithm this key belongs to.
func (p *PublicKey) Algorithm() types.Algorithm {
	return p.algorithm
}

// Bytes returns a copy of the raw encoded public key.
func (p *PublicKey) Bytes() []byte {
	buf := make([]byte, len(p.raw))
	copy(buf, p.raw)
	return buf
}

// Equal reports whether x is a PublicKey with the same algorithm and the
// same key bytes. The byte comparison is constant time.
func (p *PublicKey) Equal(x crypto.PublicKey) bool {
	other, ok := x.(*PublicKey)
	if !ok {
		return false
	}
	if p.algorithm != other.algorithm {
		return false
	}
	return subtle.ConstantTimeCompare(p.raw, other.raw) == 1
}

// Fingerprint returns the hex-encoded BLAKE2b-256 digest of the raw
// public key bytes, suitable for key identifiers and audit logs.
func (p *PublicKey) Fingerprint() string {
	sum := blake2b.Sum256(p.raw)
	return hex.EncodeToString(sum[:])
}
