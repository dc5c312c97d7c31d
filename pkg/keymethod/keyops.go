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

import "crypto/subtle"

// CompareResult is the outcome of a public key comparison.
type CompareResult int

const (
	// CompareUnknown means the comparison could not be performed because
	// one side holds no public key. Distinct from not-equal.
	CompareUnknown CompareResult = iota

	// CompareEqual means the public keys are identical.
	CompareEqual

	// CompareNotEqual means the public keys differ.
	CompareNotEqual
)

// String returns the string representation of the comparison result.
func (c CompareResult) String() string {
	switch c {
	case CompareEqual:
		return "equal"
	case CompareNotEqual:
		return "not-equal"
	default:
		return "unknown"
	}
}

// Size returns the maximum signature length in bytes. Callers use it to
// size signature buffers before signing or encoding. Returns 0 for an
// invalid record.
func (m *Method) Size(rec *KeyRecord) int {
	if rec == nil || rec.engine == nil {
		return 0
	}
	return rec.engine.Details().MaxSignatureLength
}

// Bits returns the encoded public key length in bytes. The host key
// contract reports this value as the key's "bit size"; the number is
// preserved for compatibility even though it counts octets, not bits.
func (m *Method) Bits(rec *KeyRecord) int {
	if rec == nil || rec.engine == nil {
		return 0
	}
	return rec.engine.Details().PublicKeyLength
}

// SecurityBits returns the estimated classical security level of the
// record's algorithm.
func (m *Method) SecurityBits(rec *KeyRecord) int {
	if rec == nil || rec.engine == nil {
		return 0
	}
	return rec.engine.Details().SecurityBits
}

// ComparePublic compares the public keys of two records in constant
// time. If either record holds no public key the result is
// CompareUnknown.
func (m *Method) ComparePublic(a, b *KeyRecord) CompareResult {
	if a == nil || b == nil || a.publicBytes == nil || b.publicBytes == nil {
		return CompareUnknown
	}
	if subtle.ConstantTimeCompare(a.publicBytes, b.publicBytes) == 1 {
		return CompareEqual
	}
	return CompareNotEqual
}

// CompareParameters always reports true: this algorithm family encodes
// no parameters beyond the identifier itself.
func (m *Method) CompareParameters(a, b *KeyRecord) bool {
	return true
}
