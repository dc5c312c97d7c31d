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

// Package types defines the post-quantum signature algorithm identifiers
// shared across go-pqsig. Algorithm metadata that must be available without
// an instantiated engine (object identifiers, security levels) lives here
// as static tables.
package types

import (
	"encoding/asn1"
	"strings"
)

// Algorithm represents a post-quantum signature algorithm identifier.
// The string values match the NIST FIPS 204 standard names.
type Algorithm string

const (
	// AlgorithmMLDSA44 is ML-DSA-44 (NIST security category 2).
	AlgorithmMLDSA44 Algorithm = "ML-DSA-44"

	// AlgorithmMLDSA65 is ML-DSA-65 (NIST security category 3).
	AlgorithmMLDSA65 Algorithm = "ML-DSA-65"

	// AlgorithmMLDSA87 is ML-DSA-87 (NIST security category 5).
	AlgorithmMLDSA87 Algorithm = "ML-DSA-87"
)

// String returns the string representation.
func (a Algorithm) String() string {
	return string(a)
}

// Lower returns the lowercase form of the algorithm name.
func (a Algorithm) Lower() string {
	return strings.ToLower(string(a))
}

// Equals performs case-insensitive comparison for protocol compatibility.
func (a Algorithm) Equals(s string) bool {
	return strings.EqualFold(string(a), s)
}

// =============================================================================
// Object Identifiers
// =============================================================================
// Object identifiers from the NIST CSOR signature algorithm arc
// (2.16.840.1.101.3.4.3).

var (
	oidMLDSA44 = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 3, 17}
	oidMLDSA65 = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 3, 18}
	oidMLDSA87 = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 3, 19}
)

// OID returns the ASN.1 object identifier registered for the algorithm.
// The second return value is false if the algorithm is not recognized.
func (a Algorithm) OID() (asn1.ObjectIdentifier, bool) {
	switch a {
	case AlgorithmMLDSA44:
		return oidMLDSA44, true
	case AlgorithmMLDSA65:
		return oidMLDSA65, true
	case AlgorithmMLDSA87:
		return oidMLDSA87, true
	default:
		return nil, false
	}
}

// AlgorithmByOID resolves an ASN.1 object identifier to the algorithm it
// names. The second return value is false if the identifier is not
// recognized.
func AlgorithmByOID(oid asn1.ObjectIdentifier) (Algorithm, bool) {
	switch {
	case oid.Equal(oidMLDSA44):
		return AlgorithmMLDSA44, true
	case oid.Equal(oidMLDSA65):
		return AlgorithmMLDSA65, true
	case oid.Equal(oidMLDSA87):
		return AlgorithmMLDSA87, true
	default:
		return "", false
	}
}

// =============================================================================
// Security Levels
// =============================================================================

// SecurityBits returns the estimated classical security level in bits.
// The values are kept in a static table because callers such as signature
// metadata stamping need them before any key material has been
// instantiated. Returns 0 for unrecognized algorithms.
func (a Algorithm) SecurityBits() int {
	switch a {
	case AlgorithmMLDSA44:
		return 128
	case AlgorithmMLDSA65:
		return 192
	case AlgorithmMLDSA87:
		return 256
	default:
		return 0
	}
}

// Valid returns true if the algorithm is one of the recognized identifiers.
func (a Algorithm) Valid() bool {
	_, ok := a.OID()
	return ok
}

// Algorithms returns the recognized algorithm identifiers.
func Algorithms() []Algorithm {
	return []Algorithm{
		AlgorithmMLDSA44,
		AlgorithmMLDSA65,
		AlgorithmMLDSA87,
	}
}
