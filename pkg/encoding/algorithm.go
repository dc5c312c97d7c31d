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

// Package encoding implements the wire containers for post-quantum keys:
// a SubjectPublicKeyInfo-style public key container and a PKCS#8-style
// private key container, plus PEM framing for both. The algorithm
// identifier in either container must carry no parameters; "absent" is
// the missing element, which is distinct from an ASN.1 NULL or an empty
// value.
package encoding

import "encoding/asn1"

// AlgorithmIdentifier is the ASN.1 AlgorithmIdentifier carried by both
// key containers and by signed structures.
type AlgorithmIdentifier struct {
	Algorithm  asn1.ObjectIdentifier
	Parameters asn1.RawValue `asn1:"optional"`
}

// NewAlgorithmIdentifier returns an identifier for the given OID with
// absent parameters.
func NewAlgorithmIdentifier(oid asn1.ObjectIdentifier) AlgorithmIdentifier {
	return AlgorithmIdentifier{Algorithm: oid}
}

// ParametersAbsent reports whether the parameters element is missing
// entirely. An encoded NULL or any other present value returns false.
func (ai AlgorithmIdentifier) ParametersAbsent() bool {
	return len(ai.Parameters.FullBytes) == 0
}

// SetAbsent stamps the identifier with the given OID and clears any
// parameters, used when producing signed structures that carry the
// identifier in one or two slots.
func (ai *AlgorithmIdentifier) SetAbsent(oid asn1.ObjectIdentifier) {
	ai.Algorithm = oid
	ai.Parameters = asn1.RawValue{}
}
