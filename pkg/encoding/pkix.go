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

package encoding

import (
	"encoding/asn1"
	"fmt"
)

// publicKeyInfo is the SubjectPublicKeyInfo-style container: the
// algorithm identifier followed by the raw public key bytes as a
// BIT STRING.
type publicKeyInfo struct {
	Algorithm AlgorithmIdentifier
	PublicKey asn1.BitString
}

// MarshalPublicKey encodes the raw public key bytes into the public key
// container, tagged with the algorithm OID and absent parameters.
func MarshalPublicKey(oid asn1.ObjectIdentifier, raw []byte) ([]byte, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyPayload
	}

	info := publicKeyInfo{
		Algorithm: NewAlgorithmIdentifier(oid),
		PublicKey: asn1.BitString{
			Bytes:     raw,
			BitLength: len(raw) * 8,
		},
	}

	der, err := asn1.Marshal(info)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return der, nil
}

// ParsePublicKey decodes the public key container, returning the
// algorithm identifier and the raw key bytes. Containers carrying
// algorithm parameters are rejected; emitting an explicit NULL there is
// non-conformant for this algorithm family.
func ParsePublicKey(der []byte) (AlgorithmIdentifier, []byte, error) {
	var info publicKeyInfo

	rest, err := asn1.Unmarshal(der, &info)
	if err != nil {
		return AlgorithmIdentifier{}, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(rest) != 0 {
		return AlgorithmIdentifier{}, nil, ErrTrailingData
	}
	if !info.Algorithm.ParametersAbsent() {
		return AlgorithmIdentifier{}, nil, ErrParametersPresent
	}
	if info.PublicKey.BitLength == 0 {
		return AlgorithmIdentifier{}, nil, ErrEmptyPayload
	}
	if info.PublicKey.BitLength%8 != 0 {
		return AlgorithmIdentifier{}, nil, fmt.Errorf("%w: public key is not an octet sequence", ErrMalformed)
	}

	return info.Algorithm, info.PublicKey.Bytes, nil
}
