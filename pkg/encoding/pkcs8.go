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

// privateKeyInfo is the PKCS#8-style container. The PrivateKey field
// holds a nested OCTET STRING whose contents are the concatenated
// private and public key bytes, private key first.
type privateKeyInfo struct {
	Version    int
	Algorithm  AlgorithmIdentifier
	PrivateKey []byte
}

// MarshalPrivateKey wraps the concatenated key payload (private key
// bytes followed by public key bytes) in the private key container. The
// caller retains ownership of payload and is responsible for erasing it.
func MarshalPrivateKey(oid asn1.ObjectIdentifier, payload []byte) ([]byte, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}

	inner, err := asn1.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	info := privateKeyInfo{
		Version:    0,
		Algorithm:  NewAlgorithmIdentifier(oid),
		PrivateKey: inner,
	}

	der, err := asn1.Marshal(info)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return der, nil
}

// ParsePrivateKey decodes the private key container, returning the
// algorithm identifier and the concatenated key payload. The payload
// holds secret material; callers must erase it once copied out.
func ParsePrivateKey(der []byte) (AlgorithmIdentifier, []byte, error) {
	var info privateKeyInfo

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

	var payload []byte
	if _, err := asn1.Unmarshal(info.PrivateKey, &payload); err != nil {
		return AlgorithmIdentifier{}, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(payload) == 0 {
		return AlgorithmIdentifier{}, nil, ErrEmptyPayload
	}

	return info.Algorithm, payload, nil
}
