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
	"github.com/jeremyhahn/go-pqsig/pkg/secmem"
	"github.com/jeremyhahn/go-pqsig/pkg/types"
)

// EncodePublic encodes the record's public key into the public key
// container: raw key bytes tagged with the algorithm identifier and
// absent parameters.
func (m *Method) EncodePublic(rec *KeyRecord) ([]byte, error) {
	if rec == nil || rec.engine == nil || rec.publicBytes == nil {
		return nil, m.fail("encode public", ErrNoPublicKey)
	}

	der, err := encoding.MarshalPublicKey(m.oid, rec.publicBytes)
	if err != nil {
		return nil, m.fail("encode public", fmt.Errorf("%w: %v", ErrMalformedKey, err))
	}
	return der, nil
}

// DecodePublic decodes a public key container into a public-only record.
// Containers with present parameters are rejected as malformed; a payload
// whose length does not match the algorithm's public key length is a size
// mismatch.
func (m *Method) DecodePublic(der []byte) (*KeyRecord, error) {
	raw, err := m.parseContainerAlg("decode public", encoding.ParsePublicKey, der)
	if err != nil {
		return nil, err
	}

	rec, err := m.newRecord(false)
	if err != nil {
		return nil, m.fail("decode public", err)
	}

	if want := rec.engine.Details().PublicKeyLength; len(raw) != want {
		rec.Release()
		return nil, m.fail("decode public", fmt.Errorf("%w: got %d, want %d",
			ErrSizeMismatch, len(raw), want))
	}
	copy(rec.publicBytes, raw)
	return rec, nil
}

// EncodePrivate encodes the record's keypair into the private key
// container: the private key bytes followed by the public key bytes,
// wrapped as an opaque octet string. The intermediate concatenation
// buffer lives in secure memory and is erased whether or not the
// encoding succeeds.
func (m *Method) EncodePrivate(rec *KeyRecord) ([]byte, error) {
	if rec == nil || rec.engine == nil || rec.privateBytes == nil {
		return nil, m.fail("encode private", ErrNoPrivateKey)
	}
	if rec.publicBytes == nil {
		return nil, m.fail("encode private", ErrNoPublicKey)
	}

	buflen := len(rec.privateBytes) + len(rec.publicBytes)
	buf, err := m.alloc.Alloc(buflen)
	if err != nil {
		return nil, m.fail("encode private", fmt.Errorf("%w: %v", ErrAllocation, err))
	}
	defer m.alloc.Free(buf)

	copy(buf, rec.privateBytes)
	copy(buf[len(rec.privateBytes):], rec.publicBytes)

	der, err := encoding.MarshalPrivateKey(m.oid, buf)
	if err != nil {
		return nil, m.fail("encode private", fmt.Errorf("%w: %v", ErrMalformedKey, err))
	}
	return der, nil
}

// DecodePrivate decodes a private key container into a private-capable
// record. The payload must be exactly private key length plus public key
// length; it is split at the private key boundary.
func (m *Method) DecodePrivate(der []byte) (*KeyRecord, error) {
	payload, err := m.parseContainerAlg("decode private", encoding.ParsePrivateKey, der)
	if err != nil {
		return nil, err
	}
	defer secmem.Zeroize(payload)

	rec, err := m.newRecord(true)
	if err != nil {
		return nil, m.fail("decode private", err)
	}

	details := rec.engine.Details()
	want := details.PrivateKeyLength + details.PublicKeyLength
	if len(payload) != want {
		rec.Release()
		return nil, m.fail("decode private", fmt.Errorf("%w: got %d, want %d",
			ErrSizeMismatch, len(payload), want))
	}

	copy(rec.privateBytes, payload[:details.PrivateKeyLength])
	copy(rec.publicBytes, payload[details.PrivateKeyLength:])
	return rec, nil
}

// parseContainerAlg parses a key container, maps container-level faults
// to the method error taxonomy, and checks the algorithm identifier
// routes to this method.
func (m *Method) parseContainerAlg(op string,
	parse func([]byte) (encoding.AlgorithmIdentifier, []byte, error),
	der []byte) ([]byte, error) {

	ai, payload, err := parse(der)
	if err != nil {
		return nil, m.fail(op, fmt.Errorf("%w: %v", ErrMalformedKey, err))
	}

	alg, ok := types.AlgorithmByOID(ai.Algorithm)
	if !ok {
		return nil, m.fail(op, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, ai.Algorithm))
	}
	if alg != m.algorithm {
		return nil, m.fail(op, fmt.Errorf("%w: container is %s, method is %s",
			ErrSchemeMismatch, alg, m.algorithm))
	}
	return payload, nil
}
