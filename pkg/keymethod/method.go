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

// Package keymethod binds post-quantum signature engines into the
// library's public key abstraction. A Method owns the full set of key
// operations for one algorithm: wire encoding and decoding of public and
// private keys, key generation, raw signing and verification, comparison,
// printing, and the algorithm identifier stamping used when producing
// signed structures.
//
// The key material itself lives in a KeyRecord; private key bytes are
// held in secure memory and erased on release.
package keymethod

import (
	"encoding/asn1"
	"fmt"

	"github.com/jeremyhahn/go-pqsig/pkg/engine"
	"github.com/jeremyhahn/go-pqsig/pkg/logging"
	"github.com/jeremyhahn/go-pqsig/pkg/secmem"
	"github.com/jeremyhahn/go-pqsig/pkg/types"
)

// Method implements the key lifecycle and signing operations for one
// registered algorithm. Methods are stateless apart from configuration
// and are safe for concurrent use; the records they produce are not.
type Method struct {
	algorithm types.Algorithm
	oid       asn1.ObjectIdentifier
	alloc     secmem.Allocator
	logger    *logging.Logger
}

// Option configures a Method.
type Option func(*Method)

// WithAllocator injects the secure-memory allocator used for private key
// buffers. Defaults to the process-wide allocator.
func WithAllocator(alloc secmem.Allocator) Option {
	return func(m *Method) {
		if alloc != nil {
			m.alloc = alloc
		}
	}
}

// WithLogger injects the logger used to report failing operations.
func WithLogger(logger *logging.Logger) Option {
	return func(m *Method) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New returns the method for the given algorithm. Unknown identifiers or
// identifiers with no registered engine return ErrUnsupportedAlgorithm.
func New(alg types.Algorithm, opts ...Option) (*Method, error) {
	oid, ok := alg.OID()
	if !ok || !engine.Supported(alg) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, alg)
	}

	m := &Method{
		algorithm: alg,
		oid:       oid,
		alloc:     secmem.Default(),
		logger:    logging.DefaultLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Algorithm returns the algorithm this method serves.
func (m *Method) Algorithm() types.Algorithm {
	return m.algorithm
}

// OID returns the algorithm's object identifier.
func (m *Method) OID() asn1.ObjectIdentifier {
	return m.oid
}

// Keygen generates a fresh private-capable record.
func (m *Method) Keygen() (*KeyRecord, error) {
	rec, err := m.newRecord(true)
	if err != nil {
		return nil, m.fail("keygen", err)
	}

	if err := rec.engine.Keygen(rec.privateBytes, rec.publicBytes); err != nil {
		rec.Release()
		return nil, m.fail("keygen", err)
	}
	return rec, nil
}

// Free releases the record. Provided so callers holding only the method
// table can tear records down; equivalent to rec.Release().
func (m *Method) Free(rec *KeyRecord) {
	rec.Release()
}

// fail reports a failing operation through the configured logger before
// the error propagates to the caller.
func (m *Method) fail(op string, err error) error {
	m.logger.Errorf("keymethod: %s: %s: %v", m.algorithm, op, err)
	return err
}
