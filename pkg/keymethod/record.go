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

	"github.com/jeremyhahn/go-pqsig/pkg/engine"
	"github.com/jeremyhahn/go-pqsig/pkg/secmem"
	"github.com/jeremyhahn/go-pqsig/pkg/types"
)

// KeyRecord holds one keypair: an exclusively owned engine instance, the
// public key bytes, and, for records constructed as private, the private
// key bytes in secure memory.
//
// A record is either public-only or private-capable; the distinction is
// fixed at construction and no operation transitions between the two.
// Records are immutable after construction apart from Release. Read-only
// use from multiple goroutines is safe; Release must not race with any
// in-flight operation on the same record.
type KeyRecord struct {
	engine       engine.Engine
	alloc        secmem.Allocator
	publicBytes  []byte
	privateBytes []byte
}

// Algorithm returns the record's algorithm identifier, or the empty
// string for a released record.
func (r *KeyRecord) Algorithm() types.Algorithm {
	if r == nil || r.engine == nil {
		return ""
	}
	return r.engine.Details().Algorithm
}

// HasPrivate reports whether the record holds private key material.
func (r *KeyRecord) HasPrivate() bool {
	return r != nil && r.privateBytes != nil
}

// PublicBytes returns a copy of the raw public key bytes, or nil if the
// record holds none.
func (r *KeyRecord) PublicBytes() []byte {
	if r == nil || r.publicBytes == nil {
		return nil
	}
	out := make([]byte, len(r.publicBytes))
	copy(out, r.publicBytes)
	return out
}

// Release tears the record down: the engine (and its randomness source)
// is closed, private key bytes are erased and returned to the allocator,
// and the public buffer is dropped. Release is safe to call on a nil or
// already-released record, and is the single teardown path for records
// that failed construction partway.
func (r *KeyRecord) Release() {
	if r == nil {
		return
	}
	if r.engine != nil {
		r.engine.Close()
		r.engine = nil
	}
	if r.privateBytes != nil {
		if r.alloc != nil {
			r.alloc.Free(r.privateBytes)
		} else {
			secmem.Zeroize(r.privateBytes)
		}
		r.privateBytes = nil
	}
	r.publicBytes = nil
}

// newRecord allocates a record for the method's algorithm. Private
// records get a secure-memory buffer for the private key. Any failure
// tears down whatever was built and returns the error; a half-built
// record is never handed out.
func (m *Method) newRecord(wantPrivate bool) (*KeyRecord, error) {
	eng, err := engine.New(m.algorithm)
	if err != nil {
		return nil, err
	}

	rec := &KeyRecord{
		engine: eng,
		alloc:  m.alloc,
	}
	details := eng.Details()
	rec.publicBytes = make([]byte, details.PublicKeyLength)

	if wantPrivate {
		buf, err := m.alloc.Alloc(details.PrivateKeyLength)
		if err != nil {
			rec.Release()
			return nil, fmt.Errorf("%w: %v", ErrAllocation, err)
		}
		rec.privateBytes = buf
	}
	return rec, nil
}
