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

// Package secmem provides allocation for secret key material. Buffers
// obtained from an Allocator are pinned against swapping where the platform
// supports it, and Free always erases the buffer contents before releasing
// the pin.
//
// The Allocator is modeled as an injected capability rather than ambient
// global state so that callers owning secret buffers can be tested with a
// tracking implementation.
package secmem

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrAllocationFailed indicates secure memory could not be obtained
	ErrAllocationFailed = errors.New("secmem: allocation failed")

	// ErrInvalidSize indicates a non-positive allocation size
	ErrInvalidSize = errors.New("secmem: invalid allocation size")
)

// Allocator allocates and releases buffers holding secret material.
//
// Implementations must be safe for concurrent use by unrelated callers;
// the default allocator is a process-wide resource.
type Allocator interface {
	// Alloc returns a buffer of exactly n bytes, pinned against swapping
	// where supported.
	Alloc(n int) ([]byte, error)

	// Free erases the buffer contents and releases it. The buffer must
	// have been returned by Alloc on the same Allocator. Free of a nil
	// buffer is a no-op.
	Free(buf []byte)
}

// Zeroize overwrites the buffer with zeros.
func Zeroize(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}

// lockedAllocator pins allocations with mlock(2) where available.
type lockedAllocator struct {
	mu sync.Mutex
}

// New returns an allocator that pins buffers against swapping and
// guarantees erase-before-free.
func New() Allocator {
	return &lockedAllocator{}
}

var (
	defaultOnce  sync.Once
	defaultAlloc Allocator
)

// Default returns the process-wide allocator shared by callers that do not
// inject their own.
func Default() Allocator {
	defaultOnce.Do(func() {
		defaultAlloc = New()
	})
	return defaultAlloc
}

// Alloc returns a pinned buffer of exactly n bytes.
func (a *lockedAllocator) Alloc(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}

	buf := make([]byte, n)

	a.mu.Lock()
	defer a.mu.Unlock()

	// Pinning is best effort: RLIMIT_MEMLOCK can deny mlock on otherwise
	// healthy systems, and an unpinned buffer is still erased on free.
	_ = lock(buf)
	return buf, nil
}

// Free erases the buffer and releases the pin.
func (a *lockedAllocator) Free(buf []byte) {
	if buf == nil {
		return
	}

	Zeroize(buf)

	a.mu.Lock()
	defer a.mu.Unlock()

	// The pages are already wiped; an unlock failure here leaves nothing
	// sensitive resident.
	_ = unlock(buf)
}
