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

// Package testutil provides test doubles shared across package tests.
package testutil

import (
	"fmt"
	"sync"

	"github.com/jeremyhahn/go-pqsig/pkg/secmem"
)

// TrackingAllocator implements secmem.Allocator while recording every
// allocation and free, so tests can assert that secret buffers are
// erased and returned on every code path, including failure paths.
//
// FailAfter simulates allocation failure to drive partial-construction
// teardown tests.
type TrackingAllocator struct {
	mu        sync.Mutex
	allocated [][]byte
	freed     int
	calls     int
	failAfter int // fail Alloc calls once calls reaches this; -1 disables
}

// NewTrackingAllocator returns a TrackingAllocator that never fails.
func NewTrackingAllocator() *TrackingAllocator {
	return &TrackingAllocator{failAfter: -1}
}

// FailAfter makes Alloc return an error once n successful calls have
// been served. FailAfter(0) fails the next Alloc. A negative n clears
// the failure point so subsequent allocations succeed again.
func (t *TrackingAllocator) FailAfter(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n < 0 {
		t.failAfter = -1
		return
	}
	t.failAfter = t.calls + n
}

// Alloc returns a zeroed buffer of n bytes and records it.
func (t *TrackingAllocator) Alloc(n int) ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.failAfter >= 0 && t.calls >= t.failAfter {
		return nil, fmt.Errorf("%w: simulated failure", secmem.ErrAllocationFailed)
	}
	t.calls++

	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", secmem.ErrInvalidSize, n)
	}
	buf := make([]byte, n)
	t.allocated = append(t.allocated, buf)
	return buf, nil
}

// Free erases the buffer and marks it freed. Freeing a buffer this
// allocator did not hand out panics, to catch cross-allocator misuse in
// tests.
func (t *TrackingAllocator) Free(buf []byte) {
	if buf == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for i, a := range t.allocated {
		if len(a) > 0 && len(buf) > 0 && &a[0] == &buf[0] {
			secmem.Zeroize(buf)
			t.allocated = append(t.allocated[:i], t.allocated[i+1:]...)
			t.freed++
			return
		}
	}
	panic("testutil: Free of buffer not allocated by this allocator")
}

// Outstanding returns the number of buffers allocated but not yet freed.
func (t *TrackingAllocator) Outstanding() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.allocated)
}

// Freed returns the number of buffers returned through Free.
func (t *TrackingAllocator) Freed() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.freed
}

var _ secmem.Allocator = (*TrackingAllocator)(nil)
