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

package secmem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlloc(t *testing.T) {
	alloc := New()

	buf, err := alloc.Alloc(64)
	require.NoError(t, err)
	require.Len(t, buf, 64)

	// Fresh buffers are zeroed
	for _, b := range buf {
		assert.Zero(t, b)
	}

	alloc.Free(buf)
}

func TestAlloc_InvalidSize(t *testing.T) {
	alloc := New()

	_, err := alloc.Alloc(0)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = alloc.Alloc(-1)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestFree_ErasesContents(t *testing.T) {
	alloc := New()

	buf, err := alloc.Alloc(32)
	require.NoError(t, err)

	copy(buf, []byte("super secret key material here!!"))
	alloc.Free(buf)

	// The caller's slice still references the erased pages.
	for _, b := range buf {
		assert.Zero(t, b)
	}
}

func TestFree_NilIsNoop(t *testing.T) {
	alloc := New()
	alloc.Free(nil)
}

func TestZeroize(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	Zeroize(buf)
	assert.Equal(t, []byte{0, 0, 0, 0, 0}, buf)
}

func TestDefault_SameInstance(t *testing.T) {
	assert.Same(t, Default(), Default())
}
