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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-pqsig/internal/testutil"
	"github.com/jeremyhahn/go-pqsig/pkg/types"
)

func newTestMethod(t *testing.T, opts ...Option) *Method {
	t.Helper()
	m, err := New(types.AlgorithmMLDSA44, opts...)
	require.NoError(t, err)
	return m
}

func TestNew_UnsupportedAlgorithm(t *testing.T) {
	_, err := New(types.Algorithm("SLH-DSA-128s"))
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}

func TestNew_AllAlgorithms(t *testing.T) {
	for _, alg := range types.Algorithms() {
		m, err := New(alg)
		require.NoError(t, err, alg.String())
		assert.Equal(t, alg, m.Algorithm())

		oid, ok := alg.OID()
		require.True(t, ok)
		assert.True(t, m.OID().Equal(oid))
	}
}

func TestKeygen(t *testing.T) {
	m := newTestMethod(t)

	rec, err := m.Keygen()
	require.NoError(t, err)
	defer m.Free(rec)

	assert.Equal(t, types.AlgorithmMLDSA44, rec.Algorithm())
	assert.True(t, rec.HasPrivate())
	assert.NotEmpty(t, rec.PublicBytes())
}

func TestSignVerify(t *testing.T) {
	m := newTestMethod(t)

	rec, err := m.Keygen()
	require.NoError(t, err)
	defer m.Free(rec)

	message := []byte("test")
	signature, err := m.Sign(rec, message)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(signature), m.MaxSignatureLength(rec))

	ok, err := m.Verify(rec, message, signature)
	require.NoError(t, err)
	assert.True(t, ok)

	// Same length, different content
	ok, err = m.Verify(rec, []byte("tset"), signature)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerify_TamperedSignature(t *testing.T) {
	m := newTestMethod(t)

	rec, err := m.Keygen()
	require.NoError(t, err)
	defer m.Free(rec)

	message := []byte("message")
	signature, err := m.Sign(rec, message)
	require.NoError(t, err)

	signature[len(signature)/2] ^= 0xff
	ok, err := m.Verify(rec, message, signature)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSign_PublicOnlyRecord(t *testing.T) {
	m := newTestMethod(t)

	rec, err := m.Keygen()
	require.NoError(t, err)
	defer m.Free(rec)

	der, err := m.EncodePublic(rec)
	require.NoError(t, err)

	pubRec, err := m.DecodePublic(der)
	require.NoError(t, err)
	defer m.Free(pubRec)

	_, err = m.Sign(pubRec, []byte("msg"))
	assert.ErrorIs(t, err, ErrNoPrivateKey)
}

func TestVerify_NilArguments(t *testing.T) {
	m := newTestMethod(t)

	rec, err := m.Keygen()
	require.NoError(t, err)
	defer m.Free(rec)

	_, err = m.Verify(rec, nil, []byte("sig"))
	assert.ErrorIs(t, err, ErrNilArgument)

	_, err = m.Verify(rec, []byte("msg"), nil)
	assert.ErrorIs(t, err, ErrNilArgument)
}

func TestSizeBitsSecurityBits(t *testing.T) {
	m := newTestMethod(t)

	rec, err := m.Keygen()
	require.NoError(t, err)
	defer m.Free(rec)

	assert.Positive(t, m.Size(rec))
	// Bits reports the encoded public key length
	assert.Equal(t, len(rec.PublicBytes()), m.Bits(rec))
	assert.Equal(t, 128, m.SecurityBits(rec))

	// Invalid records report zero
	assert.Zero(t, m.Size(nil))
	assert.Zero(t, m.Bits(nil))
	assert.Zero(t, m.SecurityBits(nil))
}

func TestComparePublic(t *testing.T) {
	m := newTestMethod(t)

	a, err := m.Keygen()
	require.NoError(t, err)
	defer m.Free(a)

	b, err := m.Keygen()
	require.NoError(t, err)
	defer m.Free(b)

	assert.Equal(t, CompareEqual, m.ComparePublic(a, a))
	assert.Equal(t, CompareNotEqual, m.ComparePublic(a, b))
	assert.Equal(t, CompareUnknown, m.ComparePublic(a, nil))
	assert.Equal(t, CompareUnknown, m.ComparePublic(nil, b))
}

func TestCompareResult_String(t *testing.T) {
	assert.Equal(t, "equal", CompareEqual.String())
	assert.Equal(t, "not-equal", CompareNotEqual.String())
	assert.Equal(t, "unknown", CompareUnknown.String())
}

func TestCompareParameters(t *testing.T) {
	m := newTestMethod(t)
	// No parameters exist for this algorithm family, so any two records
	// always have "equal" parameters.
	assert.True(t, m.CompareParameters(nil, nil))
}

func TestRelease_Idempotent(t *testing.T) {
	m := newTestMethod(t)

	rec, err := m.Keygen()
	require.NoError(t, err)

	rec.Release()
	rec.Release()
	m.Free(rec)

	var nilRec *KeyRecord
	nilRec.Release()
}

func TestRelease_ErasesAndReturnsBuffers(t *testing.T) {
	alloc := testutil.NewTrackingAllocator()
	m := newTestMethod(t, WithAllocator(alloc))

	rec, err := m.Keygen()
	require.NoError(t, err)
	require.Equal(t, 1, alloc.Outstanding())

	priv := rec.privateBytes
	rec.Release()

	assert.Zero(t, alloc.Outstanding())
	assert.Equal(t, 1, alloc.Freed())
	for _, b := range priv {
		require.Zero(t, b)
	}
}

func TestKeygen_AllocationFailure(t *testing.T) {
	alloc := testutil.NewTrackingAllocator()
	alloc.FailAfter(0)
	m := newTestMethod(t, WithAllocator(alloc))

	_, err := m.Keygen()
	assert.ErrorIs(t, err, ErrAllocation)
	assert.Zero(t, alloc.Outstanding())
}

func TestDecodePrivate_AllocationFailure(t *testing.T) {
	m := newTestMethod(t)
	rec, err := m.Keygen()
	require.NoError(t, err)
	defer m.Free(rec)

	der, err := m.EncodePrivate(rec)
	require.NoError(t, err)

	alloc := testutil.NewTrackingAllocator()
	alloc.FailAfter(0)
	failing := newTestMethod(t, WithAllocator(alloc))

	_, err = failing.DecodePrivate(der)
	assert.ErrorIs(t, err, ErrAllocation)
	assert.Zero(t, alloc.Outstanding())
}
