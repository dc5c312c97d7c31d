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

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-pqsig/pkg/types"
)

func newTestEngine(t *testing.T) Engine {
	t.Helper()
	eng, err := New(types.AlgorithmMLDSA44)
	require.NoError(t, err)
	t.Cleanup(eng.Close)
	return eng
}

func TestNew_UnsupportedAlgorithm(t *testing.T) {
	_, err := New(types.Algorithm("SLH-DSA-128s"))
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}

func TestSupported(t *testing.T) {
	for _, alg := range types.Algorithms() {
		assert.True(t, Supported(alg), alg.String())
	}
	assert.False(t, Supported(types.Algorithm("bogus")))
}

func TestDetails(t *testing.T) {
	eng := newTestEngine(t)

	details := eng.Details()
	assert.Equal(t, types.AlgorithmMLDSA44, details.Algorithm)
	assert.Positive(t, details.PublicKeyLength)
	assert.Positive(t, details.PrivateKeyLength)
	assert.Positive(t, details.MaxSignatureLength)
	assert.Equal(t, 128, details.SecurityBits)
}

func TestKeygen(t *testing.T) {
	eng := newTestEngine(t)
	details := eng.Details()

	priv := make([]byte, details.PrivateKeyLength)
	pub := make([]byte, details.PublicKeyLength)
	require.NoError(t, eng.Keygen(priv, pub))

	// Generated keys must not be all zero
	assert.NotEqual(t, make([]byte, len(pub)), pub)
	assert.NotEqual(t, make([]byte, len(priv)), priv)
}

func TestKeygen_BufferSize(t *testing.T) {
	eng := newTestEngine(t)
	details := eng.Details()

	err := eng.Keygen(make([]byte, 1), make([]byte, details.PublicKeyLength))
	assert.ErrorIs(t, err, ErrBufferSize)

	err = eng.Keygen(make([]byte, details.PrivateKeyLength), make([]byte, 1))
	assert.ErrorIs(t, err, ErrBufferSize)
}

func TestKeygen_Distinct(t *testing.T) {
	eng := newTestEngine(t)
	details := eng.Details()

	pub1 := make([]byte, details.PublicKeyLength)
	pub2 := make([]byte, details.PublicKeyLength)
	priv := make([]byte, details.PrivateKeyLength)

	require.NoError(t, eng.Keygen(priv, pub1))
	require.NoError(t, eng.Keygen(priv, pub2))
	assert.NotEqual(t, pub1, pub2)
}

func TestSignVerify(t *testing.T) {
	eng := newTestEngine(t)
	details := eng.Details()

	priv := make([]byte, details.PrivateKeyLength)
	pub := make([]byte, details.PublicKeyLength)
	require.NoError(t, eng.Keygen(priv, pub))

	message := []byte("test")
	signature, err := eng.Sign(priv, message)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(signature), details.MaxSignatureLength)

	ok, err := eng.Verify(pub, message, signature)
	require.NoError(t, err)
	assert.True(t, ok)

	// A different message must not verify
	ok, err = eng.Verify(pub, []byte("tset"), signature)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerify_TamperedSignature(t *testing.T) {
	eng := newTestEngine(t)
	details := eng.Details()

	priv := make([]byte, details.PrivateKeyLength)
	pub := make([]byte, details.PublicKeyLength)
	require.NoError(t, eng.Keygen(priv, pub))

	message := []byte("attack at dawn")
	signature, err := eng.Sign(priv, message)
	require.NoError(t, err)

	signature[0] ^= 0x01
	ok, err := eng.Verify(pub, message, signature)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSign_BufferSize(t *testing.T) {
	eng := newTestEngine(t)

	_, err := eng.Sign(make([]byte, 3), []byte("msg"))
	assert.ErrorIs(t, err, ErrBufferSize)
}

func TestVerify_BufferSize(t *testing.T) {
	eng := newTestEngine(t)

	_, err := eng.Verify(make([]byte, 3), []byte("msg"), []byte("sig"))
	assert.ErrorIs(t, err, ErrBufferSize)
}

func TestKeygen_AfterClose(t *testing.T) {
	eng, err := New(types.AlgorithmMLDSA44)
	require.NoError(t, err)
	details := eng.Details()
	eng.Close()

	err = eng.Keygen(make([]byte, details.PrivateKeyLength), make([]byte, details.PublicKeyLength))
	assert.ErrorIs(t, err, ErrKeygenFailed)
}

func TestRegister_CustomScheme(t *testing.T) {
	alg := types.Algorithm("test-scheme")
	require.False(t, Supported(alg))

	Register(alg, func() (Engine, error) {
		return newCirclEngine(types.AlgorithmMLDSA44)
	})
	assert.True(t, Supported(alg))

	eng, err := New(alg)
	require.NoError(t, err)
	eng.Close()
}
