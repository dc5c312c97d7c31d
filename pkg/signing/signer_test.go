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

package signing

import (
	"crypto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-pqsig/pkg/encoding"
	"github.com/jeremyhahn/go-pqsig/pkg/keymethod"
	"github.com/jeremyhahn/go-pqsig/pkg/types"
)

func newTestSigner(t *testing.T) (*keymethod.Method, *Signer) {
	t.Helper()

	m, err := keymethod.New(types.AlgorithmMLDSA44)
	require.NoError(t, err)

	rec, err := m.Keygen()
	require.NoError(t, err)

	signer, err := NewSigner(m, rec)
	require.NoError(t, err)
	t.Cleanup(signer.Close)
	return m, signer
}

func TestNewSigner_Validation(t *testing.T) {
	m, err := keymethod.New(types.AlgorithmMLDSA44)
	require.NoError(t, err)

	_, err = NewSigner(nil, nil)
	assert.ErrorIs(t, err, ErrMethodRequired)

	_, err = NewSigner(m, nil)
	assert.ErrorIs(t, err, ErrRecordRequired)

	// A public-only record is not enough
	rec, err := m.Keygen()
	require.NoError(t, err)
	der, err := m.EncodePublic(rec)
	require.NoError(t, err)
	m.Free(rec)

	pubRec, err := m.DecodePublic(der)
	require.NoError(t, err)
	defer m.Free(pubRec)

	_, err = NewSigner(m, pubRec)
	assert.ErrorIs(t, err, ErrPrivateKeyRequired)
}

func TestSigner_SignVerify(t *testing.T) {
	m, signer := newTestSigner(t)

	message := []byte("sign me")
	signature, err := signer.Sign(nil, message, nil)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(signature), signer.MaxSignatureLength())

	// Verify through a record decoded from the signer's public key
	pub, ok := signer.Public().(*PublicKey)
	require.True(t, ok)

	der, err := encoding.MarshalPublicKey(m.OID(), pub.Bytes())
	require.NoError(t, err)

	rec, err := m.DecodePublic(der)
	require.NoError(t, err)
	defer m.Free(rec)

	valid, err := m.Verify(rec, message, signature)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestSigner_RejectsDigestOpts(t *testing.T) {
	_, signer := newTestSigner(t)

	_, err := signer.Sign(nil, []byte("msg"), crypto.SHA256)
	assert.ErrorIs(t, err, ErrUnsupportedOpts)
}

func TestSigner_AcceptsHashZero(t *testing.T) {
	_, signer := newTestSigner(t)

	_, err := signer.Sign(nil, []byte("msg"), crypto.Hash(0))
	assert.NoError(t, err)
}

func TestSigner_Algorithm(t *testing.T) {
	_, signer := newTestSigner(t)
	assert.Equal(t, types.AlgorithmMLDSA44, signer.Algorithm())
}

func TestSigner_Close(t *testing.T) {
	_, signer := newTestSigner(t)

	signer.Close()
	signer.Close()

	_, err := signer.Sign(nil, []byte("msg"), nil)
	assert.ErrorIs(t, err, ErrSignerClosed)
	assert.Zero(t, signer.MaxSignatureLength())

	// Public stays usable after Close
	assert.NotNil(t, signer.Public())
}

func TestPublicKey_Equal(t *testing.T) {
	a := NewPublicKey(types.AlgorithmMLDSA44, []byte{1, 2, 3})
	b := NewPublicKey(types.AlgorithmMLDSA44, []byte{1, 2, 3})
	c := NewPublicKey(types.AlgorithmMLDSA44, []byte{1, 2, 4})
	d := NewPublicKey(types.AlgorithmMLDSA65, []byte{1, 2, 3})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal("not a key"))
}

func TestPublicKey_BytesIsCopy(t *testing.T) {
	raw := []byte{1, 2, 3}
	pub := NewPublicKey(types.AlgorithmMLDSA44, raw)

	got := pub.Bytes()
	got[0] = 0xff
	assert.Equal(t, []byte{1, 2, 3}, pub.Bytes())

	raw[1] = 0xff
	assert.Equal(t, []byte{1, 2, 3}, pub.Bytes())
}

func TestPublicKey_Fingerprint(t *testing.T) {
	a := NewPublicKey(types.AlgorithmMLDSA44, []byte{1, 2, 3})
	b := NewPublicKey(types.AlgorithmMLDSA44, []byte{1, 2, 3})
	c := NewPublicKey(types.AlgorithmMLDSA44, []byte{9, 9, 9})

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	assert.Len(t, a.Fingerprint(), 64)
}
