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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testOID = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 3, 17}

func TestAlgorithmIdentifier_ParametersAbsent(t *testing.T) {
	ai := NewAlgorithmIdentifier(testOID)
	assert.True(t, ai.ParametersAbsent())

	// An encoded NULL is present, not absent
	ai.Parameters = asn1.RawValue{FullBytes: []byte{0x05, 0x00}}
	assert.False(t, ai.ParametersAbsent())
}

func TestAlgorithmIdentifier_SetAbsent(t *testing.T) {
	var ai AlgorithmIdentifier
	ai.Parameters = asn1.RawValue{FullBytes: []byte{0x05, 0x00}}

	ai.SetAbsent(testOID)
	assert.True(t, ai.Algorithm.Equal(testOID))
	assert.True(t, ai.ParametersAbsent())
}

func TestAlgorithmIdentifier_AbsentSurvivesMarshal(t *testing.T) {
	ai := NewAlgorithmIdentifier(testOID)

	der, err := asn1.Marshal(ai)
	require.NoError(t, err)

	var parsed AlgorithmIdentifier
	_, err = asn1.Unmarshal(der, &parsed)
	require.NoError(t, err)

	assert.True(t, parsed.Algorithm.Equal(testOID))
	assert.True(t, parsed.ParametersAbsent())
}

func TestMarshalPublicKey_RoundTrip(t *testing.T) {
	raw := []byte{0x01, 0x02, 0x03, 0x04}

	der, err := MarshalPublicKey(testOID, raw)
	require.NoError(t, err)

	ai, got, err := ParsePublicKey(der)
	require.NoError(t, err)
	assert.True(t, ai.Algorithm.Equal(testOID))
	assert.True(t, ai.ParametersAbsent())
	assert.Equal(t, raw, got)
}

func TestMarshalPublicKey_Empty(t *testing.T) {
	_, err := MarshalPublicKey(testOID, nil)
	assert.ErrorIs(t, err, ErrEmptyPayload)
}

func TestParsePublicKey_Malformed(t *testing.T) {
	_, _, err := ParsePublicKey([]byte{0xde, 0xad, 0xbe, 0xef})
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestParsePublicKey_TrailingData(t *testing.T) {
	der, err := MarshalPublicKey(testOID, []byte{0x01})
	require.NoError(t, err)

	_, _, err = ParsePublicKey(append(der, 0x00))
	assert.ErrorIs(t, err, ErrTrailingData)
}

func TestParsePublicKey_ParametersPresent(t *testing.T) {
	info := publicKeyInfo{
		Algorithm: AlgorithmIdentifier{
			Algorithm:  testOID,
			Parameters: asn1.RawValue{Tag: asn1.TagNull},
		},
		PublicKey: asn1.BitString{Bytes: []byte{0x01}, BitLength: 8},
	}
	der, err := asn1.Marshal(info)
	require.NoError(t, err)

	_, _, err = ParsePublicKey(der)
	assert.ErrorIs(t, err, ErrParametersPresent)
}

func TestParsePublicKey_NonOctetBitString(t *testing.T) {
	info := publicKeyInfo{
		Algorithm: NewAlgorithmIdentifier(testOID),
		PublicKey: asn1.BitString{Bytes: []byte{0x80}, BitLength: 3},
	}
	der, err := asn1.Marshal(info)
	require.NoError(t, err)

	_, _, err = ParsePublicKey(der)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestMarshalPrivateKey_RoundTrip(t *testing.T) {
	payload := []byte("private-then-public-bytes")

	der, err := MarshalPrivateKey(testOID, payload)
	require.NoError(t, err)

	ai, got, err := ParsePrivateKey(der)
	require.NoError(t, err)
	assert.True(t, ai.Algorithm.Equal(testOID))
	assert.True(t, ai.ParametersAbsent())
	assert.Equal(t, payload, got)
}

func TestMarshalPrivateKey_Empty(t *testing.T) {
	_, err := MarshalPrivateKey(testOID, nil)
	assert.ErrorIs(t, err, ErrEmptyPayload)
}

func TestParsePrivateKey_ParametersPresent(t *testing.T) {
	inner, err := asn1.Marshal([]byte{0x01, 0x02})
	require.NoError(t, err)

	info := privateKeyInfo{
		Version: 0,
		Algorithm: AlgorithmIdentifier{
			Algorithm:  testOID,
			Parameters: asn1.RawValue{Tag: asn1.TagNull},
		},
		PrivateKey: inner,
	}
	der, err := asn1.Marshal(info)
	require.NoError(t, err)

	_, _, err = ParsePrivateKey(der)
	assert.ErrorIs(t, err, ErrParametersPresent)
}

func TestParsePrivateKey_Malformed(t *testing.T) {
	_, _, err := ParsePrivateKey([]byte{0x30, 0x01, 0xff})
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestPEM_RoundTrip(t *testing.T) {
	der := []byte{0x30, 0x03, 0x02, 0x01, 0x01}

	pemBytes, err := EncodePEM(PEMTypePublicKey, der)
	require.NoError(t, err)
	assert.Contains(t, string(pemBytes), "-----BEGIN PUBLIC KEY-----")

	blockType, got, err := DecodePEM(pemBytes)
	require.NoError(t, err)
	assert.Equal(t, PEMTypePublicKey, blockType)
	assert.Equal(t, der, got)
}

func TestEncodePEM_Empty(t *testing.T) {
	_, err := EncodePEM(PEMTypePrivateKey, nil)
	assert.ErrorIs(t, err, ErrEmptyPayload)
}

func TestDecodePEM_Invalid(t *testing.T) {
	_, _, err := DecodePEM([]byte("not pem at all"))
	assert.ErrorIs(t, err, ErrInvalidPEM)
}
