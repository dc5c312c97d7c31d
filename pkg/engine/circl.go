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
	"fmt"
	"io"

	"github.com/cloudflare/circl/sign"
	"github.com/cloudflare/circl/sign/schemes"

	"github.com/jeremyhahn/go-pqsig/pkg/types"
)

// circlEngine implements Engine on top of a circl signature scheme.
type circlEngine struct {
	scheme  sign.Scheme
	rng     *drbg
	details Details
}

// newCirclEngine constructs an engine for the named circl scheme with a
// fresh per-instance randomness source.
func newCirclEngine(alg types.Algorithm) (Engine, error) {
	scheme := schemes.ByName(alg.String())
	if scheme == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, alg)
	}

	rng, err := newDRBG()
	if err != nil {
		return nil, err
	}

	return &circlEngine{
		scheme: scheme,
		rng:    rng,
		details: Details{
			Algorithm:          alg,
			PublicKeyLength:    scheme.PublicKeySize(),
			PrivateKeyLength:   scheme.PrivateKeySize(),
			MaxSignatureLength: scheme.SignatureSize(),
			SecurityBits:       alg.SecurityBits(),
		},
	}, nil
}

// Details returns the algorithm's fixed size parameters.
func (e *circlEngine) Details() Details {
	return e.details
}

// Keygen generates a fresh key pair into the caller-supplied buffers.
// The key pair is derived from a seed drawn from the engine's own
// randomness source.
func (e *circlEngine) Keygen(priv, pub []byte) error {
	if len(priv) != e.details.PrivateKeyLength || len(pub) != e.details.PublicKeyLength {
		return fmt.Errorf("%w: priv=%d pub=%d", ErrBufferSize, len(priv), len(pub))
	}
	if e.rng == nil {
		return fmt.Errorf("%w: engine is closed", ErrKeygenFailed)
	}

	seed := make([]byte, e.scheme.SeedSize())
	if _, err := io.ReadFull(e.rng, seed); err != nil {
		return fmt.Errorf("%w: %v", ErrKeygenFailed, err)
	}
	defer zeroize(seed)

	pk, sk := e.scheme.DeriveKey(seed)

	pkBytes, err := pk.MarshalBinary()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrKeygenFailed, err)
	}
	skBytes, err := sk.MarshalBinary()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrKeygenFailed, err)
	}
	defer zeroize(skBytes)

	copy(pub, pkBytes)
	copy(priv, skBytes)
	return nil
}

// Sign signs the full message with the private key bytes.
func (e *circlEngine) Sign(priv, message []byte) ([]byte, error) {
	if len(priv) != e.details.PrivateKeyLength {
		return nil, fmt.Errorf("%w: priv=%d", ErrBufferSize, len(priv))
	}

	sk, err := e.scheme.UnmarshalBinaryPrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	signature := e.scheme.Sign(sk, message, nil)
	if len(signature) == 0 {
		return nil, ErrSignFailed
	}
	return signature, nil
}

// Verify reports whether signature is valid for message.
func (e *circlEngine) Verify(pub, message, signature []byte) (bool, error) {
	if len(pub) != e.details.PublicKeyLength {
		return false, fmt.Errorf("%w: pub=%d", ErrBufferSize, len(pub))
	}

	pk, err := e.scheme.UnmarshalBinaryPublicKey(pub)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	return e.scheme.Verify(pk, message, signature, nil), nil
}

// Close tears down the engine's randomness source.
func (e *circlEngine) Close() {
	if e.rng != nil {
		e.rng.Close()
		e.rng = nil
	}
}

func zeroize(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
