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
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/sha3"
)

const drbgSeedSize = 48

// drbg is a SHAKE256-based deterministic random bit generator. Every
// engine instance owns one, seeded from the operating system at
// construction, so tearing down the engine also tears down its randomness
// source and no generator state is shared between unrelated keys.
type drbg struct {
	shake sha3.ShakeHash
}

func newDRBG() (*drbg, error) {
	seed := make([]byte, drbgSeedSize)
	if _, err := io.ReadFull(rand.Reader, seed); err != nil {
		return nil, fmt.Errorf("failed to seed drbg: %w", err)
	}

	shake := sha3.NewShake256()
	shake.Write(seed)
	for i := range seed {
		seed[i] = 0
	}

	return &drbg{shake: shake}, nil
}

// Read fills p with output from the generator. Implements io.Reader.
func (d *drbg) Read(p []byte) (int, error) {
	return d.shake.Read(p)
}

// Close discards the generator state.
func (d *drbg) Close() {
	if d.shake != nil {
		d.shake.Reset()
		d.shake = nil
	}
}
