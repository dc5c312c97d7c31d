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
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDRBG_Read(t *testing.T) {
	rng, err := newDRBG()
	require.NoError(t, err)
	defer rng.Close()

	a := make([]byte, 32)
	b := make([]byte, 32)
	_, err = io.ReadFull(rng, a)
	require.NoError(t, err)
	_, err = io.ReadFull(rng, b)
	require.NoError(t, err)

	// Successive reads must differ
	assert.NotEqual(t, a, b)
}

func TestDRBG_InstancesIndependent(t *testing.T) {
	rng1, err := newDRBG()
	require.NoError(t, err)
	defer rng1.Close()

	rng2, err := newDRBG()
	require.NoError(t, err)
	defer rng2.Close()

	a := make([]byte, 32)
	b := make([]byte, 32)
	_, err = io.ReadFull(rng1, a)
	require.NoError(t, err)
	_, err = io.ReadFull(rng2, b)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
