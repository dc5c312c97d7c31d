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
	"sync"

	"github.com/jeremyhahn/go-pqsig/pkg/types"
)

// Constructor builds a fresh engine instance for one algorithm.
type Constructor func() (Engine, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[types.Algorithm]Constructor)
)

// Register makes an engine constructor available under the given
// algorithm identifier. Adding a scheme is a registry entry; existing
// entries are replaced.
func Register(alg types.Algorithm, ctor Constructor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[alg] = ctor
}

// New constructs a fresh engine for the algorithm. Unknown identifiers
// return ErrUnsupportedAlgorithm.
func New(alg types.Algorithm) (Engine, error) {
	registryMu.RLock()
	ctor, ok := registry[alg]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, alg)
	}
	return ctor()
}

// Supported reports whether an engine constructor is registered for the
// algorithm.
func Supported(alg types.Algorithm) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[alg]
	return ok
}

func init() {
	for _, alg := range types.Algorithms() {
		alg := alg
		Register(alg, func() (Engine, error) {
			return newCirclEngine(alg)
		})
	}
}
