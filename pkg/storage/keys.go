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

package storage

import "strings"

// keyPrefix namespaces key records away from any other data sharing the
// backend.
const keyPrefix = "keys/"

// KeyPath returns the backend key under which the key record for id is
// stored.
func KeyPath(id string) string {
	return keyPrefix + id
}

// SaveKey stores the encoded key record for id.
func SaveKey(backend Backend, id string, data []byte) error {
	if id == "" {
		return ErrInvalidID
	}
	return backend.Put(KeyPath(id), data, DefaultOptions())
}

// GetKey retrieves the encoded key record for id.
func GetKey(backend Backend, id string) ([]byte, error) {
	if id == "" {
		return nil, ErrInvalidID
	}
	return backend.Get(KeyPath(id))
}

// DeleteKey removes the key record for id.
func DeleteKey(backend Backend, id string) error {
	if id == "" {
		return ErrInvalidID
	}
	return backend.Delete(KeyPath(id))
}

// KeyExists checks whether a key record exists for id.
func KeyExists(backend Backend, id string) (bool, error) {
	if id == "" {
		return false, ErrInvalidID
	}
	return backend.Exists(KeyPath(id))
}

// ListKeys returns the IDs of all stored key records.
func ListKeys(backend Backend) ([]string, error) {
	paths, err := backend.List(keyPrefix)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(paths))
	for _, p := range paths {
		ids = append(ids, strings.TrimPrefix(p, keyPrefix))
	}
	return ids, nil
}
