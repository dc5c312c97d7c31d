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

// Package bolt provides a bbolt-backed storage backend for key
// containers. A single bucket holds all records; the database file is
// created with owner-only permissions.
package bolt

import (
	"bytes"
	"fmt"
	"io/fs"
	"sync"

	bolt "go.etcd.io/bbolt"

	"github.com/jeremyhahn/go-pqsig/pkg/storage"
)

const recordsBucket = "records"

// Backend implements storage.Backend on top of a bbolt database file.
type Backend struct {
	db *bolt.DB

	mu     sync.Mutex
	closed bool
}

// New opens (or creates) the database at path and ensures the records
// bucket exists. A zero mode defaults to owner-only permissions.
func New(path string, mode fs.FileMode) (*Backend, error) {
	if mode == 0 {
		mode = 0600
	}
	db, err := bolt.Open(path, mode, nil)
	if err != nil {
		return nil, fmt.Errorf("bolt: open %s: %w", path, err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(recordsBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("bolt: create bucket: %w", err)
	}

	return &Backend{db: db}, nil
}

// Get retrieves the value for the given key.
func (b *Backend) Get(key string) ([]byte, error) {
	if err := b.checkOpen(); err != nil {
		return nil, err
	}

	var value []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket([]byte(recordsBucket)).Get([]byte(key))
		if raw == nil {
			return storage.ErrNotFound
		}
		// Bolt-owned memory is only valid inside the transaction.
		value = make([]byte, len(raw))
		copy(value, raw)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Put stores the value for the given key.
func (b *Backend) Put(key string, value []byte, opts *storage.Options) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	if key == "" {
		return storage.ErrInvalidID
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(recordsBucket)).Put([]byte(key), value)
	})
}

// Delete removes the key and its value.
func (b *Backend) Delete(key string) error {
	if err := b.checkOpen(); err != nil {
		return err
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket([]byte(recordsBucket))
		if bkt.Get([]byte(key)) == nil {
			return storage.ErrNotFound
		}
		return bkt.Delete([]byte(key))
	})
}

// List returns all keys with the given prefix, in bucket (sorted) order.
func (b *Backend) List(prefix string) ([]string, error) {
	if err := b.checkOpen(); err != nil {
		return nil, err
	}

	var keys []string
	err := b.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(recordsBucket)).Cursor()
		p := []byte(prefix)
		for k, _ := c.Seek(p); k != nil && bytes.HasPrefix(k, p); k, _ = c.Next() {
			keys = append(keys, string(k))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// Exists checks if a key exists.
func (b *Backend) Exists(key string) (bool, error) {
	if err := b.checkOpen(); err != nil {
		return false, err
	}

	exists := false
	err := b.db.View(func(tx *bolt.Tx) error {
		exists = tx.Bucket([]byte(recordsBucket)).Get([]byte(key)) != nil
		return nil
	})
	return exists, err
}

// Close closes the underlying database. Safe to call more than once.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	return b.db.Close()
}

func (b *Backend) checkOpen() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return storage.ErrClosed
	}
	return nil
}

var _ storage.Backend = (*Backend)(nil)
