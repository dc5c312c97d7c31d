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

// Package keystore manages named post-quantum signing keys on top of a
// storage backend. Keys are generated through the key method layer,
// persisted as private key containers, and handed out as crypto.Signer
// implementations.
package keystore

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jeremyhahn/go-pqsig/pkg/keymethod"
	"github.com/jeremyhahn/go-pqsig/pkg/logging"
	"github.com/jeremyhahn/go-pqsig/pkg/metrics"
	"github.com/jeremyhahn/go-pqsig/pkg/secmem"
	"github.com/jeremyhahn/go-pqsig/pkg/signing"
	"github.com/jeremyhahn/go-pqsig/pkg/storage"
	"github.com/jeremyhahn/go-pqsig/pkg/types"
)

// Config holds the keystore dependencies. Zero-value fields fall back
// to an in-memory backend, the default secure allocator, and the
// default logger.
type Config struct {
	Storage   storage.Backend
	Allocator secmem.Allocator
	Logger    *logging.Logger
}

// keyMetadata is the stored representation of a key: the algorithm name
// plus the encoded private key container.
type keyMetadata struct {
	Algorithm  string    `json:"algorithm"`
	PrivateKey []byte    `json:"private_key"`
	CreatedAt  time.Time `json:"created_at"`
}

// KeyStore manages named signing keys. Thread-safe.
type KeyStore struct {
	storage storage.Backend
	alloc   secmem.Allocator
	logger  *logging.Logger

	mu      sync.Mutex
	methods map[types.Algorithm]*keymethod.Method
	closed  bool

	// writeMu serializes check-and-store sequences against the backend
	// so concurrent generates under one ID cannot both pass the
	// uniqueness check. It also guards keyCounts.
	writeMu   sync.Mutex
	keyCounts map[types.Algorithm]int
}

// New creates a KeyStore from cfg, filling in defaults for unset fields.
func New(cfg Config) (*KeyStore, error) {
	if cfg.Storage == nil {
		cfg.Storage = storage.NewMemory()
	}
	if cfg.Allocator == nil {
		cfg.Allocator = secmem.Default()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.DefaultLogger()
	}
	return &KeyStore{
		storage: cfg.Storage,
		alloc:   cfg.Allocator,
		logger:  cfg.Logger,
		methods: make(map[types.Algorithm]*keymethod.Method),
	}, nil
}

// method returns the cached key method for alg, constructing it on
// first use.
func (ks *KeyStore) method(alg types.Algorithm) (*keymethod.Method, error) {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	if ks.closed {
		return nil, ErrClosed
	}
	if m, ok := ks.methods[alg]; ok {
		return m, nil
	}
	m, err := keymethod.New(alg,
		keymethod.WithAllocator(ks.alloc),
		keymethod.WithLogger(ks.logger))
	if err != nil {
		return nil, err
	}
	ks.methods[alg] = m
	return m, nil
}

// GenerateKey generates a new keypair for alg and stores it under id.
// An empty id gets a generated UUID. Returns the ID the key was stored
// under. Generating over an existing ID is an error; use RotateKey to
// replace key material.
func (ks *KeyStore) GenerateKey(id string, alg types.Algorithm) (string, error) {
	start := time.Now()
	if id == "" {
		id = uuid.NewString()
	}

	if err := ks.generateAndStore(id, alg, false); err != nil {
		metrics.RecordOperation(metrics.OpGenerate, alg.String(), metrics.StatusError, time.Since(start).Seconds())
		metrics.RecordError(metrics.OpGenerate, alg.String(), errorType(err))
		return "", err
	}

	metrics.RecordOperation(metrics.OpGenerate, alg.String(), metrics.StatusSuccess, time.Since(start).Seconds())
	ks.logger.Debugf("keystore: generated %s key %s", alg, id)
	return id, nil
}

// generateAndStore generates a fresh keypair and persists it under id.
// The keypair is fully generated and encoded before the backend is
// touched, so a failure never disturbs an existing record. With
// overwrite set the stored record is replaced; otherwise an existing
// record under id is ErrKeyExists.
func (ks *KeyStore) generateAndStore(id string, alg types.Algorithm, overwrite bool) error {
	m, err := ks.method(alg)
	if err != nil {
		return err
	}

	rec, err := m.Keygen()
	if err != nil {
		return err
	}
	defer m.Free(rec)

	der, err := m.EncodePrivate(rec)
	if err != nil {
		return err
	}

	meta := keyMetadata{
		Algorithm:  alg.String(),
		PrivateKey: der,
		CreatedAt:  time.Now().UTC(),
	}
	blob, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMetadata, err)
	}

	ks.writeMu.Lock()
	defer ks.writeMu.Unlock()

	if !overwrite {
		exists, err := storage.KeyExists(ks.storage, id)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: %s", ErrKeyExists, id)
		}
	}
	if err := storage.SaveKey(ks.storage, id, blob); err != nil {
		return err
	}
	if !overwrite {
		ks.bumpKeyCountLocked(alg, 1)
	}
	return nil
}

// bumpKeyCountLocked adjusts the per-algorithm key count gauge. The
// first call scans the backend so counts are right for reopened
// durable stores; the scan already reflects the current state, so the
// delta is only applied afterwards. Caller holds writeMu.
func (ks *KeyStore) bumpKeyCountLocked(alg types.Algorithm, delta int) {
	if ks.keyCounts == nil {
		ks.loadKeyCountsLocked()
	} else {
		ks.keyCounts[alg] += delta
	}
	metrics.SetKeysTotal(alg.String(), float64(ks.keyCounts[alg]))
}

func (ks *KeyStore) loadKeyCountsLocked() {
	ks.keyCounts = make(map[types.Algorithm]int)
	ids, err := storage.ListKeys(ks.storage)
	if err != nil {
		return
	}
	for _, id := range ids {
		blob, err := storage.GetKey(ks.storage, id)
		if err != nil {
			continue
		}
		var meta keyMetadata
		if json.Unmarshal(blob, &meta) != nil {
			continue
		}
		ks.keyCounts[types.Algorithm(meta.Algorithm)]++
	}
	for a, n := range ks.keyCounts {
		metrics.SetKeysTotal(a.String(), float64(n))
	}
}

// errorType maps an error to the label recorded on the errors counter.
func errorType(err error) string {
	switch {
	case errors.Is(err, ErrKeyNotFound):
		return "not_found"
	case errors.Is(err, ErrKeyExists):
		return "key_exists"
	case errors.Is(err, ErrInvalidMetadata):
		return "invalid_metadata"
	case errors.Is(err, ErrClosed), errors.Is(err, storage.ErrClosed):
		return "closed"
	default:
		return "internal"
	}
}

// load fetches and decodes the private key record stored under id. The
// caller owns the returned record and must release it.
func (ks *KeyStore) load(id string) (*keymethod.Method, *keymethod.KeyRecord, error) {
	m, rec, err := ks.loadRecord(id)
	if err != nil {
		metrics.RecordError(metrics.OpGet, "", errorType(err))
	}
	return m, rec, err
}

func (ks *KeyStore) loadRecord(id string) (*keymethod.Method, *keymethod.KeyRecord, error) {
	blob, err := storage.GetKey(ks.storage, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: %s", ErrKeyNotFound, id)
		}
		return nil, nil, err
	}

	var meta keyMetadata
	if err := json.Unmarshal(blob, &meta); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidMetadata, err)
	}

	alg := types.Algorithm(meta.Algorithm)
	if !alg.Valid() {
		return nil, nil, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidMetadata, meta.Algorithm)
	}

	m, err := ks.method(alg)
	if err != nil {
		return nil, nil, err
	}

	rec, err := m.DecodePrivate(meta.PrivateKey)
	if err != nil {
		return nil, nil, err
	}
	return m, rec, nil
}

// Signer returns a crypto.Signer backed by the key stored under id. The
// caller must Close the signer to release its key material.
func (ks *KeyStore) Signer(id string) (*signing.Signer, error) {
	m, rec, err := ks.load(id)
	if err != nil {
		return nil, err
	}

	signer, err := signing.NewSigner(m, rec)
	if err != nil {
		rec.Release()
		return nil, err
	}
	return signer, nil
}

// PublicKey returns the public key stored under id.
func (ks *KeyStore) PublicKey(id string) (*signing.PublicKey, error) {
	m, rec, err := ks.load(id)
	if err != nil {
		return nil, err
	}
	defer m.Free(rec)

	return signing.NewPublicKey(rec.Algorithm(), rec.PublicBytes()), nil
}

// Sign signs message with the key stored under id.
func (ks *KeyStore) Sign(id string, message []byte) ([]byte, error) {
	start := time.Now()
	m, rec, err := ks.load(id)
	if err != nil {
		return nil, err
	}
	defer m.Free(rec)

	signature, err := m.Sign(rec, message)
	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
	}
	metrics.RecordOperation(metrics.OpSign, rec.Algorithm().String(), status, time.Since(start).Seconds())
	return signature, err
}

// Verify reports whether signature validates message under the key
// stored under id.
func (ks *KeyStore) Verify(id string, message, signature []byte) (bool, error) {
	start := time.Now()
	m, rec, err := ks.load(id)
	if err != nil {
		return false, err
	}
	defer m.Free(rec)

	ok, err := m.Verify(rec, message, signature)
	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
	}
	metrics.RecordOperation(metrics.OpVerify, rec.Algorithm().String(), status, time.Since(start).Seconds())
	return ok, err
}

// Algorithm returns the algorithm of the key stored under id without
// decoding its key material.
func (ks *KeyStore) Algorithm(id string) (types.Algorithm, error) {
	blob, err := storage.GetKey(ks.storage, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", ErrKeyNotFound, id)
		}
		return "", err
	}

	var meta keyMetadata
	if err := json.Unmarshal(blob, &meta); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidMetadata, err)
	}
	alg := types.Algorithm(meta.Algorithm)
	if !alg.Valid() {
		return "", fmt.Errorf("%w: unknown algorithm %q", ErrInvalidMetadata, meta.Algorithm)
	}
	return alg, nil
}

// DeleteKey removes the key stored under id.
func (ks *KeyStore) DeleteKey(id string) error {
	alg, err := ks.Algorithm(id)
	if err != nil {
		metrics.RecordError(metrics.OpDelete, "", errorType(err))
		return err
	}

	ks.writeMu.Lock()
	defer ks.writeMu.Unlock()

	if err := storage.DeleteKey(ks.storage, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			err = fmt.Errorf("%w: %s", ErrKeyNotFound, id)
		}
		metrics.RecordError(metrics.OpDelete, alg.String(), errorType(err))
		return err
	}
	ks.bumpKeyCountLocked(alg, -1)
	metrics.RecordOperation(metrics.OpDelete, alg.String(), metrics.StatusSuccess, 0)
	return nil
}

// ListKeys returns the IDs of all stored keys.
func (ks *KeyStore) ListKeys() ([]string, error) {
	return storage.ListKeys(ks.storage)
}

// RotateKey replaces the key material under id with a fresh keypair of
// the same algorithm. The replacement is generated and encoded in full
// before the stored record is overwritten, so a failed rotation leaves
// the existing key untouched.
func (ks *KeyStore) RotateKey(id string) error {
	start := time.Now()
	alg, err := ks.Algorithm(id)
	if err != nil {
		metrics.RecordError(metrics.OpRotate, "", errorType(err))
		return err
	}

	if err := ks.generateAndStore(id, alg, true); err != nil {
		metrics.RecordOperation(metrics.OpRotate, alg.String(), metrics.StatusError, time.Since(start).Seconds())
		metrics.RecordError(metrics.OpRotate, alg.String(), errorType(err))
		return err
	}

	metrics.RecordOperation(metrics.OpRotate, alg.String(), metrics.StatusSuccess, time.Since(start).Seconds())
	ks.logger.Debugf("keystore: rotated %s key %s", alg, id)
	return nil
}

// Close closes the keystore and its storage backend. Safe to call more
// than once.
func (ks *KeyStore) Close() error {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	if ks.closed {
		return nil
	}
	ks.closed = true
	ks.methods = nil
	ks.keyCounts = nil
	return ks.storage.Close()
}
