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

package keymethod

import (
	"errors"

	"github.com/jeremyhahn/go-pqsig/pkg/engine"
)

var (
	// ErrUnsupportedAlgorithm indicates the algorithm identifier is not
	// recognized. Aliased from the engine registry so callers can match
	// it at either layer.
	ErrUnsupportedAlgorithm = engine.ErrUnsupportedAlgorithm

	// ErrAllocation indicates secure memory could not be obtained; the
	// partially built record has been torn down
	ErrAllocation = errors.New("keymethod: allocation failed")

	// ErrMalformedKey indicates a wire container carried present
	// parameters or no key data
	ErrMalformedKey = errors.New("keymethod: malformed key container")

	// ErrSizeMismatch indicates decoded key bytes do not match the
	// algorithm's fixed expected length
	ErrSizeMismatch = errors.New("keymethod: key length does not match algorithm parameters")

	// ErrVerificationFailed indicates a signature did not validate
	ErrVerificationFailed = errors.New("keymethod: signature verification failed")

	// ErrSchemeMismatch indicates a signed structure names a different
	// scheme, or carries parameters where none are allowed
	ErrSchemeMismatch = errors.New("keymethod: algorithm identifier does not match scheme")

	// ErrUnsupportedControl indicates an unrecognized control request
	ErrUnsupportedControl = errors.New("keymethod: unsupported control request")

	// ErrUnsupportedDigest indicates an attempt to configure a digest;
	// the scheme signs caller-supplied data directly
	ErrUnsupportedDigest = errors.New("keymethod: scheme does not support a digest")

	// ErrNoPrivateKey indicates the record holds no private key material
	ErrNoPrivateKey = errors.New("keymethod: record has no private key")

	// ErrNoPublicKey indicates the record holds no public key material
	ErrNoPublicKey = errors.New("keymethod: record has no public key")

	// ErrNilArgument indicates a required argument was nil
	ErrNilArgument = errors.New("keymethod: nil argument")
)
