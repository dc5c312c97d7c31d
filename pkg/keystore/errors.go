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

package keystore

import "errors"

var (
	// ErrClosed is returned when attempting to use a closed keystore.
	ErrClosed = errors.New("keystore: closed")

	// ErrKeyNotFound is returned when no key exists under the given ID.
	ErrKeyNotFound = errors.New("keystore: key not found")

	// ErrKeyExists is returned when generating under an ID that is taken.
	ErrKeyExists = errors.New("keystore: key already exists")

	// ErrInvalidMetadata is returned when a stored key record cannot be decoded.
	ErrInvalidMetadata = errors.New("keystore: invalid key metadata")
)
