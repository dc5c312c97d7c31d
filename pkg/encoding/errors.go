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

import "errors"

var (
	// ErrMalformed indicates the container could not be parsed
	ErrMalformed = errors.New("encoding: malformed container")

	// ErrParametersPresent indicates the algorithm identifier carries
	// parameters, which this algorithm family forbids
	ErrParametersPresent = errors.New("encoding: algorithm parameters must be absent")

	// ErrTrailingData indicates bytes remain after the container
	ErrTrailingData = errors.New("encoding: trailing data after container")

	// ErrEmptyPayload indicates the container carries no key bytes
	ErrEmptyPayload = errors.New("encoding: empty key payload")

	// ErrInvalidPEM indicates PEM data could not be decoded
	ErrInvalidPEM = errors.New("encoding: invalid PEM data")
)
