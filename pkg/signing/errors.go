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

package signing

import "errors"

var (
	// ErrMethodRequired indicates no key method was provided
	ErrMethodRequired = errors.New("signing: key method is required")
	// ErrRecordRequired indicates no key record was provided
	ErrRecordRequired = errors.New("signing: key record is required")
	// ErrPrivateKeyRequired indicates the record holds no private key
	ErrPrivateKeyRequired = errors.New("signing: record holds no private key")
	// ErrUnsupportedOpts indicates signer options requested a digest
	ErrUnsupportedOpts = errors.New("signing: scheme signs raw messages, digest opts unsupported")
	// ErrSignerClosed indicates the signer's key material was released
	ErrSignerClosed = errors.New("signing: signer is closed")
)
