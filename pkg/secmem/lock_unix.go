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

//go:build unix

package secmem

import "golang.org/x/sys/unix"

// lock pins the buffer's pages into RAM so they cannot be written to swap.
func lock(buf []byte) error {
	return unix.Mlock(buf)
}

// unlock releases the pin. Callers erase the buffer first.
func unlock(buf []byte) error {
	return unix.Munlock(buf)
}
