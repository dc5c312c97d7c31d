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
	"fmt"
	"io"
)

// bytesPerLine matches the conventional key dump layout.
const bytesPerLine = 15

// PrintPublic writes a human-readable dump of the record's public key.
func (m *Method) PrintPublic(w io.Writer, rec *KeyRecord, indent int) error {
	if rec == nil || rec.publicBytes == nil {
		_, err := fmt.Fprintf(w, "%*s<INVALID PUBLIC KEY>\n", indent, "")
		return err
	}

	if _, err := fmt.Fprintf(w, "%*s%s Public-Key:\n", indent, "", m.algorithm); err != nil {
		return err
	}
	return printKeyBuf(w, "pub", rec.publicBytes, indent)
}

// PrintPrivate writes a human-readable dump of the record's private and
// public keys.
func (m *Method) PrintPrivate(w io.Writer, rec *KeyRecord, indent int) error {
	if rec == nil || rec.privateBytes == nil {
		_, err := fmt.Fprintf(w, "%*s<INVALID PRIVATE KEY>\n", indent, "")
		return err
	}

	if _, err := fmt.Fprintf(w, "%*s%s Private-Key:\n", indent, "", m.algorithm); err != nil {
		return err
	}
	if err := printKeyBuf(w, "priv", rec.privateBytes, indent); err != nil {
		return err
	}
	return printKeyBuf(w, "pub", rec.publicBytes, indent)
}

// printKeyBuf dumps buf as colon-separated hex under a label, indented
// four spaces past the label.
func printKeyBuf(w io.Writer, label string, buf []byte, indent int) error {
	if _, err := fmt.Fprintf(w, "%*s%s:\n", indent, "", label); err != nil {
		return err
	}

	for i := 0; i < len(buf); i += bytesPerLine {
		end := i + bytesPerLine
		if end > len(buf) {
			end = len(buf)
		}
		if _, err := fmt.Fprintf(w, "%*s", indent+4, ""); err != nil {
			return err
		}
		for j := i; j < end; j++ {
			sep := ":"
			if j == len(buf)-1 {
				sep = ""
			}
			if _, err := fmt.Fprintf(w, "%02x%s", buf[j], sep); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
