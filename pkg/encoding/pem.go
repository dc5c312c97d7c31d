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

import (
	"encoding/pem"
	"fmt"
)

const (
	// PEMTypePublicKey is the PEM block type for public key containers.
	PEMTypePublicKey = "PUBLIC KEY"

	// PEMTypePrivateKey is the PEM block type for private key containers.
	PEMTypePrivateKey = "PRIVATE KEY"
)

// EncodePEM wraps DER container bytes in a PEM block of the given type.
func EncodePEM(blockType string, der []byte) ([]byte, error) {
	if len(der) == 0 {
		return nil, ErrEmptyPayload
	}
	block := &pem.Block{
		Type:  blockType,
		Bytes: der,
	}
	return pem.EncodeToMemory(block), nil
}

// DecodePEM decodes the first PEM block in data, returning the block
// type and the DER container bytes.
func DecodePEM(data []byte) (string, []byte, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return "", nil, ErrInvalidPEM
	}
	if len(block.Bytes) == 0 {
		return "", nil, fmt.Errorf("%w: empty PEM block", ErrInvalidPEM)
	}
	return block.Type, block.Bytes, nil
}
