// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	// BloomByteLength is the number of bytes of a log bloom.
	BloomByteLength = 256
	// BloomBitLength is the number of bits of a log bloom.
	BloomBitLength = 8 * BloomByteLength
)

// Bloom is a 2048 bit filter summarizing addresses and topics of logs.
// Bits are numbered from the least significant bit of the last byte, so
// bit k is located in byte 255-k/8.
type Bloom [BloomByteLength]byte

// BloomFromHash creates a bloom with the three bits derived from the given
// hash set. Each bit index is taken from the low 11 bits of one of the first
// three big-endian 16-bit words of the hash.
func BloomFromHash(hash Hash) Bloom {
	var res Bloom
	for i := 0; i < 6; i += 2 {
		bit := (uint(hash[i])<<8 | uint(hash[i+1])) & (BloomBitLength - 1)
		res[BloomByteLength-1-bit/8] |= 1 << (bit % 8)
	}
	return res
}

// Or returns the bitwise union of both blooms.
func (b Bloom) Or(other Bloom) Bloom {
	for i := range b {
		b[i] |= other[i]
	}
	return b
}

// WithBloomed returns this bloom extended by the bits of the given hash.
func (b Bloom) WithBloomed(hash Hash) Bloom {
	return b.Or(BloomFromHash(hash))
}

// Contains tests whether all bits set in other are also set in this bloom.
func (b Bloom) Contains(other Bloom) bool {
	for i := range b {
		if b[i]&other[i] != other[i] {
			return false
		}
	}
	return true
}

// ContainsHash tests whether the value with the given hash may have been
// added to this bloom. False positives are possible, false negatives not.
func (b Bloom) ContainsHash(hash Hash) bool {
	return b.Contains(BloomFromHash(hash))
}

// IsEmpty is true if no bit is set.
func (b Bloom) IsEmpty() bool {
	return b == Bloom{}
}

func (b Bloom) String() string {
	return hexutil.Encode(b[:])
}

func (b Bloom) MarshalText() ([]byte, error) {
	return hexutil.Bytes(b[:]).MarshalText()
}

func (b *Bloom) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("Bloom", input, b[:])
}

// BloomFromString parses a hex encoded bloom, with or without 0x prefix.
func BloomFromString(str string) (Bloom, error) {
	var res Bloom
	if err := DecodeFixedHex(str, res[:]); err != nil {
		return Bloom{}, fmt.Errorf("invalid bloom: %w", err)
	}
	return res, nil
}
