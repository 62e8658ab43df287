// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package rlp

import (
	"fmt"

	"github.com/Fantom-foundation/Carmen-logs/go/common"
)

const (
	// ErrUnexpectedEnd is reported when the input ends before an item is complete.
	ErrUnexpectedEnd = common.ConstError("unexpected end of RLP input")
	// ErrTrailingBytes is reported when bytes remain after the top-level item.
	ErrTrailingBytes = common.ConstError("trailing bytes after RLP item")
	// ErrNonCanonical is reported for encodings that are valid but not minimal.
	ErrNonCanonical = common.ConstError("non-canonical RLP encoding")
)

// Decode decodes a single RLP item. The input must contain exactly one
// item. Decoded strings reference the input buffer, they are not copied.
// Only String and List items are produced.
func Decode(rlp []byte) (Item, error) {
	item, consumed, err := decode(rlp)
	if err != nil {
		return nil, err
	}
	if consumed != uint64(len(rlp)) {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingBytes, uint64(len(rlp))-consumed)
	}
	return item, nil
}

// decode decodes an RLP stream into an item.
// It checks first byte of the RLP stream to determine the type of the item.
// Based on the type, it decodes the type.
// It may recursively call itself to decode nested items.
// The second result is the number of bytes consumed.
func decode(rlp []byte) (Item, uint64, error) {
	if len(rlp) == 0 {
		return nil, 0, fmt.Errorf("%w: input RLP is empty", ErrUnexpectedEnd)
	}

	l := rlp[0]
	switch {
	case l < 0x80: // single byte RLP
		return String{Str: rlp[0:1]}, 1, nil

	case l <= 0xb7: // short string
		length := uint64(l - 0x80)
		if uint64(len(rlp)) < length+1 {
			return nil, 0, fmt.Errorf("%w: expected %d bytes, got: %d", ErrUnexpectedEnd, length+1, len(rlp))
		}
		if length == 1 && rlp[1] < 0x80 {
			return nil, 0, fmt.Errorf("%w: single byte %x encoded as string", ErrNonCanonical, rlp[1])
		}
		return String{Str: rlp[1 : length+1]}, length + 1, nil

	case l < 0xc0: // long string
		offset, length, err := readLongSize(rlp, l-0xb7)
		if err != nil {
			return nil, 0, err
		}
		return String{Str: rlp[offset : offset+length]}, offset + length, nil

	case l <= 0xf7: // short list
		length := uint64(l - 0xc0)
		if uint64(len(rlp)) < length+1 {
			return nil, 0, fmt.Errorf("%w: expected %d bytes, got: %d", ErrUnexpectedEnd, length+1, len(rlp))
		}
		items, err := decodeList(rlp[1 : length+1])
		if err != nil {
			return nil, 0, err
		}
		return List{Items: items}, length + 1, nil

	default: // long list
		offset, length, err := readLongSize(rlp, l-0xf7)
		if err != nil {
			return nil, 0, err
		}
		items, err := decodeList(rlp[offset : offset+length])
		if err != nil {
			return nil, 0, err
		}
		return List{Items: items}, offset + length, nil
	}
}

// decodeList decodes a list of items from the given RLP stream.
// The function expects an RLP stream with possibly multiple items encoded
// while the prefix with the length is already cut out.
// The consumes chunks of input RLP by passing it to the decoder
// until the input is empty.
func decodeList(rlp []byte) ([]Item, error) {
	items := make([]Item, 0, 4)
	buf := rlp
	for len(buf) > 0 {
		item, offset, err := decode(buf)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
		buf = buf[offset:]
	}

	return items, nil
}

// readLongSize parses the size of a long string or list whose length is
// encoded in sizeLength bytes following the prefix byte. It returns the
// offset of the payload and its length, verifying that the payload is
// present in the input.
func readLongSize(rlp []byte, sizeLength byte) (uint64, uint64, error) {
	length, err := readSize(rlp[1:], sizeLength)
	if err != nil {
		return 0, 0, err
	}
	if rlp[1] == 0 {
		return 0, 0, fmt.Errorf("%w: leading zero in size", ErrNonCanonical)
	}
	if length < 56 {
		return 0, 0, fmt.Errorf("%w: long form used for size %d", ErrNonCanonical, length)
	}
	offset := uint64(sizeLength) + 1
	if available := uint64(len(rlp)) - offset; length > available {
		return 0, 0, fmt.Errorf("%w: expected %d bytes, got: %d", ErrUnexpectedEnd, length, available)
	}
	return offset, length, nil
}

func readSize(b []byte, slen byte) (uint64, error) {
	if int(slen) > len(b) {
		return 0, fmt.Errorf("%w: expected %d bytes, got: %d", ErrUnexpectedEnd, slen, len(b))
	}
	var s uint64
	for i := byte(0); i < slen; i++ {
		s = s<<8 | uint64(b[i])
	}
	return s, nil
}
