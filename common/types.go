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
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// AddressSize is the number of bytes of an account or contract address.
const AddressSize = 20

// HashSize is the number of bytes of a Keccak-256 hash or a log topic.
const HashSize = 32

// Address is the 20 byte identifier of an account or contract.
type Address [AddressSize]byte

// Hash is a 32 byte value, used for hashes and log topics.
type Hash [HashSize]byte

func (a Address) String() string {
	return fmt.Sprintf("0x%x", a[:])
}

func (h Hash) String() string {
	return fmt.Sprintf("0x%x", h[:])
}

// AddressFromString parses a hex encoded address, with or without 0x prefix.
// The input must describe exactly 20 bytes.
func AddressFromString(str string) (Address, error) {
	var res Address
	if err := DecodeFixedHex(str, res[:]); err != nil {
		return Address{}, fmt.Errorf("invalid address %q: %w", str, err)
	}
	return res, nil
}

// HashFromString parses a hex encoded hash, with or without 0x prefix.
// The input must describe exactly 32 bytes.
func HashFromString(str string) (Hash, error) {
	var res Hash
	if err := DecodeFixedHex(str, res[:]); err != nil {
		return Hash{}, fmt.Errorf("invalid hash %q: %w", str, err)
	}
	return res, nil
}

// MustAddressFromString is like AddressFromString but panics on invalid inputs.
// It is intended for constants in tests and tools.
func MustAddressFromString(str string) Address {
	res, err := AddressFromString(str)
	if err != nil {
		panic(err)
	}
	return res
}

// MustHashFromString is like HashFromString but panics on invalid inputs.
func MustHashFromString(str string) Hash {
	res, err := HashFromString(str)
	if err != nil {
		panic(err)
	}
	return res
}

// DecodeHex decodes a hex string. The 0x prefix is optional.
func DecodeHex(str string) ([]byte, error) {
	if !strings.HasPrefix(str, "0x") && !strings.HasPrefix(str, "0X") {
		str = "0x" + str
	}
	return hexutil.Decode(str)
}

// DecodeFixedHex decodes a hex string of exactly len(dst) bytes into dst.
func DecodeFixedHex(str string, dst []byte) error {
	data, err := DecodeHex(str)
	if err != nil {
		return err
	}
	if len(data) != len(dst) {
		return fmt.Errorf("expected %d bytes, got %d", len(dst), len(data))
	}
	copy(dst, data)
	return nil
}
