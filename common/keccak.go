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
	"sync"

	"golang.org/x/crypto/sha3"
)

// Keccak256 computes the legacy Keccak-256 hash of the given data, as used
// throughout Ethereum. A nil input is hashed like an empty slice.
func Keccak256(data []byte) Hash {
	if len(data) == 0 {
		return emptyKeccak256Hash
	}
	return keccak256(data)
}

func Keccak256ForAddress(addr Address) Hash {
	return keccak256(addr[:])
}

func Keccak256ForHash(hash Hash) Hash {
	return keccak256(hash[:])
}

// Keccak256Hasher is the Hasher computing Keccak-256 hashes.
type Keccak256Hasher struct{}

func (Keccak256Hasher) Hash(data []byte) Hash {
	return Keccak256(data)
}

var keccakHasherPool = sync.Pool{New: func() any { return sha3.NewLegacyKeccak256() }}

type keccakHasher interface {
	Reset()
	Write(in []byte) (int, error)
	Read(out []byte) (int, error)
}

func keccak256(data []byte) Hash {
	hasher := keccakHasherPool.Get().(keccakHasher)
	hasher.Reset()
	hasher.Write(data)
	var res Hash
	hasher.Read(res[:])
	keccakHasherPool.Put(hasher)
	return res
}

var emptyKeccak256Hash = keccak256([]byte{})
