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

//go:generate mockgen -source hasher.go -destination hasher_mock.go -package common

// Hasher is a cryptographic hash function producing 32 byte digests.
// Implementations must be deterministic and safe for concurrent use.
type Hasher interface {
	Hash(data []byte) Hash
}
