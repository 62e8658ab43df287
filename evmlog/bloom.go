// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package evmlog

import "github.com/Fantom-foundation/Carmen-logs/go/common"

// Bloom computes the bloom of this log using Keccak-256, covering the
// address and all topics. The data is not part of the bloom.
func (l Log) Bloom() common.Bloom {
	return l.BloomWith(common.Keccak256Hasher{})
}

// BloomWith computes the bloom of this log using the given hash function.
func (l Log) BloomWith(hasher common.Hasher) common.Bloom {
	res := common.BloomFromHash(hasher.Hash(l.address[:]))
	for i := range l.topics {
		res = res.WithBloomed(hasher.Hash(l.topics[i][:]))
	}
	return res
}

// LogsBloom computes the union of the blooms of all given logs, as stored
// in block headers and receipts.
func LogsBloom(logs []Log) common.Bloom {
	var res common.Bloom
	for _, log := range logs {
		res = res.Or(log.Bloom())
	}
	return res
}
