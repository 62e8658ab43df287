// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package logstore

import (
	"github.com/Fantom-foundation/Carmen-logs/go/common"
	"github.com/Fantom-foundation/Carmen-logs/go/evmlog"
)

//go:generate mockgen -source store.go -destination store_mock.go -package logstore

// Store retains the logs of blocks together with the aggregated bloom of
// each block, and supports filtering logs by address and topics.
type Store interface {
	// AddLogs sets the logs of the given block, replacing previously stored
	// logs of this block. The aggregated bloom is derived from the logs.
	AddLogs(block uint64, logs []evmlog.Log) error

	// GetLogs returns the logs of the given block in insertion order.
	// Returns nil,nil if no logs are stored for this block.
	GetLogs(block uint64) ([]evmlog.Log, error)

	// GetBloom returns the aggregated bloom of the logs of the given block.
	// Returns an empty bloom if no logs are stored for this block.
	GetBloom(block uint64) (common.Bloom, error)

	// Filter returns all logs within the query's block range matching the
	// query, ordered by block and position within the block. Blocks whose
	// bloom rules out a match are skipped without decoding their logs.
	Filter(query Query) ([]Match, error)

	common.FlushAndCloser
}
