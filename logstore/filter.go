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
	"fmt"

	"github.com/Fantom-foundation/Carmen-logs/go/common"
	"github.com/Fantom-foundation/Carmen-logs/go/evmlog"
)

// ErrInvalidRange is returned for queries whose range start exceeds its end.
const ErrInvalidRange = common.ConstError("invalid block range")

// Query describes the logs of interest in a block range [From, To].
//
// A log matches if its address is one of the Addresses, or Addresses is
// empty, and for every position i in Topics, Topics[i] is empty or contains
// the log's i-th topic. Logs with fewer topics than len(Topics) never match.
type Query struct {
	From, To  uint64
	Addresses []common.Address
	Topics    [][]common.Hash
}

// Match is a log selected by a query together with its location.
type Match struct {
	Block uint64
	Index int
	Log   evmlog.Log
}

// Filter is a validated Query with precomputed blooms of its criteria.
// It is the shared matching logic of all Store implementations.
type Filter struct {
	query Query
	// blooms[i] lists alternatives; at least one of each non-empty
	// group needs to be contained in a block's bloom.
	blooms [][]common.Bloom
}

// NewFilter validates the query and prepares it for matching.
func NewFilter(query Query) (*Filter, error) {
	if query.From > query.To {
		return nil, fmt.Errorf("%w: from %d > to %d", ErrInvalidRange, query.From, query.To)
	}
	blooms := make([][]common.Bloom, 0, len(query.Topics)+1)
	if len(query.Addresses) > 0 {
		group := make([]common.Bloom, len(query.Addresses))
		for i, address := range query.Addresses {
			group[i] = common.BloomFromHash(common.Keccak256ForAddress(address))
		}
		blooms = append(blooms, group)
	}
	for _, alternatives := range query.Topics {
		if len(alternatives) == 0 {
			continue
		}
		group := make([]common.Bloom, len(alternatives))
		for i, topic := range alternatives {
			group[i] = common.BloomFromHash(common.Keccak256ForHash(topic))
		}
		blooms = append(blooms, group)
	}
	return &Filter{query: query, blooms: blooms}, nil
}

func (f *Filter) From() uint64 {
	return f.query.From
}

func (f *Filter) To() uint64 {
	return f.query.To
}

// MatchesBloom is false if no log summarized by the given bloom can match.
// A true result may be a false positive.
func (f *Filter) MatchesBloom(bloom common.Bloom) bool {
	for _, group := range f.blooms {
		found := false
		for _, cur := range group {
			if bloom.Contains(cur) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Matches tests whether the given log satisfies the query's criteria. The
// block range is not considered.
func (f *Filter) Matches(log evmlog.Log) bool {
	if len(f.query.Addresses) > 0 && !contains(f.query.Addresses, log.Address()) {
		return false
	}
	topics := log.Topics()
	if len(f.query.Topics) > len(topics) {
		return false
	}
	for i, alternatives := range f.query.Topics {
		if len(alternatives) > 0 && !contains(alternatives, topics[i]) {
			return false
		}
	}
	return true
}

// Collect appends the matching logs of the given block to res.
func (f *Filter) Collect(res []Match, block uint64, logs []evmlog.Log) []Match {
	for i, log := range logs {
		if f.Matches(log) {
			res = append(res, Match{Block: block, Index: i, Log: log})
		}
	}
	return res
}

func contains[T comparable](list []T, value T) bool {
	for _, cur := range list {
		if cur == value {
			return true
		}
	}
	return false
}
