// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package memory

import (
	"sync"

	"github.com/Fantom-foundation/Carmen-logs/go/common"
	"github.com/Fantom-foundation/Carmen-logs/go/evmlog"
	"github.com/Fantom-foundation/Carmen-logs/go/logstore"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Store is an in-memory logstore.Store implementation. Its content is lost
// when the store is closed.
type Store struct {
	logs   map[uint64][]evmlog.Log
	blooms map[uint64]common.Bloom
	mu     sync.Mutex
}

// NewStore constructs a new, empty in-memory store.
func NewStore() *Store {
	return &Store{
		logs:   map[uint64][]evmlog.Log{},
		blooms: map[uint64]common.Bloom{},
	}
}

func (s *Store) AddLogs(block uint64, logs []evmlog.Log) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs[block] = slices.Clone(logs)
	s.blooms[block] = evmlog.LogsBloom(logs)
	return nil
}

func (s *Store) GetLogs(block uint64) ([]evmlog.Log, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.logs[block]), nil
}

func (s *Store) GetBloom(block uint64) (common.Bloom, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blooms[block], nil
}

func (s *Store) Filter(query logstore.Query) ([]logstore.Match, error) {
	filter, err := logstore.NewFilter(query)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	blocks := maps.Keys(s.blooms)
	slices.Sort(blocks)

	var res []logstore.Match
	for _, block := range blocks {
		if block < filter.From() || block > filter.To() {
			continue
		}
		if !filter.MatchesBloom(s.blooms[block]) {
			continue
		}
		res = filter.Collect(res, block, s.logs[block])
	}
	return res, nil
}

func (s *Store) Flush() error {
	return nil // no-op for in-memory store
}

func (s *Store) Close() error {
	return nil // no-op for in-memory store
}
