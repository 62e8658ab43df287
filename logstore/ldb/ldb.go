// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package ldb

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/Fantom-foundation/Carmen-logs/go/common"
	"github.com/Fantom-foundation/Carmen-logs/go/evmlog"
	"github.com/Fantom-foundation/Carmen-logs/go/logstore"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// Parameters struct defining configuration parameters for Store instances.
type Parameters struct {
	Directory string
}

// Store is a LevelDB based logstore.Store implementation. The logs of a
// block are kept as a single RLP list under the LogsKey table space, the
// aggregated bloom of the block under the BloomKey table space.
type Store struct {
	db common.LevelDB
	mu sync.Mutex
}

// NewStore opens or creates a store in the configured directory.
func NewStore(params Parameters) (*Store, error) {
	if params.Directory == "" {
		return nil, fmt.Errorf("no directory configured for log store")
	}
	db, err := common.OpenLevelDb(params.Directory, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open log store in %s: %w", params.Directory, err)
	}
	return NewStoreFromDb(db), nil
}

// NewStoreFromDb creates a store on top of an open database. The store
// takes ownership of the database and closes it when being closed.
func NewStoreFromDb(db common.LevelDB) *Store {
	return &Store{db: db}
}

func (s *Store) AddLogs(block uint64, logs []evmlog.Log) error {
	batch := new(leveldb.Batch)
	bloom := evmlog.LogsBloom(logs)
	batch.Put(common.LogsKey.ToDBKey(block).ToBytes(), evmlog.EncodeLogs(logs))
	batch.Put(common.BloomKey.ToDBKey(block).ToBytes(), bloom[:])

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.db.Write(batch, nil); err != nil {
		return fmt.Errorf("failed to store logs of block %d: %w", block, err)
	}
	return nil
}

// GetLogs returns nil,nil if no logs are stored for the given block.
func (s *Store) GetLogs(block uint64) ([]evmlog.Log, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLogs(block)
}

func (s *Store) getLogs(block uint64) ([]evmlog.Log, error) {
	data, err := s.db.Get(common.LogsKey.ToDBKey(block).ToBytes(), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load logs of block %d: %w", block, err)
	}
	logs, err := evmlog.DecodeLogs(data)
	if err != nil {
		return nil, fmt.Errorf("corrupted logs of block %d: %w", block, err)
	}
	return logs, nil
}

// GetBloom returns an empty bloom if nothing is stored for the given block.
func (s *Store) GetBloom(block uint64) (common.Bloom, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.db.Get(common.BloomKey.ToDBKey(block).ToBytes(), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return common.Bloom{}, nil
		}
		return common.Bloom{}, fmt.Errorf("failed to load bloom of block %d: %w", block, err)
	}
	return bloomFromBytes(block, data)
}

func (s *Store) Filter(query logstore.Query) ([]logstore.Match, error) {
	filter, err := logstore.NewFilter(query)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r := util.Range{Start: common.BloomKey.ToDBKey(filter.From()).ToBytes()}
	if filter.To() == math.MaxUint64 {
		r.Limit = []byte{byte(common.BloomKey) + 1}
	} else {
		r.Limit = common.BloomKey.ToDBKey(filter.To() + 1).ToBytes()
	}
	iter := s.db.NewIterator(&r, nil)
	defer iter.Release()

	var res []logstore.Match
	for iter.Next() {
		block := common.DBKeyFromBytes(iter.Key()).Block()
		bloom, err := bloomFromBytes(block, iter.Value())
		if err != nil {
			return nil, err
		}
		if !filter.MatchesBloom(bloom) {
			continue
		}
		logs, err := s.getLogs(block)
		if err != nil {
			return nil, err
		}
		res = filter.Collect(res, block, logs)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("failed to iterate blooms: %w", err)
	}
	return res, nil
}

func (s *Store) Flush() error {
	return nil // all writes are committed to the database immediately
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

func bloomFromBytes(block uint64, data []byte) (common.Bloom, error) {
	var bloom common.Bloom
	if len(data) != len(bloom) {
		return bloom, fmt.Errorf("corrupted bloom of block %d: invalid length %d", block, len(data))
	}
	copy(bloom[:], data)
	return bloom, nil
}
