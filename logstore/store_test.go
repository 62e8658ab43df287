// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package logstore_test

import (
	"errors"
	"math"
	"testing"

	"github.com/Fantom-foundation/Carmen-logs/go/common"
	"github.com/Fantom-foundation/Carmen-logs/go/evmlog"
	"github.com/Fantom-foundation/Carmen-logs/go/logstore"
	"github.com/Fantom-foundation/Carmen-logs/go/logstore/ldb"
	"github.com/Fantom-foundation/Carmen-logs/go/logstore/memory"
)

type storeFactory struct {
	label      string
	getStore   func(t *testing.T, dir string) logstore.Store
	persistent bool
}

func getStoreFactories() []storeFactory {
	return []storeFactory{
		{
			label: "Memory",
			getStore: func(t *testing.T, dir string) logstore.Store {
				return memory.NewStore()
			},
		},
		{
			label: "LevelDb",
			getStore: func(t *testing.T, dir string) logstore.Store {
				store, err := ldb.NewStore(ldb.Parameters{Directory: dir})
				if err != nil {
					t.Fatalf("failed to open store: %v", err)
				}
				return store
			},
			persistent: true,
		},
	}
}

var (
	address1 = common.AddressFromNumber(1)
	address2 = common.AddressFromNumber(2)
	topic1   = common.HashFromNumber(1)
	topic2   = common.HashFromNumber(2)
)

func TestStores_Implements(t *testing.T) {
	var _ logstore.Store = &memory.Store{}
	var _ logstore.Store = &ldb.Store{}
	var _ logstore.Store = &logstore.MockStore{}
}

func TestStores_EmptyBlockHasNoLogs(t *testing.T) {
	for _, factory := range getStoreFactories() {
		t.Run(factory.label, func(t *testing.T) {
			store := factory.getStore(t, t.TempDir())
			defer store.Close()

			logs, err := store.GetLogs(12)
			if err != nil || logs != nil {
				t.Errorf("unexpected logs of empty block: %v, %v", logs, err)
			}
			bloom, err := store.GetBloom(12)
			if err != nil || !bloom.IsEmpty() {
				t.Errorf("unexpected bloom of empty block: %v, %v", bloom, err)
			}
		})
	}
}

func TestStores_LogsCanBeAddedAndRetrieved(t *testing.T) {
	logs := []evmlog.Log{
		evmlog.NewLog(address1, []common.Hash{topic1}, []byte{1, 2}),
		evmlog.NewLog(address2, nil, nil),
		evmlog.NewLog(address1, []common.Hash{topic2, topic1}, []byte{3}),
	}
	for _, factory := range getStoreFactories() {
		t.Run(factory.label, func(t *testing.T) {
			store := factory.getStore(t, t.TempDir())
			defer store.Close()

			if err := store.AddLogs(5, logs); err != nil {
				t.Fatalf("failed to add logs: %v", err)
			}
			got, err := store.GetLogs(5)
			if err != nil {
				t.Fatalf("failed to get logs: %v", err)
			}
			assertLogsEqual(t, got, logs)

			bloom, err := store.GetBloom(5)
			if err != nil {
				t.Fatalf("failed to get bloom: %v", err)
			}
			if want := evmlog.LogsBloom(logs); bloom != want {
				t.Errorf("unexpected bloom, got %v, want %v", bloom, want)
			}
		})
	}
}

func TestStores_AddingLogsReplacesBlock(t *testing.T) {
	for _, factory := range getStoreFactories() {
		t.Run(factory.label, func(t *testing.T) {
			store := factory.getStore(t, t.TempDir())
			defer store.Close()

			first := []evmlog.Log{evmlog.NewLog(address1, []common.Hash{topic1}, nil)}
			second := []evmlog.Log{evmlog.NewLog(address2, nil, nil)}
			if err := store.AddLogs(1, first); err != nil {
				t.Fatalf("failed to add logs: %v", err)
			}
			if err := store.AddLogs(1, second); err != nil {
				t.Fatalf("failed to add logs: %v", err)
			}
			got, err := store.GetLogs(1)
			if err != nil {
				t.Fatalf("failed to get logs: %v", err)
			}
			assertLogsEqual(t, got, second)
			if bloom, _ := store.GetBloom(1); bloom != evmlog.LogsBloom(second) {
				t.Errorf("bloom was not replaced")
			}
		})
	}
}

func TestStores_FilterSelectsMatchingLogsInOrder(t *testing.T) {
	for _, factory := range getStoreFactories() {
		t.Run(factory.label, func(t *testing.T) {
			store := factory.getStore(t, t.TempDir())
			defer store.Close()

			blocks := map[uint64][]evmlog.Log{
				1: {evmlog.NewLog(address1, []common.Hash{topic1}, nil)},
				2: {evmlog.NewLog(address2, []common.Hash{topic1}, nil)},
				3: {
					evmlog.NewLog(address2, nil, nil),
					evmlog.NewLog(address1, []common.Hash{topic1, topic2}, []byte{1}),
				},
				256: {evmlog.NewLog(address1, []common.Hash{topic2}, nil)},
			}
			for block, logs := range blocks {
				if err := store.AddLogs(block, logs); err != nil {
					t.Fatalf("failed to add logs: %v", err)
				}
			}

			tests := map[string]struct {
				query logstore.Query
				want  []location
			}{
				"everything": {
					logstore.Query{From: 0, To: math.MaxUint64},
					[]location{{1, 0}, {2, 0}, {3, 0}, {3, 1}, {256, 0}},
				},
				"by address": {
					logstore.Query{From: 0, To: 1000, Addresses: []common.Address{address1}},
					[]location{{1, 0}, {3, 1}, {256, 0}},
				},
				"by topic": {
					logstore.Query{From: 0, To: 1000, Topics: [][]common.Hash{{topic1}}},
					[]location{{1, 0}, {2, 0}, {3, 1}},
				},
				"by second topic": {
					logstore.Query{From: 0, To: 1000, Topics: [][]common.Hash{{}, {topic2}}},
					[]location{{3, 1}},
				},
				"limited range": {
					logstore.Query{From: 2, To: 3, Addresses: []common.Address{address1}},
					[]location{{3, 1}},
				},
				"single block": {
					logstore.Query{From: 256, To: 256},
					[]location{{256, 0}},
				},
				"nothing": {
					logstore.Query{From: 4, To: 255},
					nil,
				},
			}
			for name, test := range tests {
				t.Run(name, func(t *testing.T) {
					matches, err := store.Filter(test.query)
					if err != nil {
						t.Fatalf("failed to filter: %v", err)
					}
					if len(matches) != len(test.want) {
						t.Fatalf("unexpected number of matches, got %v, want %v", matches, test.want)
					}
					for i, match := range matches {
						if match.Block != test.want[i].block || match.Index != test.want[i].index {
							t.Errorf("unexpected match %d, got %d/%d, want %v", i, match.Block, match.Index, test.want[i])
						}
						if want := blocks[match.Block][match.Index]; !match.Log.Equal(want) {
							t.Errorf("unexpected log in match %d, got %v, want %v", i, match.Log, want)
						}
					}
				})
			}
		})
	}
}

func TestStores_FilterRejectsInvalidRange(t *testing.T) {
	for _, factory := range getStoreFactories() {
		t.Run(factory.label, func(t *testing.T) {
			store := factory.getStore(t, t.TempDir())
			defer store.Close()
			if _, err := store.Filter(logstore.Query{From: 5, To: 4}); !errors.Is(err, logstore.ErrInvalidRange) {
				t.Errorf("expected %v, got %v", logstore.ErrInvalidRange, err)
			}
		})
	}
}

func TestStores_LogsArePersisted(t *testing.T) {
	logs := []evmlog.Log{evmlog.NewLog(address1, []common.Hash{topic1}, []byte{1, 2, 3})}
	for _, factory := range getStoreFactories() {
		if !factory.persistent {
			continue
		}
		t.Run(factory.label, func(t *testing.T) {
			dir := t.TempDir()
			store := factory.getStore(t, dir)
			if err := store.AddLogs(9, logs); err != nil {
				t.Fatalf("failed to add logs: %v", err)
			}
			if err := store.Flush(); err != nil {
				t.Fatalf("failed to flush: %v", err)
			}
			if err := store.Close(); err != nil {
				t.Fatalf("failed to close: %v", err)
			}

			store = factory.getStore(t, dir)
			defer store.Close()
			got, err := store.GetLogs(9)
			if err != nil {
				t.Fatalf("failed to get logs: %v", err)
			}
			assertLogsEqual(t, got, logs)
			matches, err := store.Filter(logstore.Query{From: 0, To: 10, Topics: [][]common.Hash{{topic1}}})
			if err != nil || len(matches) != 1 {
				t.Errorf("unexpected filter result after reopening: %v, %v", matches, err)
			}
		})
	}
}

type location struct {
	block uint64
	index int
}

func assertLogsEqual(t *testing.T, got, want []evmlog.Log) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("unexpected number of logs, got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("unexpected log %d, got %v, want %v", i, got[i], want[i])
		}
	}
}
