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
	"errors"
	"testing"

	"github.com/Fantom-foundation/Carmen-logs/go/common"
	"github.com/Fantom-foundation/Carmen-logs/go/evmlog"
)

var (
	address1 = common.AddressFromNumber(1)
	address2 = common.AddressFromNumber(2)
	topic1   = common.HashFromNumber(1)
	topic2   = common.HashFromNumber(2)
	topic3   = common.HashFromNumber(3)
)

func TestFilter_InvalidRangeIsRejected(t *testing.T) {
	if _, err := NewFilter(Query{From: 2, To: 1}); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected %v, got %v", ErrInvalidRange, err)
	}
	if _, err := NewFilter(Query{From: 1, To: 1}); err != nil {
		t.Errorf("single block range should be accepted, got %v", err)
	}
}

func TestFilter_Matches(t *testing.T) {
	log := evmlog.NewLog(address1, []common.Hash{topic1, topic2}, []byte{1})
	tests := map[string]struct {
		query Query
		want  bool
	}{
		"empty query":            {Query{}, true},
		"matching address":       {Query{Addresses: []common.Address{address1}}, true},
		"one of addresses":       {Query{Addresses: []common.Address{address2, address1}}, true},
		"other address":          {Query{Addresses: []common.Address{address2}}, false},
		"first topic":            {Query{Topics: [][]common.Hash{{topic1}}}, true},
		"topic at wrong place":   {Query{Topics: [][]common.Hash{{topic2}}}, false},
		"wildcard position":      {Query{Topics: [][]common.Hash{{}, {topic2}}}, true},
		"alternatives":           {Query{Topics: [][]common.Hash{{topic3, topic1}, {topic2}}}, true},
		"no alternative matches": {Query{Topics: [][]common.Hash{{topic1}, {topic3}}}, false},
		"more positions":         {Query{Topics: [][]common.Hash{{}, {}, {}}}, false},
		"address and topics":     {Query{Addresses: []common.Address{address1}, Topics: [][]common.Hash{{topic1}}}, true},
		"address mismatch only":  {Query{Addresses: []common.Address{address2}, Topics: [][]common.Hash{{topic1}}}, false},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			filter, err := NewFilter(test.query)
			if err != nil {
				t.Fatalf("failed to create filter: %v", err)
			}
			if got := filter.Matches(log); got != test.want {
				t.Errorf("unexpected match result, got %t, want %t", got, test.want)
			}
		})
	}
}

func TestFilter_MatchingLogsPassTheBloomCheck(t *testing.T) {
	logs := []evmlog.Log{
		evmlog.NewLog(address1, []common.Hash{topic1, topic2}, nil),
		evmlog.NewLog(address2, []common.Hash{topic3}, nil),
	}
	bloom := evmlog.LogsBloom(logs)
	queries := []Query{
		{},
		{Addresses: []common.Address{address1}},
		{Addresses: []common.Address{address2}, Topics: [][]common.Hash{{topic3}}},
		{Topics: [][]common.Hash{{topic1}, {topic2}}},
	}
	for _, query := range queries {
		filter, err := NewFilter(query)
		if err != nil {
			t.Fatalf("failed to create filter: %v", err)
		}
		if !filter.MatchesBloom(bloom) {
			t.Errorf("bloom check rejected a matching query %v", query)
		}
	}
}

func TestFilter_BloomExcludesAbsentCriteria(t *testing.T) {
	bloom := evmlog.NewLog(address1, []common.Hash{topic1}, nil).Bloom()
	queries := []Query{
		{Addresses: []common.Address{address2}},
		{Topics: [][]common.Hash{{topic3}}},
		{Addresses: []common.Address{address1}, Topics: [][]common.Hash{{topic1}, {topic3}}},
	}
	for _, query := range queries {
		filter, err := NewFilter(query)
		if err != nil {
			t.Fatalf("failed to create filter: %v", err)
		}
		if filter.MatchesBloom(bloom) {
			t.Errorf("bloom check should exclude query %v", query)
		}
	}
}

func TestFilter_EmptyBloomOnlyMatchesUnrestrictedQuery(t *testing.T) {
	unrestricted, _ := NewFilter(Query{})
	if !unrestricted.MatchesBloom(common.Bloom{}) {
		t.Errorf("unrestricted query should pass any bloom")
	}
	restricted, _ := NewFilter(Query{Addresses: []common.Address{address1}})
	if restricted.MatchesBloom(common.Bloom{}) {
		t.Errorf("restricted query should not pass empty bloom")
	}
}

func TestFilter_CollectKeepsPositions(t *testing.T) {
	logs := []evmlog.Log{
		evmlog.NewLog(address1, nil, nil),
		evmlog.NewLog(address2, nil, nil),
		evmlog.NewLog(address1, nil, []byte{1}),
	}
	filter, _ := NewFilter(Query{Addresses: []common.Address{address1}})
	res := filter.Collect(nil, 7, logs)
	if len(res) != 2 {
		t.Fatalf("unexpected number of matches, got %d, want 2", len(res))
	}
	for i, index := range []int{0, 2} {
		if res[i].Block != 7 || res[i].Index != index || !res[i].Log.Equal(logs[index]) {
			t.Errorf("unexpected match %d: %v", i, res[i])
		}
	}
}
