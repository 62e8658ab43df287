// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package rlp

import (
	"fmt"

	"github.com/Fantom-foundation/Carmen-logs/go/common"
)

// Stream is an incremental RLP encoder. Lists are opened with a declared
// number of elements and closed implicitly once that many elements have
// been appended. A Stream is not safe for concurrent use.
type Stream struct {
	open []*pendingList
	done []Item
}

type pendingList struct {
	items []Item
	size  int
}

// NewStream creates an empty stream.
func NewStream() *Stream {
	return &Stream{}
}

// BeginList starts a list of the given number of elements. The following
// size appends, including nested lists, become the elements of this list.
func (s *Stream) BeginList(size int) {
	if size < 0 {
		panic(fmt.Sprintf("invalid list size %d", size))
	}
	if size == 0 {
		s.Append(List{})
		return
	}
	s.open = append(s.open, &pendingList{items: make([]Item, 0, size), size: size})
}

// Append adds an arbitrary item to the stream.
func (s *Stream) Append(item Item) {
	for len(s.open) > 0 {
		top := s.open[len(s.open)-1]
		top.items = append(top.items, item)
		if len(top.items) < top.size {
			return
		}
		s.open = s.open[:len(s.open)-1]
		item = List{Items: top.items}
	}
	s.done = append(s.done, item)
}

// AppendFixedBytes appends a fixed-length byte string, e.g. an address.
func (s *Stream) AppendFixedBytes(data []byte) {
	s.Append(String{Str: data})
}

// AppendBytes appends a variable-length byte string.
func (s *Stream) AppendBytes(data []byte) {
	s.Append(String{Str: data})
}

// AppendHashList appends a list containing the given hashes in order.
func (s *Stream) AppendHashList(hashes []common.Hash) {
	items := make([]Item, len(hashes))
	for i := range hashes {
		items[i] = Hash{Hash: &hashes[i]}
	}
	s.Append(List{Items: items})
}

// IsComplete is true if no list is waiting for further elements.
func (s *Stream) IsComplete() bool {
	return len(s.open) == 0
}

// Bytes returns the encoding of all completed top-level items. It panics
// if a list is still open, since its encoding would be truncated.
func (s *Stream) Bytes() []byte {
	if !s.IsComplete() {
		top := s.open[len(s.open)-1]
		panic(fmt.Sprintf("incomplete RLP stream: list of %d elements has only %d", top.size, len(top.items)))
	}
	size := 0
	for _, item := range s.done {
		size += item.getEncodedLength()
	}
	res := make([]byte, 0, size)
	for _, item := range s.done {
		res = EncodeInto(res, item)
	}
	return res
}
