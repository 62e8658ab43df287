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

import (
	"fmt"

	"github.com/Fantom-foundation/Carmen-logs/go/common"
	"github.com/Fantom-foundation/Carmen-logs/go/rlp"
)

//go:generate mockgen -source encoding.go -destination encoding_mock.go -package evmlog

// ErrInvalidEncoding is returned when decoding input that does not have
// the shape of an encoded log.
const ErrInvalidEncoding = common.ConstError("invalid log encoding")

// CanonicalEncoder is a recursive length-prefix encoder receiving the
// structure of a value. Framing of the appended elements is entirely up to
// the encoder.
type CanonicalEncoder interface {
	// BeginList starts a list; the following size elements belong to it.
	BeginList(size int)
	// AppendFixedBytes appends a byte string of a type-defined length.
	AppendFixedBytes(data []byte)
	// AppendBytes appends a byte string of arbitrary length.
	AppendBytes(data []byte)
	// AppendHashList appends a list of 32 byte strings in the given order.
	AppendHashList(hashes []common.Hash)
}

// EncodeTo describes this log to the given encoder as the 3-element list
// [address, topics, data].
func (l Log) EncodeTo(encoder CanonicalEncoder) {
	encoder.BeginList(3)
	encoder.AppendFixedBytes(l.address[:])
	encoder.AppendHashList(l.topics)
	encoder.AppendBytes(l.data)
}

// Encode produces the canonical RLP encoding of this log.
func (l Log) Encode() []byte {
	stream := rlp.NewStream()
	l.EncodeTo(stream)
	return stream.Bytes()
}

// ToRlp provides the RLP item of this log for embedding it in other
// structures. The item references the log's content.
func (l Log) ToRlp() rlp.Item {
	address := l.address
	topics := make([]rlp.Item, len(l.topics))
	for i := range l.topics {
		topics[i] = rlp.Hash{Hash: &l.topics[i]}
	}
	return rlp.List{Items: []rlp.Item{
		rlp.Address{Address: &address},
		rlp.List{Items: topics},
		rlp.String{Str: l.data},
	}}
}

// DecodeLog restores a log from its canonical encoding.
func DecodeLog(data []byte) (Log, error) {
	item, err := rlp.Decode(data)
	if err != nil {
		return Log{}, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	return LogFromRlp(item)
}

// LogFromRlp restores a log from a decoded RLP item. The data of the
// resulting log is copied, so it does not alias the decoded input.
func LogFromRlp(item rlp.Item) (Log, error) {
	list, ok := item.(rlp.List)
	if !ok || len(list.Items) != 3 {
		return Log{}, fmt.Errorf("%w: expected list of 3 elements", ErrInvalidEncoding)
	}

	address, ok := list.Items[0].(rlp.String)
	if !ok || len(address.Str) != common.AddressSize {
		return Log{}, fmt.Errorf("%w: address must be a string of %d bytes", ErrInvalidEncoding, common.AddressSize)
	}

	topicList, ok := list.Items[1].(rlp.List)
	if !ok {
		return Log{}, fmt.Errorf("%w: topics must be a list", ErrInvalidEncoding)
	}
	topics := make([]common.Hash, len(topicList.Items))
	for i, cur := range topicList.Items {
		topic, ok := cur.(rlp.String)
		if !ok || len(topic.Str) != common.HashSize {
			return Log{}, fmt.Errorf("%w: topic %d must be a string of %d bytes", ErrInvalidEncoding, i, common.HashSize)
		}
		copy(topics[i][:], topic.Str)
	}

	data, ok := list.Items[2].(rlp.String)
	if !ok {
		return Log{}, fmt.Errorf("%w: data must be a string", ErrInvalidEncoding)
	}

	res := Log{topics: topics, data: append([]byte{}, data.Str...)}
	copy(res.address[:], address.Str)
	return res, nil
}

// EncodeLogs produces the RLP encoding of a list of logs.
func EncodeLogs(logs []Log) []byte {
	items := make([]rlp.Item, len(logs))
	for i, log := range logs {
		items[i] = log.ToRlp()
	}
	return rlp.Encode(rlp.List{Items: items})
}

// DecodeLogs restores a list of logs encoded by EncodeLogs.
func DecodeLogs(data []byte) ([]Log, error) {
	item, err := rlp.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	list, ok := item.(rlp.List)
	if !ok {
		return nil, fmt.Errorf("%w: expected list of logs", ErrInvalidEncoding)
	}
	res := make([]Log, 0, len(list.Items))
	for i, cur := range list.Items {
		log, err := LogFromRlp(cur)
		if err != nil {
			return nil, fmt.Errorf("log %d: %w", i, err)
		}
		res = append(res, log)
	}
	return res, nil
}
