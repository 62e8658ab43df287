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
	"encoding/json"
	"fmt"

	"github.com/Fantom-foundation/Carmen-logs/go/common/jsonfield"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// FromJson creates a log from a JSON object of the form
//
//	{"address": "0x..", "topics": ["0x..", ..], "data": "0x.."}
//
// All three fields are required. If any of them is missing or malformed an
// error is returned and no log is produced. Other fields are ignored; in
// particular a "bloom" field is not checked against the log's content,
// validating it is up to the caller.
func FromJson(value json.RawMessage) (Log, error) {
	obj, err := jsonfield.ParseObject(value)
	if err != nil {
		return Log{}, fmt.Errorf("invalid log: %w", err)
	}
	address, err := jsonfield.Address(obj, "address")
	if err != nil {
		return Log{}, fmt.Errorf("invalid log: %w", err)
	}
	topics, err := jsonfield.Hashes(obj, "topics")
	if err != nil {
		return Log{}, fmt.Errorf("invalid log: %w", err)
	}
	data, err := jsonfield.Bytes(obj, "data")
	if err != nil {
		return Log{}, fmt.Errorf("invalid log: %w", err)
	}
	return NewLog(address, topics, data), nil
}

type jsonLog struct {
	Address string        `json:"address"`
	Topics  []string      `json:"topics"`
	Data    hexutil.Bytes `json:"data"`
}

// MarshalJSON produces the JSON form accepted by FromJson.
func (l Log) MarshalJSON() ([]byte, error) {
	topics := make([]string, len(l.topics))
	for i, topic := range l.topics {
		topics[i] = topic.String()
	}
	data := l.data
	if data == nil {
		data = []byte{}
	}
	return json.Marshal(jsonLog{
		Address: l.address.String(),
		Topics:  topics,
		Data:    data,
	})
}

func (l *Log) UnmarshalJSON(data []byte) error {
	log, err := FromJson(data)
	if err != nil {
		return err
	}
	*l = log
	return nil
}
