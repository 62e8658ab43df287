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
	"bytes"
	"fmt"

	"github.com/Fantom-foundation/Carmen-logs/go/common"
	"golang.org/x/exp/slices"
)

// Log summarizes a log message recorded during the execution of a contract.
// This should be approximating ethereum's definition: t.ly/dVL7
//
// A Log is an immutable value. The slices returned by its accessors are
// shared with the Log and must not be modified.
type Log struct {
	// Address of the contract that generated the event.
	address common.Address
	// List of topics the log message should be tagged by.
	topics []common.Hash
	// The actual log message.
	data []byte
}

// NewLog creates a log from its fields. No validation is performed and the
// given slices are retained, not copied.
func NewLog(address common.Address, topics []common.Hash, data []byte) Log {
	return Log{
		address: address,
		topics:  topics,
		data:    data,
	}
}

func (l Log) Address() common.Address {
	return l.address
}

// Topics returns the topics in emission order. The slice is shared with the
// log and must not be modified.
func (l Log) Topics() []common.Hash {
	return l.topics
}

// Data returns the payload of the log, shared with the log like Topics.
func (l Log) Data() []byte {
	return l.data
}

// Equal compares logs structurally. Topic order is significant; nil and
// empty topic lists or data are considered equal.
func (l Log) Equal(other Log) bool {
	return l.address == other.address &&
		slices.Equal(l.topics, other.topics) &&
		bytes.Equal(l.data, other.data)
}

func (l Log) String() string {
	return fmt.Sprintf("log: %v %v 0x%x", l.address, l.topics, l.data)
}
