package common

import "encoding/binary"

// TableSpace divide key-value storage into spaces by adding a prefix to the key.
type TableSpace byte

const (
	// LogsKey is the "table space" of the RLP encoded logs of a block
	LogsKey TableSpace = 'G'
	// BloomKey is the "table space" of the aggregated bloom of a block
	BloomKey TableSpace = 'b'
)

// DbKey is a table space prefix followed by a 64-bit big-endian block number.
// The big-endian encoding keeps keys of one table space ordered by block.
type DbKey [9]byte

func (d DbKey) ToBytes() []byte {
	return d[:]
}

// Block returns the block number encoded in the key.
func (d DbKey) Block() uint64 {
	return binary.BigEndian.Uint64(d[1:])
}

// ToDBKey converts the input block number to its respective table space key
func (t TableSpace) ToDBKey(block uint64) DbKey {
	var dbKey DbKey
	dbKey[0] = byte(t)
	binary.BigEndian.PutUint64(dbKey[1:], block)
	return dbKey
}

// DBKeyFromBytes restores a key from its byte form. Missing bytes are zero.
func DBKeyFromBytes(data []byte) DbKey {
	var dbKey DbKey
	copy(dbKey[:], data)
	return dbKey
}
