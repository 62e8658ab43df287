package common

import (
	"io"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// LevelDB is the subset of the LevelDB API used by the log store. It is
// satisfied by *leveldb.DB and allows for substituting the database in tests.
type LevelDB interface {
	// Get gets the value for the given key. It returns leveldb.ErrNotFound
	// if the DB does not contain the key. The returned slice is its own copy.
	Get(key []byte, ro *opt.ReadOptions) (value []byte, err error)

	// NewIterator returns an iterator for the latest snapshot of the
	// underlying DB, restricted to the given range. A nil Range.Start is
	// treated as a key before all keys and a nil Range.Limit as a key after
	// all keys in the DB. The iterator must be released after use.
	NewIterator(slice *util.Range, ro *opt.ReadOptions) iterator.Iterator

	// Write applies the given batch to the DB atomically.
	Write(batch *leveldb.Batch, wo *opt.WriteOptions) error

	io.Closer
}

// OpenLevelDb opens a LevelDB instance in the given directory, creating
// it if missing.
func OpenLevelDb(path string, options *opt.Options) (LevelDB, error) {
	db, err := leveldb.OpenFile(path, options)
	if err != nil {
		return nil, err
	}
	return db, nil
}
