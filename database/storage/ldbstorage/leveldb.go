// Package ldbstorage stores the digest ledger in goleveldb.
package ldbstorage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	lvlstorage "github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
	"massnet.org/macsum/database/storage"
	"massnet.org/macsum/logging"
)

// DbType is the name the driver registers under.
const DbType = "leveldb"

func init() {
	storage.RegisterDriver(storage.StorageDriver{
		DbType:        DbType,
		CreateStorage: CreateDB,
		OpenStorage:   OpenDB,
	})
}

// CreateDB creates a ledger store at path. It fails if one already exists.
func CreateDB(path string) (storage.Storage, error) {
	return openFile(path, true)
}

// OpenDB opens the existing ledger store at path.
func OpenDB(path string) (storage.Storage, error) {
	return openFile(path, false)
}

// NewMemDB returns a store kept entirely in memory. Its contents are lost
// on Close.
func NewMemDB() (storage.Storage, error) {
	db, err := leveldb.Open(lvlstorage.NewMemStorage(), &opt.Options{})
	if err != nil {
		return nil, err
	}
	return &ledgerStore{db: db}, nil
}

// ledger values are 32-byte digests
func fileOptions(create bool) *opt.Options {
	return &opt.Options{
		Filter:             filter.NewBloomFilter(10),
		WriteBuffer:        4 * opt.MiB,
		BlockCacheCapacity: 8 * opt.MiB,
		ErrorIfMissing:     !create,
		ErrorIfExist:       create,
	}
}

func openFile(path string, create bool) (storage.Storage, error) {
	fields := logging.LogFormat{"path": path, "create": create}
	db, err := leveldb.OpenFile(path, fileOptions(create))
	if err != nil {
		logging.CPrint(logging.ERROR, "fail to open ledger store", fields, logging.LogFormat{"err": err})
		return nil, err
	}
	logging.VPrint(logging.DEBUG, "ledger store opened", fields)
	return &ledgerStore{db: db}, nil
}

type ledgerStore struct {
	db *leveldb.DB
}

func (s *ledgerStore) Close() error {
	return s.db.Close()
}

func (s *ledgerStore) Get(key []byte) ([]byte, error) {
	value, err := s.db.Get(key, nil)
	if err == leveldb.ErrNotFound {
		return nil, storage.ErrNotFound
	}
	return value, err
}

func (s *ledgerStore) Put(key, value []byte) error {
	if len(key) == 0 {
		return storage.ErrInvalidKey
	}
	return s.db.Put(key, value, nil)
}

func (s *ledgerStore) Has(key []byte) (bool, error) {
	if len(key) == 0 {
		return false, nil
	}
	return s.db.Has(key, nil)
}

func (s *ledgerStore) Delete(key []byte) error {
	return s.db.Delete(key, nil)
}

func (s *ledgerStore) NewBatch() storage.Batch {
	return &writeBatch{b: new(leveldb.Batch)}
}

// Write applies batch atomically. Only batches from NewBatch are accepted.
func (s *ledgerStore) Write(batch storage.Batch) error {
	wb, ok := batch.(*writeBatch)
	if !ok {
		return storage.ErrInvalidBatch
	}
	return s.db.Write(wb.b, nil)
}

// NewIterator walks keys in r in ascending order; a nil r or empty bound
// leaves that side open.
func (s *ledgerStore) NewIterator(r *storage.Range) storage.Iterator {
	var bounds *util.Range
	if r != nil {
		bounds = &util.Range{Start: nonEmpty(r.Start), Limit: nonEmpty(r.Limit)}
	}
	return &rangeIterator{it: s.db.NewIterator(bounds, nil)}
}

func nonEmpty(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return b
}

type writeBatch struct {
	b *leveldb.Batch
}

func (wb *writeBatch) Put(key, value []byte) error {
	if len(key) == 0 {
		return storage.ErrInvalidKey
	}
	wb.b.Put(key, value)
	return nil
}

func (wb *writeBatch) Delete(key []byte) error {
	if len(key) == 0 {
		return storage.ErrInvalidKey
	}
	wb.b.Delete(key)
	return nil
}

func (wb *writeBatch) Len() int {
	return wb.b.Len()
}

func (wb *writeBatch) Reset() {
	wb.b.Reset()
}

// rangeIterator hands out copies, since goleveldb reuses its buffers
// between calls to Next.
type rangeIterator struct {
	it iterator.Iterator
}

func (ri *rangeIterator) Next() bool {
	return ri.it.Next()
}

func (ri *rangeIterator) Key() []byte {
	return clone(ri.it.Key())
}

func (ri *rangeIterator) Value() []byte {
	return clone(ri.it.Value())
}

func (ri *rangeIterator) Release() {
	ri.it.Release()
}

func (ri *rangeIterator) Error() error {
	return ri.it.Error()
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
