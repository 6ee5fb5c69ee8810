// Package storage defines the key-value store used by the digest ledger
// and a registry of drivers implementing it.
package storage

import (
	"errors"
)

var (
	ErrDbUnknownType = errors.New("non-existent database type")
	ErrInvalidKey    = errors.New("invalid key")
	ErrInvalidBatch  = errors.New("invalid batch")
	ErrNotFound      = errors.New("not found")
)

// Range is a key range.
type Range struct {
	// Start of the key range, include in the range.
	Start []byte

	// Limit of the key range, not include in the range.
	Limit []byte
}

// BytesPrefix returns the range of all keys starting with prefix.
func BytesPrefix(prefix []byte) *Range {
	var limit []byte
	for i := len(prefix) - 1; i >= 0; i-- {
		c := prefix[i]
		if c < 0xff {
			limit = make([]byte, i+1)
			copy(limit, prefix)
			limit[i] = c + 1
			break
		}
	}
	return &Range{Start: prefix, Limit: limit}
}

type Iterator interface {
	Release()
	Error() error
	Next() bool
	Key() []byte
	Value() []byte
}

type Batch interface {
	Put(key, value []byte) error
	Delete(key []byte) error
	Len() int
	Reset()
}

type Storage interface {
	Close() error
	// Get returns ErrNotFound if key not exist
	Get(key []byte) ([]byte, error)
	Put(key, value []byte) error
	Has(key []byte) (bool, error)
	Delete(key []byte) error
	Write(batch Batch) error
	NewBatch() Batch
	NewIterator(slice *Range) Iterator
}

type StorageDriver struct {
	DbType        string
	CreateStorage func(storPath string) (Storage, error)
	OpenStorage   func(storPath string) (Storage, error)
}

var drivers []StorageDriver

func RegisterDriver(instance StorageDriver) {
	for _, drv := range drivers {
		if drv.DbType == instance.DbType {
			return
		}
	}
	drivers = append(drivers, instance)
}

func findDriver(dbtype string) (StorageDriver, error) {
	for _, drv := range drivers {
		if drv.DbType == dbtype {
			return drv, nil
		}
	}
	return StorageDriver{}, ErrDbUnknownType
}

// CreateStorage initializes and opens a new database.
func CreateStorage(dbtype, dbpath string) (Storage, error) {
	drv, err := findDriver(dbtype)
	if err != nil {
		return nil, err
	}
	return drv.CreateStorage(dbpath)
}

// OpenStorage opens an existing database.
func OpenStorage(dbtype, dbpath string) (Storage, error) {
	drv, err := findDriver(dbtype)
	if err != nil {
		return nil, err
	}
	return drv.OpenStorage(dbpath)
}

func RegisteredDbTypes() []string {
	var types []string
	for _, drv := range drivers {
		types = append(types, drv.DbType)
	}
	return types
}
