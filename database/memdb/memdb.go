package memdb

import (
	"massnet.org/macsum/database/storage"
	"massnet.org/macsum/database/storage/ldbstorage"
)

// DbType is the name the driver registers under.
const DbType = "memdb"

func init() {
	storage.RegisterDriver(storage.StorageDriver{
		DbType:        DbType,
		CreateStorage: func(string) (storage.Storage, error) { return New() },
		OpenStorage:   func(string) (storage.Storage, error) { return New() },
	})
}

// New returns an empty in-memory storage.
func New() (storage.Storage, error) {
	return ldbstorage.NewMemDB()
}
