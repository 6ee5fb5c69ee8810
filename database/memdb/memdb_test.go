package memdb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syndtr/goleveldb/leveldb"
	"massnet.org/macsum/database/memdb"
	"massnet.org/macsum/database/storage"
)

func TestRegistered(t *testing.T) {
	assert.Contains(t, storage.RegisteredDbTypes(), memdb.DbType)

	db, err := storage.CreateStorage(memdb.DbType, "ignored")
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Put([]byte("k"), []byte("v")))

	// every open yields a fresh store
	other, err := storage.OpenStorage(memdb.DbType, "ignored")
	require.NoError(t, err)
	defer other.Close()
	_, err = other.Get([]byte("k"))
	assert.Equal(t, storage.ErrNotFound, err)
}

func TestPutGetDelete(t *testing.T) {
	db, err := memdb.New()
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Put([]byte("a"), []byte("1")))
	v, err := db.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)

	has, err := db.Has([]byte("a"))
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, db.Delete([]byte("a")))
	_, err = db.Get([]byte("a"))
	assert.Equal(t, storage.ErrNotFound, err)

	assert.Equal(t, storage.ErrInvalidKey, db.Put(nil, []byte("x")))
}

// TestClosed ensures calls on a closed store return errors instead of
// panicking.
func TestClosed(t *testing.T) {
	db, err := memdb.New()
	require.NoError(t, err)
	require.NoError(t, db.Put([]byte("a"), []byte("1")))
	require.NoError(t, db.Close())

	_, err = db.Get([]byte("a"))
	assert.Equal(t, leveldb.ErrClosed, err)
	assert.Equal(t, leveldb.ErrClosed, db.Put([]byte("a"), []byte("2")))
	assert.Equal(t, leveldb.ErrClosed, db.Delete([]byte("a")))
}
