package ldbstorage_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"massnet.org/macsum/database/storage"
	"massnet.org/macsum/database/storage/ldbstorage"
	"massnet.org/macsum/testutil"
)

type foreignBatch struct{ storage.Batch }

func TestMemDBIterator(t *testing.T) {
	db, err := ldbstorage.NewMemDB()
	require.NoError(t, err)
	defer db.Close()

	batch := db.NewBatch()
	for _, k := range []string{"d/b", "d/a", "x/c"} {
		require.NoError(t, batch.Put([]byte(k), []byte(k)))
	}
	assert.Equal(t, 3, batch.Len())
	require.NoError(t, db.Write(batch))
	assert.Equal(t, storage.ErrInvalidBatch, db.Write(foreignBatch{}))

	var keys [][]byte
	it := db.NewIterator(storage.BytesPrefix([]byte("d/")))
	for it.Next() {
		keys = append(keys, it.Key())
	}
	require.NoError(t, it.Error())
	it.Release()
	assert.Equal(t, [][]byte{[]byte("d/a"), []byte("d/b")}, keys)

	n := 0
	it = db.NewIterator(nil)
	for it.Next() {
		n++
	}
	it.Release()
	assert.Equal(t, 3, n)
}

func TestCreateOpenFile(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()
	path := filepath.Join(dir, "ledger")

	_, err := ldbstorage.OpenDB(path)
	assert.Error(t, err)

	db, err := ldbstorage.CreateDB(path)
	require.NoError(t, err)
	require.NoError(t, db.Put([]byte("k"), []byte("v")))
	require.NoError(t, db.Close())

	_, err = ldbstorage.CreateDB(path)
	assert.Error(t, err)

	db, err = ldbstorage.OpenDB(path)
	require.NoError(t, err)
	defer db.Close()
	has, err := db.Has([]byte("k"))
	require.NoError(t, err)
	assert.True(t, has)
}
