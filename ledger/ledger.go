// Package ledger persists the digests of files so they can be re-checked
// later, in the manner of a sha256sum manifest kept in a database.
package ledger

import (
	"crypto/subtle"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"massnet.org/macsum/database/storage"
	"massnet.org/macsum/database/storage/ldbstorage"
	"massnet.org/macsum/logging"
	"massnet.org/macsum/sha256"
)

var (
	// ErrNotRecorded indicates a path with no digest in the ledger.
	ErrNotRecorded = errors.New("path not recorded")
	// ErrCorruptEntry indicates a stored value that is not a digest.
	ErrCorruptEntry = errors.New("corrupt ledger entry")
)

// IsNotRecorded reports whether err was caused by a missing ledger entry.
func IsNotRecorded(err error) bool {
	return errors.Cause(err) == ErrNotRecorded
}

var digestPrefix = []byte("d/")

// Entry is one recorded digest.
type Entry struct {
	Path   string
	Digest sha256.Digest
}

// Ledger maps file paths to digests.
type Ledger struct {
	store storage.Storage
}

// Open opens the ledger at dir, creating it when missing.
func Open(dir string) (*Ledger, error) {
	var (
		store storage.Storage
		err   error
	)
	if _, statErr := os.Stat(dir); os.IsNotExist(statErr) {
		store, err = storage.CreateStorage(ldbstorage.DbType, dir)
	} else {
		store, err = storage.OpenStorage(ldbstorage.DbType, dir)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "open ledger %s", dir)
	}
	return New(store), nil
}

// New returns a ledger backed by store.
func New(store storage.Storage) *Ledger {
	return &Ledger{store: store}
}

// Close closes the underlying store.
func (l *Ledger) Close() error {
	return l.store.Close()
}

func entryKey(path string) []byte {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	key := make([]byte, 0, len(digestPrefix)+len(path))
	key = append(key, digestPrefix...)
	return append(key, path...)
}

// Record stores the digest of path, replacing any previous one.
func (l *Ledger) Record(path string, d sha256.Digest) error {
	if err := l.store.Put(entryKey(path), d[:]); err != nil {
		return errors.Wrapf(err, "record %s", path)
	}
	return nil
}

// RecordAll stores all entries in one write.
func (l *Ledger) RecordAll(entries []Entry) error {
	batch := l.store.NewBatch()
	for _, e := range entries {
		if err := batch.Put(entryKey(e.Path), e.Digest[:]); err != nil {
			return errors.Wrapf(err, "record %s", e.Path)
		}
	}
	if err := l.store.Write(batch); err != nil {
		return errors.Wrap(err, "write ledger batch")
	}
	logging.VPrint(logging.DEBUG, "ledger recorded", logging.LogFormat{"entries": len(entries)})
	return nil
}

func decodeEntry(v []byte) (sha256.Digest, error) {
	var d sha256.Digest
	if len(v) != sha256.Size {
		return d, ErrCorruptEntry
	}
	copy(d[:], v)
	return d, nil
}

// Lookup returns the recorded digest of path.
func (l *Ledger) Lookup(path string) (sha256.Digest, error) {
	v, err := l.store.Get(entryKey(path))
	if err == storage.ErrNotFound {
		return sha256.Digest{}, ErrNotRecorded
	}
	if err != nil {
		return sha256.Digest{}, errors.Wrapf(err, "lookup %s", path)
	}
	return decodeEntry(v)
}

// Matches reports whether d equals the recorded digest of path. The
// comparison does not exit early on the first differing byte.
func (l *Ledger) Matches(path string, d sha256.Digest) (bool, error) {
	recorded, err := l.Lookup(path)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(recorded[:], d[:]) == 1, nil
}

// Forget removes the entry for path.
func (l *Ledger) Forget(path string) error {
	return l.store.Delete(entryKey(path))
}

// Entries returns all recorded entries ordered by path.
func (l *Ledger) Entries() ([]Entry, error) {
	it := l.store.NewIterator(storage.BytesPrefix(digestPrefix))
	defer it.Release()

	var entries []Entry
	for it.Next() {
		path := string(it.Key()[len(digestPrefix):])
		d, err := decodeEntry(it.Value())
		if err != nil {
			return nil, errors.Wrapf(err, "entry %s", path)
		}
		entries = append(entries, Entry{Path: path, Digest: d})
	}
	if err := it.Error(); err != nil {
		return nil, errors.Wrap(err, "iterate ledger")
	}
	return entries, nil
}
