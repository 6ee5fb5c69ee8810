package testutil

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func SameErrorString(err, target error) bool {
	if err == nil && target == nil {
		return true
	}
	if err == nil || target == nil {
		return false
	}
	return err.Error() == target.Error()
}

// TempDir creates a directory removed when the returned func is called.
func TempDir(t *testing.T) (string, func()) {
	dir, err := ioutil.TempDir("", "macsum-test")
	if err != nil {
		t.Fatal(err)
	}
	return dir, func() { os.RemoveAll(dir) }
}

// WriteFile writes data to name inside dir and returns the full path.
func WriteFile(t *testing.T, dir, name string, data []byte) string {
	path := filepath.Join(dir, name)
	if err := ioutil.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}
	return path
}
