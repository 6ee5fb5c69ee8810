// Package fileio loads keys and messages and writes digests. Every failure
// to obtain input is reported as ErrInputAcquisition before any hashing
// starts.
package fileio

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/pkg/errors"
	"massnet.org/macsum/bitseq"
	"massnet.org/macsum/logging"
	"massnet.org/macsum/sha256"
)

// Stdio is the path that selects standard input or output.
const Stdio = "-"

var (
	// ErrInputAcquisition indicates a key or message could not be obtained.
	ErrInputAcquisition = errors.New("input acquisition failed")
	// ErrOutputWrite indicates a digest could not be written.
	ErrOutputWrite = errors.New("output write failed")
)

// IsInputAcquisition reports whether err was caused by failing to obtain input.
func IsInputAcquisition(err error) bool {
	return errors.Cause(err) == ErrInputAcquisition
}

// IsOutputWrite reports whether err was caused by failing to write output.
func IsOutputWrite(err error) bool {
	return errors.Cause(err) == ErrOutputWrite
}

// InputError returns an ErrInputAcquisition wrapped with a formatted message.
func InputError(format string, args ...interface{}) error {
	return errors.Wrap(ErrInputAcquisition, fmt.Sprintf(format, args...))
}

func readAll(path string, stdin io.Reader) ([]byte, error) {
	if path == Stdio {
		return ioutil.ReadAll(stdin)
	}
	return ioutil.ReadFile(path)
}

// ReadKey reads a hex encoded key from path.
func ReadKey(path string) (bitseq.Seq, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return bitseq.Seq{}, InputError("read key file %s: %v", path, err)
	}
	key, err := bitseq.FromHex(string(data))
	if err != nil {
		return bitseq.Seq{}, InputError("decode key file %s: %v", path, err)
	}
	return key, nil
}

// ReadMessage reads a UTF-8 text message from path, or from stdin when path
// is Stdio.
func ReadMessage(path string, stdin io.Reader) (bitseq.Seq, error) {
	data, err := readAll(path, stdin)
	if err != nil {
		return bitseq.Seq{}, InputError("read message %s: %v", path, err)
	}
	if !utf8.Valid(data) {
		return bitseq.Seq{}, InputError("message %s is not valid UTF-8", path)
	}
	return bitseq.FromBytes(data), nil
}

// ReadFile reads the raw bytes of path, or of stdin when path is Stdio.
func ReadFile(path string, stdin io.Reader) (bitseq.Seq, error) {
	data, err := readAll(path, stdin)
	if err != nil {
		return bitseq.Seq{}, InputError("read %s: %v", path, err)
	}
	return bitseq.FromBytes(data), nil
}

// WriteDigest writes the hex digest to w without a trailing newline.
func WriteDigest(w io.Writer, d sha256.Digest) error {
	if _, err := io.WriteString(w, d.String()); err != nil {
		return errors.Wrap(ErrOutputWrite, err.Error())
	}
	return nil
}

// WriteDigestFile writes the hex digest to path, or to stdout followed by a
// newline when path is Stdio. The file is replaced atomically.
func WriteDigestFile(path string, d sha256.Digest, stdout io.Writer) error {
	if path == Stdio {
		return WriteText(path, d.String()+"\n", stdout)
	}
	return WriteText(path, d.String(), stdout)
}

// WriteText writes text to path, or to stdout when path is Stdio. The file
// is replaced atomically.
func WriteText(path, text string, stdout io.Writer) error {
	if path == Stdio {
		if _, err := io.WriteString(stdout, text); err != nil {
			return errors.Wrap(ErrOutputWrite, err.Error())
		}
		return nil
	}

	tf, err := ioutil.TempFile(filepath.Dir(path), "."+filepath.Base(path)+"-")
	if err != nil {
		return errors.Wrapf(ErrOutputWrite, "create %s: %v", path, err)
	}
	defer os.Remove(tf.Name())
	if _, err = io.WriteString(tf, text); err != nil {
		tf.Close()
		return errors.Wrapf(ErrOutputWrite, "write %s: %v", path, err)
	}
	if err = tf.Close(); err != nil {
		return errors.Wrapf(ErrOutputWrite, "close %s: %v", path, err)
	}
	if err = os.Rename(tf.Name(), path); err != nil {
		return errors.Wrapf(ErrOutputWrite, "rename %s: %v", path, err)
	}
	logging.VPrint(logging.DEBUG, "output written", logging.LogFormat{"path": path, "bytes": len(text)})
	return nil
}
