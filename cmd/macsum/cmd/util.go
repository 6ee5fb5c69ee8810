package cmd

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"sync"

	"massnet.org/macsum/errors"
	"massnet.org/macsum/fileio"
	"massnet.org/macsum/ledger"
)

// codedError attaches an error code to an error.
type codedError struct {
	code uint32
	err  error
}

func (e *codedError) Error() string {
	return e.err.Error()
}

func withCode(code uint32, err error) error {
	if err == nil {
		return nil
	}
	return &codedError{code: code, err: err}
}

func invalidParameter(format string, args ...interface{}) error {
	return withCode(errors.ErrInvalidParameter, fmt.Errorf(format, args...))
}

// errorCode maps err to one of the codes in package errors.
func errorCode(err error) uint32 {
	if ce, ok := err.(*codedError); ok {
		return ce.code
	}
	switch {
	case fileio.IsInputAcquisition(err):
		return errors.ErrInputAcquisition
	case fileio.IsOutputWrite(err):
		return errors.ErrOutputWrite
	case ledger.IsNotRecorded(err):
		return errors.ErrNotRecorded
	default:
		return errors.ErrUnknownErr
	}
}

// sharedStdin reads standard input at most once, so naming "-" several
// times yields the same content on every worker.
type sharedStdin struct {
	once sync.Once
	r    io.Reader
	data []byte
	err  error
}

func newSharedStdin(r io.Reader) *sharedStdin {
	return &sharedStdin{r: r}
}

type errReader struct {
	err error
}

func (e errReader) Read([]byte) (int, error) {
	return 0, e.err
}

// open returns a reader over standard input for path, or nil for any other
// path.
func (s *sharedStdin) open(path string) io.Reader {
	if path != fileio.Stdio {
		return nil
	}
	s.once.Do(func() {
		if s.r == nil {
			s.err = fmt.Errorf("no standard input")
			return
		}
		s.data, s.err = ioutil.ReadAll(s.r)
	})
	if s.err != nil {
		return errReader{s.err}
	}
	return bytes.NewReader(s.data)
}
