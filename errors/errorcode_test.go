package errors

import "testing"

func TestMessage(t *testing.T) {
	for code, msg := range ErrCode {
		if got := Message(code); got != msg {
			t.Errorf("%d, message not match, got = %s, want = %s", code, got, msg)
		}
	}
	if got := Message(9999); got != ErrCode[ErrUnknownErr] {
		t.Errorf("unknown code gave %s", got)
	}
}

func TestExitStatus(t *testing.T) {
	tests := []struct {
		code   uint32
		status int
	}{
		{ErrDigestMismatch, 1},
		{ErrInvalidParameter, 2},
		{ErrDecodeHexString, 2},
		{ErrInputAcquisition, 3},
		{ErrOutputWrite, 4},
		{ErrLedger, 5},
		{ErrNotRecorded, 5},
		{ErrUnknownErr, 6},
		{9999, 6},
	}
	for _, test := range tests {
		if got := ExitStatus(test.code); got != test.status {
			t.Errorf("%d, exit status not match, got = %d, want = %d", test.code, got, test.status)
		}
	}
}
