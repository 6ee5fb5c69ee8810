package errors

const (
	// input and output
	ErrInputAcquisition = 1101
	ErrOutputWrite      = 1102

	// invalid parameter
	ErrInvalidParameter = 1201
	ErrDecodeHexString  = 1202

	// ledger
	ErrLedger         = 1301
	ErrDigestMismatch = 1302
	ErrNotRecorded    = 1303

	// other err
	ErrUnknownErr = 1701
)

var ErrCode = map[uint32]string{
	ErrInputAcquisition: "Failed to acquire input",
	ErrOutputWrite:      "Failed to write output",
	ErrInvalidParameter: "Invalid parameter",
	ErrDecodeHexString:  "Failed to decode hex string",
	ErrLedger:           "Error in digest ledger",
	ErrDigestMismatch:   "Digest does not match ledger",
	ErrNotRecorded:      "Path is not recorded in ledger",
	ErrUnknownErr:       "Unknown error",
}

// Message returns the text for code, falling back to the unknown error text.
func Message(code uint32) string {
	if msg, ok := ErrCode[code]; ok {
		return msg
	}
	return ErrCode[ErrUnknownErr]
}

// ExitStatus returns the process exit status for code. A failed digest
// check exits with 1 like sha256sum -c; other codes get their own status.
func ExitStatus(code uint32) int {
	switch code {
	case ErrDigestMismatch:
		return 1
	case ErrInvalidParameter, ErrDecodeHexString:
		return 2
	case ErrInputAcquisition:
		return 3
	case ErrOutputWrite:
		return 4
	case ErrLedger, ErrNotRecorded:
		return 5
	default:
		return 6
	}
}
