package sha256

import (
	"encoding/hex"
	"errors"

	"massnet.org/macsum/bitseq"
)

// Size is the size of a digest in bytes.
const Size = 32

// ErrInvalidDigestLength indicates the length of a hex digest is invalid.
var ErrInvalidDigestLength = errors.New("invalid length for digest")

// Digest represents a 32-byte SHA-256 digest.
type Digest [Size]byte

// Bytes returns a copy of the digest as a byte slice.
func (d Digest) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, d[:])
	return b
}

// Bits returns the digest as a 256-bit sequence.
func (d Digest) Bits() bitseq.Seq {
	return bitseq.FromBytes(d[:])
}

// String renders the digest as 64 lowercase hex characters.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// DecodeDigest decodes a string value to Digest,
// the length of string value must be 64.
func DecodeDigest(str string) (Digest, error) {
	if len(str) != Size*2 {
		return Digest{}, ErrInvalidDigestLength
	}
	b, err := hex.DecodeString(str)
	if err != nil {
		return Digest{}, err
	}
	var d Digest
	copy(d[:], b)
	return d, nil
}
