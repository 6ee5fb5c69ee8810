// Package bitseq provides immutable bit sequences of arbitrary length.
//
// Bits are stored most-significant-bit first. A Seq whose length is not a
// multiple of 8 keeps the unused low bits of its last byte cleared, so two
// sequences with the same bits always have the same backing bytes.
package bitseq

import (
	"encoding/hex"
	"errors"
	"strings"
)

var (
	// ErrBitLength indicates a bit length larger than the supplied buffer.
	ErrBitLength = errors.New("bit length exceeds buffer")
	// ErrInvalidBinary indicates a character other than '0' or '1'.
	ErrInvalidBinary = errors.New("invalid binary digit")
)

// Seq is an immutable sequence of bits. The zero value is the empty sequence.
type Seq struct {
	buf []byte
	n   uint64
}

// byteLen returns the number of bytes needed to hold n bits.
func byteLen(n uint64) uint64 {
	return (n + 7) >> 3
}

// FromBytes returns the sequence of all bits in b.
func FromBytes(b []byte) Seq {
	buf := make([]byte, len(b))
	copy(buf, b)
	return Seq{buf: buf, n: uint64(len(b)) * 8}
}

// New returns the sequence of the first nbits bits of buf.
func New(buf []byte, nbits uint64) (Seq, error) {
	if nbits > uint64(len(buf))*8 {
		return Seq{}, ErrBitLength
	}
	out := make([]byte, byteLen(nbits))
	copy(out, buf)
	if rem := nbits % 8; rem != 0 {
		out[len(out)-1] &= ^byte(0xff >> rem)
	}
	return Seq{buf: out, n: nbits}, nil
}

// FromBinary parses a string of '0' and '1' characters.
func FromBinary(s string) (Seq, error) {
	out := make([]byte, byteLen(uint64(len(s))))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			out[i>>3] |= 0x80 >> uint(i%8)
		default:
			return Seq{}, ErrInvalidBinary
		}
	}
	return Seq{buf: out, n: uint64(len(s))}, nil
}

// FromHex parses hexadecimal text. Surrounding whitespace and an optional
// "0x" prefix are ignored. An odd number of digits yields a sequence whose
// length is a multiple of 4 but not of 8.
func FromHex(s string) (Seq, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	odd := len(s)%2 == 1
	if odd {
		s += "0"
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Seq{}, err
	}
	n := uint64(len(b)) * 8
	if odd {
		n -= 4
	}
	return Seq{buf: b, n: n}, nil
}

// Zeros returns a sequence of n zero bits.
func Zeros(n uint64) Seq {
	return Seq{buf: make([]byte, byteLen(n)), n: n}
}

// Len returns the number of bits.
func (s Seq) Len() uint64 {
	return s.n
}

// Aligned reports whether the length is a whole number of bytes.
func (s Seq) Aligned() bool {
	return s.n%8 == 0
}

// Bytes returns a copy of the backing bytes. Unused trailing bits of the
// last byte are zero.
func (s Seq) Bytes() []byte {
	out := make([]byte, len(s.buf))
	copy(out, s.buf)
	return out
}

// Bit returns the i-th bit (0 or 1). It panics if i is out of range.
func (s Seq) Bit(i uint64) byte {
	if i >= s.n {
		panic("bitseq: bit index out of range")
	}
	return (s.buf[i>>3] >> (7 - i%8)) & 1
}

// Append returns the concatenation s || o.
func (s Seq) Append(o Seq) Seq {
	n := s.n + o.n
	out := make([]byte, byteLen(n))
	copy(out, s.buf)

	off := uint(s.n % 8)
	pos := s.n >> 3
	if off == 0 {
		copy(out[pos:], o.buf)
		return Seq{buf: out, n: n}
	}
	for _, b := range o.buf {
		out[pos] |= b >> off
		if pos+1 < uint64(len(out)) {
			out[pos+1] |= b << (8 - off)
		}
		pos++
	}
	return Seq{buf: out, n: n}
}

// AppendBit returns s followed by a single bit; any nonzero b counts as 1.
func (s Seq) AppendBit(b byte) Seq {
	bit := Zeros(1)
	if b != 0 {
		bit.buf[0] = 0x80
	}
	return s.Append(bit)
}

// AppendUint64 returns s followed by v as a 64-bit big-endian integer.
func (s Seq) AppendUint64(v uint64) Seq {
	var b [8]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (56 - 8*uint(i)))
	}
	return s.Append(Seq{buf: b[:], n: 64})
}

// PadRight returns s extended with zero bits to n bits. Sequences already
// at least n bits long are returned unchanged.
func (s Seq) PadRight(n uint64) Seq {
	if s.n >= n {
		return s
	}
	return s.Append(Zeros(n - s.n))
}

// Equal reports whether both sequences hold the same bits.
func (s Seq) Equal(o Seq) bool {
	if s.n != o.n {
		return false
	}
	for i := range s.buf {
		if s.buf[i] != o.buf[i] {
			return false
		}
	}
	return true
}

// Binary renders the sequence as '0' and '1' characters.
func (s Seq) Binary() string {
	var sb strings.Builder
	sb.Grow(int(s.n))
	for i := uint64(0); i < s.n; i++ {
		sb.WriteByte('0' + s.Bit(i))
	}
	return sb.String()
}

// String renders aligned sequences as hex and others as binary.
func (s Seq) String() string {
	if s.Aligned() {
		return hex.EncodeToString(s.buf)
	}
	return s.Binary()
}
