package sha256

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd32(t *testing.T) {
	tests := []struct {
		in     []Word
		expect Word
	}{
		{nil, 0},
		{[]Word{7}, 7},
		{[]Word{1, 2, 3}, 6},
		{[]Word{math.MaxUint32, 1}, 0},
		{[]Word{math.MaxUint32, math.MaxUint32}, math.MaxUint32 - 1},
		{[]Word{0x80000000, 0x80000000, 0x80000000, 5}, 0x80000005},
	}
	for i, test := range tests {
		assert.Equal(t, test.expect, Add32(test.in...), "case %d", i)
	}
}

func TestRotrShr(t *testing.T) {
	assert.Equal(t, Word(0x80000000), Rotr(1, 1))
	assert.Equal(t, Word(0x23456781), Rotr(0x12345678, 28))
	assert.Equal(t, Word(0x81234567), Rotr(0x12345678, 4))
	assert.Equal(t, Word(0x01234567), Shr(0x12345678, 4))
	assert.Equal(t, Word(0), Shr(1, 1))
	assert.Equal(t, Word(1), Shr(0x80000000, 31))

	for n := uint(1); n < 32; n++ {
		x := Word(0xdeadbeef)
		assert.Equal(t, x, Rotr(Rotr(x, n), 32-n), "rotation by %d", n)
	}
}

func TestBitwise(t *testing.T) {
	assert.Equal(t, Word(0x0000f000), And(0x0000ff00, 0x0000f0f0))
	assert.Equal(t, Word(0x00000f00), And(0xffffff00, 0x0000ffff, 0x00000fff))
	assert.Equal(t, Word(0x0000fff0), Or(0x0000ff00, 0x0000f0f0))
	assert.Equal(t, Word(0x00000ff0), Xor(0x0000ff00, 0x0000f0f0))
	assert.Equal(t, Word(0x12345678), Xor(0x12345678, 0xffffffff, 0xffffffff))
	assert.Equal(t, Word(0xffff0000), Not(0x0000ffff))
	assert.Equal(t, Word(5), Xor(5))
}
