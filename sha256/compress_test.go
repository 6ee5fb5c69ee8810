package sha256

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
)

func TestRoundFunctions(t *testing.T) {
	// ch picks y where x is set and z elsewhere
	assert.Equal(t, Word(0xff0000ff), ch(0xffff0000, 0xff00ff00, 0x00ff00ff))
	assert.Equal(t, Word(0x0000ffff), ch(0, 0xffffffff, 0x0000ffff))
	// maj is a bitwise majority vote
	assert.Equal(t, Word(0xff00ff00), maj(0xff00ff00, 0xff00ff00, 0x00ff00ff))
	assert.Equal(t, Word(0x0f0f0f0f), maj(0x0f0f0f0f, 0xffffffff, 0))
	assert.Equal(t, Xor(Rotr(1, 2), Rotr(1, 13), Rotr(1, 22)), bigSigma0(1))
	assert.Equal(t, Xor(Rotr(1, 6), Rotr(1, 11), Rotr(1, 25)), bigSigma1(1))
}

// Intermediate values for "abc" from FIPS 180-2 Appendix B.1.
var (
	abcAfterRound0 = ChainingState{
		0x5d6aebcd, 0x6a09e667, 0xbb67ae85, 0x3c6ef372,
		0xfa2a4622, 0x510e527f, 0x9b05688c, 0x1f83d9ab,
	}
	abcAfterRound63 = ChainingState{
		0x506e3058, 0xd39a2165, 0x04d24d6c, 0xb85e2ce9,
		0x5ef50f24, 0xfb121210, 0x948d25b6, 0x961f4894,
	}
	abcFinal = ChainingState{
		0xba7816bf, 0x8f01cfea, 0x414140de, 0x5dae2223,
		0xb00361a3, 0x96177a9c, 0xb410ff61, 0xf20015ad,
	}
)

func TestRound(t *testing.T) {
	w := ScheduleBlock(abcBlock(t))

	s := Round(IV, K[0], w[0])
	if s != abcAfterRound0 {
		t.Errorf("round 0 mismatch:\n%s", spew.Sdump(s, abcAfterRound0))
	}

	s = IV
	for i := 0; i < 64; i++ {
		s = Round(s, K[i], w[i])
	}
	if s != abcAfterRound63 {
		t.Errorf("round 63 mismatch:\n%s", spew.Sdump(s, abcAfterRound63))
	}
}

func TestRoundShiftsState(t *testing.T) {
	in := ChainingState{1, 2, 3, 4, 5, 6, 7, 8}
	out := Round(in, 0, 0)
	assert.Equal(t, in[0], out[1])
	assert.Equal(t, in[1], out[2])
	assert.Equal(t, in[2], out[3])
	assert.Equal(t, in[4], out[5])
	assert.Equal(t, in[5], out[6])
	assert.Equal(t, in[6], out[7])
	assert.Equal(t, ChainingState{1, 2, 3, 4, 5, 6, 7, 8}, in)
}

func TestCompressFeedForward(t *testing.T) {
	w := ScheduleBlock(abcBlock(t))
	got := Compress(IV, w)
	if got != abcFinal {
		t.Fatalf("compress mismatch:\n%s", spew.Sdump(got, abcFinal))
	}
	for i := range got {
		assert.Equal(t, Add32(abcAfterRound63[i], IV[i]), got[i])
	}
	assert.NotEqual(t, abcAfterRound63, got)
}

func TestChainingStateDigest(t *testing.T) {
	d := abcFinal.Digest()
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", d.String())
}
