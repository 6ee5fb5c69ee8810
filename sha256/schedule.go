package sha256

import "encoding/binary"

const (
	// BlockSize is the size of a block in bytes.
	BlockSize = 64
	// BlockBits is the size of a block in bits.
	BlockBits = BlockSize * 8
)

// Block is one 512-bit unit of padded message.
type Block [16]Word

// Schedule is the 64-word message schedule derived from one Block.
type Schedule [64]Word

// BlockFromBytes decodes the first 64 bytes of p, most significant byte
// first. It panics if p is shorter than BlockSize.
func BlockFromBytes(p []byte) Block {
	_ = p[BlockSize-1]
	var b Block
	for i := range b {
		b[i] = Word(binary.BigEndian.Uint32(p[i*4:]))
	}
	return b
}

func sigma0(x Word) Word {
	return Xor(Rotr(x, 7), Rotr(x, 18), Shr(x, 3))
}

func sigma1(x Word) Word {
	return Xor(Rotr(x, 17), Rotr(x, 19), Shr(x, 10))
}

// ScheduleBlock expands b into its message schedule.
func ScheduleBlock(b Block) Schedule {
	var w Schedule
	copy(w[:16], b[:])
	for i := 16; i < 64; i++ {
		w[i] = Add32(sigma1(w[i-2]), w[i-7], sigma0(w[i-15]), w[i-16])
	}
	return w
}
