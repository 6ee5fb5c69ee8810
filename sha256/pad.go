package sha256

import (
	"errors"

	"massnet.org/macsum/bitseq"
)

// ErrUnalignedMessage indicates a padded message whose length is not a
// multiple of BlockBits.
var ErrUnalignedMessage = errors.New("message length is not a multiple of 512 bits")

const lengthBits = 64

// Pad appends the 1 bit, the zero fill and the 64-bit length field to msg.
// A message already at 448 bits modulo 512 receives a full extra block of
// fill, so the padded message is always longer than msg.
func Pad(msg bitseq.Seq) bitseq.Seq {
	l := msg.Len()
	zeros := (BlockBits - lengthBits + BlockBits - (l+1)%BlockBits) % BlockBits
	return msg.AppendBit(1).Append(bitseq.Zeros(zeros)).AppendUint64(l)
}

// Blocks splits a padded message into blocks.
func Blocks(padded bitseq.Seq) ([]Block, error) {
	if padded.Len()%BlockBits != 0 {
		return nil, ErrUnalignedMessage
	}
	p := padded.Bytes()
	blocks := make([]Block, 0, len(p)/BlockSize)
	for len(p) >= BlockSize {
		blocks = append(blocks, BlockFromBytes(p))
		p = p[BlockSize:]
	}
	return blocks, nil
}
