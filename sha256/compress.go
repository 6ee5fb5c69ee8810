package sha256

import "encoding/binary"

// ChainingState is the eight-word running hash state, a through h.
type ChainingState [8]Word

// Digest returns the big-endian encoding of the state.
func (s ChainingState) Digest() Digest {
	var d Digest
	for i, w := range s {
		binary.BigEndian.PutUint32(d[i*4:], uint32(w))
	}
	return d
}

func ch(x, y, z Word) Word {
	return Xor(And(x, y), And(Not(x), z))
}

func maj(x, y, z Word) Word {
	return Xor(And(x, y), And(x, z), And(y, z))
}

func bigSigma0(x Word) Word {
	return Xor(Rotr(x, 2), Rotr(x, 13), Rotr(x, 22))
}

func bigSigma1(x Word) Word {
	return Xor(Rotr(x, 6), Rotr(x, 11), Rotr(x, 25))
}

// Round applies one compression round with round constant k and schedule
// word w, returning the next working state.
func Round(s ChainingState, k, w Word) ChainingState {
	a, b, c, d, e, f, g, h := s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7]

	t1 := Add32(h, bigSigma1(e), ch(e, f, g), k, w)
	t2 := Add32(bigSigma0(a), maj(a, b, c))

	return ChainingState{Add32(t1, t2), a, b, c, Add32(d, t1), e, f, g}
}

// Compress runs the 64 rounds over w starting from prev and adds the result
// back into prev.
func Compress(prev ChainingState, w Schedule) ChainingState {
	s := prev
	for i := 0; i < 64; i++ {
		s = Round(s, K[i], w[i])
	}
	for i := range s {
		s[i] = Add32(s[i], prev[i])
	}
	return s
}
