package sha256

// Word is a 32-bit unsigned integer. All arithmetic on it wraps modulo 2^32.
type Word uint32

// Add32 returns the sum of ws modulo 2^32.
func Add32(ws ...Word) Word {
	var sum Word
	for _, w := range ws {
		sum += w
	}
	return sum
}

// Rotr rotates x right by n bits, 0 < n < 32.
func Rotr(x Word, n uint) Word {
	return x>>n | x<<(32-n)
}

// Shr shifts x right by n bits, filling with zeros.
func Shr(x Word, n uint) Word {
	return x >> n
}

// And returns the bitwise AND of all operands.
func And(x Word, ys ...Word) Word {
	for _, y := range ys {
		x &= y
	}
	return x
}

// Or returns the bitwise OR of all operands.
func Or(x Word, ys ...Word) Word {
	for _, y := range ys {
		x |= y
	}
	return x
}

// Xor returns the bitwise XOR of all operands.
func Xor(x Word, ys ...Word) Word {
	for _, y := range ys {
		x ^= y
	}
	return x
}

// Not returns the bitwise complement of x.
func Not(x Word) Word {
	return ^x
}
