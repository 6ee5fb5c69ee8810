// Package hmac implements HMAC-SHA-256 as defined in RFC 2104 on top of
// package sha256.
//
// Only MAC generation is provided. Callers that compare MACs must do so in
// constant time.
package hmac

import (
	"sync/atomic"

	"massnet.org/macsum/bitseq"
	"massnet.org/macsum/sha256"
)

const (
	// IPad is the byte XORed with the padded key for the inner hash.
	IPad byte = 0x36
	// OPad is the byte XORed with the padded key for the outer hash.
	OPad byte = 0x5c
)

// Hasher computes a digest over a bit sequence. *sha256.Engine satisfies it.
type Hasher interface {
	Hash(msg bitseq.Seq) sha256.Digest
}

// PreparedKey holds the block-sized key masked with IPad and OPad.
type PreparedKey struct {
	Inner [sha256.BlockSize]byte
	Outer [sha256.BlockSize]byte
}

// PrepareKey reduces key to a single block and masks it. Keys longer than
// one block are hashed first; shorter keys are right-padded with zero bits.
func PrepareKey(h Hasher, key bitseq.Seq) PreparedKey {
	if key.Len() > sha256.BlockBits {
		d := h.Hash(key)
		key = d.Bits()
	}
	padded := key.PadRight(sha256.BlockBits).Bytes()

	var pk PreparedKey
	for i, b := range padded {
		pk.Inner[i] = b ^ IPad
		pk.Outer[i] = b ^ OPad
	}
	return pk
}

// Engine computes HMAC-SHA-256 MACs.
type Engine struct {
	id     uint64
	hasher Hasher
	cache  *KeyCache
}

var engineSeq uint64

// New returns an Engine backed by a fresh sha256.Engine.
func New() *Engine {
	return NewWithHasher(sha256.New())
}

// NewWithHasher returns an Engine backed by h.
func NewWithHasher(h Hasher) *Engine {
	return &Engine{id: atomic.AddUint64(&engineSeq, 1), hasher: h}
}

// WithKeyCache returns a copy of e that memoises prepared keys in c. The
// copy shares e's Hasher and therefore its cache entries.
func (e *Engine) WithKeyCache(c *KeyCache) *Engine {
	return &Engine{id: e.id, hasher: e.hasher, cache: c}
}

// Prepare returns the masked key for key, consulting the cache if any.
func (e *Engine) Prepare(key bitseq.Seq) PreparedKey {
	if e.cache != nil {
		return e.cache.get(e.id, e.hasher, key)
	}
	return PrepareKey(e.hasher, key)
}

// Create returns the MAC of message under key.
func (e *Engine) Create(message, key bitseq.Seq) sha256.Digest {
	return e.CreateWithKey(message, e.Prepare(key))
}

// CreateWithKey returns the MAC of message under an already prepared key.
func (e *Engine) CreateWithKey(message bitseq.Seq, pk PreparedKey) sha256.Digest {
	inner := e.hasher.Hash(bitseq.FromBytes(pk.Inner[:]).Append(message))
	return e.hasher.Hash(bitseq.FromBytes(pk.Outer[:]).Append(inner.Bits()))
}

var std = New()

// Create returns the HMAC-SHA-256 of message under key.
func Create(message, key bitseq.Seq) sha256.Digest {
	return std.Create(message, key)
}

// CreateHex returns the HMAC-SHA-256 of message under key as 64 hex chars.
func CreateHex(message, key bitseq.Seq) string {
	return std.Create(message, key).String()
}
