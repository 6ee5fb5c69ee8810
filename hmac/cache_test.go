package hmac_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"massnet.org/macsum/bitseq"
	"massnet.org/macsum/hmac"
	"massnet.org/macsum/sha256"
)

func TestKeyCache(t *testing.T) {
	cache := hmac.NewKeyCache(2)
	h := sha256.New()
	engine := hmac.NewWithHasher(h).WithKeyCache(cache)
	k1 := bitseq.FromBytes([]byte("one"))
	k2 := bitseq.FromBytes([]byte("two"))
	k3 := bitseq.FromBytes([]byte("three"))

	assert.Equal(t, hmac.PrepareKey(h, k1), engine.Prepare(k1))
	engine.Prepare(k1)
	hits, misses := cache.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)

	engine.Prepare(k2)
	engine.Prepare(k3)
	assert.Equal(t, 2, cache.Len())

	// k1 was evicted
	engine.Prepare(k1)
	_, misses = cache.Stats()
	assert.Equal(t, uint64(4), misses)
}

func TestKeyCacheDistinguishesBitLength(t *testing.T) {
	cache := hmac.NewKeyCache(0)
	engine := hmac.New().WithKeyCache(cache)
	short, _ := bitseq.New([]byte{0xa0}, 4)
	full := bitseq.FromBytes([]byte{0xa0})

	engine.Prepare(short)
	engine.Prepare(full)
	assert.Equal(t, 2, cache.Len())
}

func TestEngineUsesCache(t *testing.T) {
	cache := hmac.NewKeyCache(8)
	engine := hmac.New().WithKeyCache(cache)
	key := bitseq.FromBytes([]byte("key"))

	a := engine.Create(bitseq.FromBytes([]byte("a")), key)
	b := engine.Create(bitseq.FromBytes([]byte("b")), key)
	assert.NotEqual(t, a, b)
	assert.Equal(t, hmac.Create(bitseq.FromBytes([]byte("a")), key), a)

	hits, misses := cache.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
}

// constHasher returns the same digest for every message.
type constHasher struct {
	d sha256.Digest
}

func (c constHasher) Hash(bitseq.Seq) sha256.Digest {
	return c.d
}

func TestKeyCacheSharedByEngines(t *testing.T) {
	cache := hmac.NewKeyCache(8)
	other := constHasher{d: sha256.SumBytes([]byte("other"))}
	std := hmac.New().WithKeyCache(cache)
	custom := hmac.NewWithHasher(other).WithKeyCache(cache)

	// longer than a block, so each engine reduces it with its own hasher
	long := bitseq.FromBytes([]byte(strings.Repeat("k", 100)))

	assert.Equal(t, hmac.PrepareKey(sha256.New(), long), std.Prepare(long))
	assert.Equal(t, hmac.PrepareKey(other, long), custom.Prepare(long))
	assert.NotEqual(t, std.Prepare(long), custom.Prepare(long))
	assert.Equal(t, 2, cache.Len())

	// a copy made with WithKeyCache shares its engine's entries
	again := std.WithKeyCache(cache)
	again.Prepare(long)
	assert.Equal(t, 2, cache.Len())
}
