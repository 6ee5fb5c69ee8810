package hmac

import (
	"sync"

	"github.com/golang/groupcache/lru"
	"massnet.org/macsum/bitseq"
)

// DefaultKeyCacheSize is the number of prepared keys kept by default.
const DefaultKeyCacheSize = 64

type cacheKey struct {
	engine uint64
	bits   uint64
	data   string
}

// KeyCache is an LRU cache of prepared keys, safe for concurrent use. A
// cache may be shared by several engines; entries are kept per engine
// because a long key is reduced with the engine's own Hasher.
type KeyCache struct {
	mu     sync.Mutex
	lru    *lru.Cache
	hits   uint64
	misses uint64
}

// NewKeyCache returns a cache holding at most size prepared keys.
func NewKeyCache(size int) *KeyCache {
	if size <= 0 {
		size = DefaultKeyCacheSize
	}
	return &KeyCache{lru: lru.New(size)}
}

// get returns the prepared form of key for the engine with the given id,
// preparing it with h on a miss.
func (c *KeyCache) get(engine uint64, h Hasher, key bitseq.Seq) PreparedKey {
	k := cacheKey{engine: engine, bits: key.Len(), data: string(key.Bytes())}

	c.mu.Lock()
	if v, ok := c.lru.Get(k); ok {
		c.hits++
		c.mu.Unlock()
		return v.(PreparedKey)
	}
	c.misses++
	c.mu.Unlock()

	pk := PrepareKey(h, key)

	c.mu.Lock()
	c.lru.Add(k, pk)
	c.mu.Unlock()
	return pk
}

// Len returns the number of cached keys.
func (c *KeyCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Stats returns the hit and miss counts.
func (c *KeyCache) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
