package source

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/robert-malhotra/go-gltf/internal/metrics"
)

// maxCacheEntries bounds the entry count independently of the byte budget.
const maxCacheEntries = 1024

// Cached keeps recently loaded buffers of an underlying source in a
// size-bounded LRU. Only raw buffer bytes are cached, never decoded values.
type Cached struct {
	src     Source
	cache   *lru.Cache[string, []byte]
	maxSize int64
	metrics *metrics.Metrics

	mu   sync.Mutex // guards size and eviction
	size int64
}

var _ Source = (*Cached)(nil)

// NewCached wraps src with a cache holding at most maxBytes of buffer data.
// A nil metrics value disables hit/miss accounting.
func NewCached(src Source, maxBytes int64, m *metrics.Metrics) (*Cached, error) {
	c := &Cached{
		src:     src,
		maxSize: maxBytes,
		metrics: m,
	}

	cache, err := lru.NewWithEvict(maxCacheEntries, func(_ string, value []byte) {
		c.size -= int64(len(value))
	})
	if err != nil {
		return nil, fmt.Errorf("create LRU cache: %w", err)
	}
	c.cache = cache
	return c, nil
}

// Load implements Source.
func (c *Cached) Load(ref Ref) ([]byte, bool) {
	key := ref.Key()
	if data, ok := c.cache.Get(key); ok {
		if c.metrics != nil {
			c.metrics.CacheHits.Inc()
		}
		return data, true
	}
	if c.metrics != nil {
		c.metrics.CacheMisses.Inc()
	}

	data, ok := c.src.Load(ref)
	if !ok {
		return nil, false
	}
	c.put(key, data)
	return data, true
}

func (c *Cached) put(key string, data []byte) {
	n := int64(len(data))
	if n > c.maxSize {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.cache.Peek(key); exists {
		return
	}
	for c.size+n > c.maxSize {
		if _, _, ok := c.cache.RemoveOldest(); !ok {
			break
		}
	}
	c.size += n
	c.cache.Add(key, data)
}

// Len returns the number of cached buffers.
func (c *Cached) Len() int {
	return c.cache.Len()
}

// Size returns the cached byte total.
func (c *Cached) Size() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.size
}
