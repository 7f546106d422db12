package cachemanager

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/bharathravi-in/RFP-sub004/internal/log"
)

const DefaultExpiration = 10 * time.Minute
const DefaultCleanupInterval = 30 * time.Minute

// NewMemoryCache initializes an in-memory cache for the given use case.
// The use case only labels log entries; entries expire per item TTL.
func NewMemoryCache[K ~string, V any](useCase string, defaultExpiration, cleanupInterval time.Duration) *MemoryCache[K, V] {
	return &MemoryCache[K, V]{
		useCase: useCase,
		cache:   gocache.New(defaultExpiration, cleanupInterval),
	}
}

// MemoryCache is the in-memory implementation of CacheManager backed by
// patrickmn/go-cache.
type MemoryCache[K ~string, V any] struct {
	useCase string
	cache   *gocache.Cache
}

// Get retrieves an item from the cache by its key.
func (c *MemoryCache[K, V]) Get(ctx context.Context, key K) (V, bool) {
	var zeroValue V

	value, found := c.cache.Get(string(key))
	if !found {
		return zeroValue, false
	}

	v, ok := value.(V)
	if !ok {
		log.Error(log.CatCache, "wrong type assertion when getting value", "use_case", c.useCase, "key", key)

		return zeroValue, false
	}

	log.Debug(log.CatCache, "cache hit", "use_case", c.useCase, "key", key)

	return v, true
}

// Set stores a value in the cache with a key and TTL.
func (c *MemoryCache[K, V]) Set(ctx context.Context, key K, value V, ttl time.Duration) {
	c.cache.Set(string(key), value, ttl)
}

// Delete removes values from the cache by their keys.
func (c *MemoryCache[K, V]) Delete(ctx context.Context, keys ...K) error {
	for _, key := range keys {
		c.cache.Delete(string(key))
	}

	return nil
}

// Flush removes every entry from the cache.
func (c *MemoryCache[K, V]) Flush(ctx context.Context) error {
	c.cache.Flush()

	return nil
}
