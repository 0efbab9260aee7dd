package dataset

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache memoizes derived tables for a fixed time window. The clock is
// injectable so expiry is testable, and concurrent misses on the same key
// collapse into a single load via singleflight rather than stampeding the
// input files.
type Cache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]cacheEntry
	group   singleflight.Group
}

type cacheEntry struct {
	value   any
	expires time.Time
}

// NewCache returns a cache with the given time-to-live. A nil clock defaults
// to time.Now.
func NewCache(ttl time.Duration, now func() time.Time) *Cache {
	if now == nil {
		now = time.Now
	}
	return &Cache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]cacheEntry),
	}
}

// GetOrLoad returns the cached value for key, loading and storing it when the
// entry is absent or expired. Load errors are not cached.
func (c *Cache) GetOrLoad(key string, load func() (any, error)) (any, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && c.now().Before(e.expires) {
		return e.value, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// Re-check: another caller may have refreshed the entry while this
		// one waited on the flight group.
		c.mu.RLock()
		e, ok := c.entries[key]
		c.mu.RUnlock()
		if ok && c.now().Before(e.expires) {
			return e.value, nil
		}

		value, err := load()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = cacheEntry{value: value, expires: c.now().Add(c.ttl)}
		c.mu.Unlock()
		return value, nil
	})
	return v, err
}

// Invalidate drops the given keys, or every entry when called with none.
func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(keys) == 0 {
		c.entries = make(map[string]cacheEntry)
		return
	}
	for _, k := range keys {
		delete(c.entries, k)
	}
}
