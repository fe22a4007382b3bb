// Package cache provides a small in-memory TTL cache for search responses,
// keyed by the exact normalized query string. Entries older than the TTL are
// treated as absent rather than evicted proactively.
package cache

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache is a time-bounded memoization layer. It is safe for concurrent use;
// duplicate in-flight fetches for the same key are collapsed to one call.
type Cache struct {
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	mu      sync.RWMutex
	entries map[string]entry
}

type entry struct {
	value    any
	storedAt time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock overrides the time source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// New creates a Cache whose entries expire after ttl.
func New(ttl time.Duration, opts ...Option) *Cache {
	c := &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached value for key, or false when the key is missing or
// its entry has outlived the TTL. Stale entries are left in place.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().Sub(e.storedAt) > c.ttl {
		return nil, false
	}
	return e.value, true
}

// Set stores value under key, replacing any previous entry.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	c.entries[key] = entry{value: value, storedAt: c.now()}
	c.mu.Unlock()
}

// GetOrFetch returns the cached value for key when fresh, calling fetch
// otherwise and caching its result. Concurrent callers for the same key share
// a single fetch. Fetch failures are not cached.
func (c *Cache) GetOrFetch(key string, fetch func() (any, error)) (any, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// Re-check under the flight: another caller may have filled it.
		if v, ok := c.Get(key); ok {
			return v, nil
		}
		v, err := fetch()
		if err != nil {
			return nil, err
		}
		c.Set(key, v)
		return v, nil
	})
	return v, err
}

// Len returns the number of entries held, including stale ones.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
