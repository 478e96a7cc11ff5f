package cache

import (
	"sync"
	"time"
)

// entry pairs a rendered transliteration with its expiry deadline.
// A zero deadline means the entry never expires.
type entry struct {
	value     string
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// InMemoryCache memoizes rendered transliterations in process memory.
// Keys are hash:fingerprint pairs as built by arlatin.CacheKey, so a
// mapping, style or assimilation change can never surface a stale
// rendering. Entries are evicted lazily: an expired entry is dropped
// the next time it is looked up or enumerated.
type InMemoryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
}

// NewInMemoryCache creates an in-memory cache whose entries expire
// ttlSeconds after they are stored. A ttlSeconds of zero or less
// disables expiry.
func NewInMemoryCache(ttlSeconds int) *InMemoryCache {
	c := &InMemoryCache{entries: make(map[string]entry)}
	if ttlSeconds > 0 {
		c.ttl = time.Duration(ttlSeconds) * time.Second
	}
	return c
}

// deadline computes the expiry for an entry stored now.
func (c *InMemoryCache) deadline(now time.Time) time.Time {
	if c.ttl == 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// Get returns the rendering stored under key, if present and still live.
// A hit on an expired entry deletes it and reports a miss.
func (c *InMemoryCache) Get(key string) (string, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return "", false
	}

	if e.expired(time.Now()) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return "", false
	}

	return e.value, true
}

// Set stores a rendering under key, resetting its expiry. It never fails;
// the error return exists to satisfy the Cache interface.
func (c *InMemoryCache) Set(key string, value string) error {
	now := time.Now()

	c.mu.Lock()
	c.entries[key] = entry{value: value, expiresAt: c.deadline(now)}
	c.mu.Unlock()

	return nil
}

// Len reports how many entries the cache currently holds, counting
// expired entries that have not yet been evicted.
func (c *InMemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear drops every entry.
func (c *InMemoryCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}

// Entries snapshots the live entries as a plain key→rendering map,
// the shape Exporter serializes.
func (c *InMemoryCache) Entries() map[string]string {
	now := time.Now()

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]string, len(c.entries))
	for key, e := range c.entries {
		if e.expired(now) {
			continue
		}
		out[key] = e.value
	}
	return out
}

// Verify InMemoryCache implements Cache
var _ Cache = (*InMemoryCache)(nil)
