package cache

import (
	"sync"
	"time"
)

// TTLCache is a small in-memory key-value cache with a fixed TTL.
// It is constructed and injected by the caller (the heatmap façade owns
// one around its issue fetch); nothing in this package holds a
// process-wide instance.
type TTLCache struct {
	entries map[string]entry
	mu      sync.Mutex
	ttl     time.Duration
}

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// New creates a cache with the given TTL and starts its cleanup loop
func New(ttl time.Duration) *TTLCache {
	c := &TTLCache{
		entries: make(map[string]entry),
		ttl:     ttl,
	}

	go c.cleanup()

	return c
}

// cleanup removes expired entries periodically
func (c *TTLCache) cleanup() {
	ticker := time.NewTicker(c.ttl)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for key, e := range c.entries {
			if now.After(e.expiresAt) {
				delete(c.entries, key)
			}
		}
		c.mu.Unlock()
	}
}

// Get returns the cached value for key if present and not expired
func (c *TTLCache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

// Set stores a value under key for the cache's TTL
func (c *TTLCache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
}
