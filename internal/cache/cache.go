// Package cache provides a small in-memory TTL cache. Entries are never
// evicted on expiry; expired values stay readable through Stale so the
// service can keep answering while every upstream is down.
package cache

import (
	"sync"
	"time"
)

type entry[T any] struct {
	value    T
	storedAt time.Time
}

// TTL is a concurrency-safe key/value cache with a single time-to-live
// for all entries.
type TTL[T any] struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]entry[T]
}

// NewTTL constructs a cache whose entries stay fresh for ttl.
func NewTTL[T any](ttl time.Duration) *TTL[T] {
	return &TTL[T]{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry[T]),
	}
}

// WithNow overrides the time source; used by tests.
func (c *TTL[T]) WithNow(now func() time.Time) *TTL[T] {
	c.now = now
	return c
}

// Put stores a value under key, resetting its age.
func (c *TTL[T]) Put(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[T]{value: value, storedAt: c.now()}
}

// Fresh returns the value under key only if it is within the TTL.
func (c *TTL[T]) Fresh(key string) (T, time.Duration, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		var zero T
		return zero, 0, false
	}
	age := c.now().Sub(e.storedAt)
	if age > c.ttl {
		var zero T
		return zero, 0, false
	}
	return e.value, age, true
}

// Stale returns the value under key regardless of age. Used as the
// fallback when a refresh fails and the expired value beats nothing.
func (c *TTL[T]) Stale(key string) (T, time.Duration, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		var zero T
		return zero, 0, false
	}
	return e.value, c.now().Sub(e.storedAt), true
}
