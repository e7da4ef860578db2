package cache

import (
	"sync"
	"time"
)

// DefaultTTL is used when a cache is constructed with a non-positive TTL.
const DefaultTTL = 5 * time.Minute

// DefaultMaxSize bounds the cache when no explicit size is given.
const DefaultMaxSize = 1000

type memoryEntry[V any] struct {
	value     V
	expiresAt time.Time
}

// Memory is a thread-safe in-process cache with per-entry TTL and a bounded
// size. Suitable for single-process deployments; use Redis for anything
// shared between instances.
type Memory[K comparable, V any] struct {
	mu         sync.Mutex
	defaultTTL time.Duration
	maxSize    int
	items      map[K]memoryEntry[V]
}

// NewMemory creates a memory cache. Non-positive arguments fall back to
// DefaultTTL and DefaultMaxSize.
func NewMemory[K comparable, V any](defaultTTL time.Duration, maxSize int) *Memory[K, V] {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Memory[K, V]{
		defaultTTL: defaultTTL,
		maxSize:    maxSize,
		items:      make(map[K]memoryEntry[V]),
	}
}

// Get returns the cached value for key, or false if it is missing or
// expired. Expired entries are removed on read.
func (c *Memory[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.items, key)
		var zero V
		return zero, false
	}
	return entry.value, true
}

// Set stores value under key with the default TTL.
func (c *Memory[K, V]) Set(key K, value V) {
	c.SetTTL(key, value, c.defaultTTL)
}

// SetTTL stores value under key with an explicit TTL. When the cache is at
// capacity, expired entries are purged first; if it is still full, the entry
// closest to expiry is evicted.
func (c *Memory[K, V]) SetTTL(key K, value V, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; !exists && len(c.items) >= c.maxSize {
		c.purgeExpiredLocked()
		if len(c.items) >= c.maxSize {
			c.evictSoonestLocked()
		}
	}

	c.items[key] = memoryEntry[V]{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

// Delete removes key and reports whether it was present.
func (c *Memory[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.items[key]
	delete(c.items, key)
	return ok
}

// Has reports whether key exists and has not expired.
func (c *Memory[K, V]) Has(key K) bool {
	_, ok := c.Get(key)
	return ok
}

// Clear removes all entries.
func (c *Memory[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.items)
}

// Len returns the number of stored entries, including any not yet purged
// expired ones.
func (c *Memory[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *Memory[K, V]) purgeExpiredLocked() {
	now := time.Now()
	for key, entry := range c.items {
		if now.After(entry.expiresAt) {
			delete(c.items, key)
		}
	}
}

func (c *Memory[K, V]) evictSoonestLocked() {
	var (
		victim   K
		earliest time.Time
		found    bool
	)
	for key, entry := range c.items {
		if !found || entry.expiresAt.Before(earliest) {
			victim = key
			earliest = entry.expiresAt
			found = true
		}
	}
	if found {
		delete(c.items, victim)
	}
}
