// Package cache provides a small generic memo with a soft size limit.
//
// Entries carry the tick of their last access. When an insert pushes the
// cache past its limit, the least recently used quarter is dropped.
//
//	widths := cache.New[string, float64](512)
//	widths.Set("checksum", 61.3)
//	w, ok := widths.Get("checksum")
//
// A Cache is safe for concurrent use and must not be copied.
package cache

import (
	"slices"
	"sync"
)

// Cache maps keys to values, evicting the least recently used entries
// once it holds more than its limit.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[V]
	limit   int
	tick    uint64
}

type entry[V any] struct {
	value V
	used  uint64
}

// New returns a cache holding at most limit entries.
// A limit of 0 or less disables eviction.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]*entry[V]),
		limit:   limit,
	}
}

// Get returns the value stored for key and marks it as recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.tick++
	e.used = c.tick
	return e.value, true
}

// Set stores value for key.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	c.entries[key] = &entry[V]{value: value, used: c.tick}
	if c.limit > 0 && len(c.entries) > c.limit {
		c.evict()
	}
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops every entry.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	c.tick = 0
}

// evict shrinks the cache to three quarters of its limit, oldest first.
// The caller holds c.mu.
func (c *Cache[K, V]) evict() {
	keep := max(c.limit*3/4, 1)
	drop := len(c.entries) - keep
	if drop <= 0 {
		return
	}

	type aged struct {
		key  K
		used uint64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{k, e.used})
	}
	slices.SortFunc(all, func(a, b aged) int {
		switch {
		case a.used < b.used:
			return -1
		case a.used > b.used:
			return 1
		}
		return 0
	})
	for _, a := range all[:drop] {
		delete(c.entries, a.key)
	}
}
