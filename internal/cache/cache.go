package cache

import "sync"

// Cache is an LRU cache holding at most a fixed number of entries.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*lruNode[K, V]
	order   lruList[K, V]
	limit   int
	onEvict func(K, V)
}

// New returns a cache holding at most limit entries. A limit below one
// is treated as one.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]*lruNode[K, V]),
		limit:   max(1, limit),
	}
}

// OnEvict sets a function called with each entry dropped by eviction or
// Clear. It is called with the cache locked and must not use the cache.
func (c *Cache[K, V]) OnEvict(fn func(K, V)) {
	c.mu.Lock()
	c.onEvict = fn
	c.mu.Unlock()
}

// Get returns the value for key and marks it recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.moveToFront(n)
	return n.value, true
}

// Put stores value under key, evicting the least recently used entry
// when the cache is full.
func (c *Cache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.putLocked(key, value)
}

func (c *Cache[K, V]) putLocked(key K, value V) {
	if n, ok := c.entries[key]; ok {
		n.value = value
		c.order.moveToFront(n)
		return
	}
	n := &lruNode[K, V]{key: key, value: value}
	c.entries[key] = n
	c.order.pushFront(n)
	for c.order.len > c.limit {
		old := c.order.removeOldest()
		delete(c.entries, old.key)
		if c.onEvict != nil {
			c.onEvict(old.key, old.value)
		}
	}
}

// GetOrCreate returns the value for key, calling create to make and store
// it on a miss. create runs with the cache locked, so each key is created
// once. Errors from create are returned and nothing is stored.
func (c *Cache[K, V]) GetOrCreate(key K, create func(K) (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n, ok := c.entries[key]; ok {
		c.order.moveToFront(n)
		return n.value, nil
	}
	v, err := create(key)
	if err != nil {
		return v, err
	}
	c.putLocked(key, v)
	return v, nil
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.len
}

// Clear drops every entry.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for n := c.order.removeOldest(); n != nil; n = c.order.removeOldest() {
		if c.onEvict != nil {
			c.onEvict(n.key, n.value)
		}
	}
	clear(c.entries)
}
