package utils

import (
	"github.com/dolthub/swiss"
	"github.com/floatdrop/lru"
)

// Cache Minimal cache surface shared by the LRU, map and nil backings.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V)
	Clear()
}

type lruCache[K comparable, V any] struct {
	cache    *lru.LRU[K, V]
	capacity int
}

// NewLRUCache returns a cache bounded to capacity entries with least recently
// used eviction.
func NewLRUCache[K comparable, V any](capacity int) Cache[K, V] {
	return &lruCache[K, V]{
		cache:    lru.New[K, V](capacity),
		capacity: capacity,
	}
}

func (c *lruCache[K, V]) Get(key K) (V, bool) {
	if v := c.cache.Get(key); v != nil {
		return *v, true
	}
	var zero V
	return zero, false
}

func (c *lruCache[K, V]) Set(key K, value V) {
	c.cache.Set(key, value)
}

func (c *lruCache[K, V]) Clear() {
	c.cache = lru.New[K, V](c.capacity)
}

type mapCache[K comparable, V any] struct {
	m        *swiss.Map[K, V]
	capacity int
}

// NewMapCache returns an unordered cache bounded to capacity entries; the whole
// map is dropped when full instead of tracking recency.
func NewMapCache[K comparable, V any](capacity int) Cache[K, V] {
	return &mapCache[K, V]{
		m:        swiss.NewMap[K, V](uint32(capacity)),
		capacity: capacity,
	}
}

func (c *mapCache[K, V]) Get(key K) (V, bool) {
	return c.m.Get(key)
}

func (c *mapCache[K, V]) Set(key K, value V) {
	if c.m.Count() >= c.capacity && !c.m.Has(key) {
		c.m.Clear()
	}
	c.m.Put(key, value)
}

func (c *mapCache[K, V]) Clear() {
	c.m.Clear()
}

type nilCache[K comparable, V any] struct{}

// NewNilCache returns a cache that retains nothing.
func NewNilCache[K comparable, V any]() Cache[K, V] {
	return nilCache[K, V]{}
}

func (nilCache[K, V]) Get(K) (V, bool) {
	var zero V
	return zero, false
}

func (nilCache[K, V]) Set(K, V) {}

func (nilCache[K, V]) Clear() {}
