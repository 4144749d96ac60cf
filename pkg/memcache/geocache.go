// pkg/memcache/geocache.go
package memcache

import (
	"sync"
	"time"
)

// GeoCache is a TTL-bounded in-memory cache for geocoding results keyed by
// the normalized lookup string (address, or "lat,lng" for reverse lookups).
type GeoCache[T any] struct {
	mu   sync.RWMutex
	data map[string]geoEntry[T]
	ttl  time.Duration
}

type geoEntry[T any] struct {
	value     T
	expiresAt time.Time
}

func NewGeoCache[T any](ttl time.Duration) *GeoCache[T] {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &GeoCache[T]{
		data: make(map[string]geoEntry[T]),
		ttl:  ttl,
	}
}

func (c *GeoCache[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = geoEntry[T]{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Get returns the cached value if present and not expired. Expired entries
// are removed on access.
func (c *GeoCache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()

	var zero T
	if !ok {
		return zero, false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.data, key)
		c.mu.Unlock()
		return zero, false
	}
	return e.value, true
}

func (c *GeoCache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
