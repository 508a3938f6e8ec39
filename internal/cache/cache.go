package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultTTL is used when New is given a non-positive expiration.
const DefaultTTL = time.Hour

// Cache is an in-memory expiring store backed by go-cache. Nothing is
// written to disk.
type Cache struct {
	inner *gocache.Cache
}

// New creates an empty cache whose entries expire after ttl.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{inner: gocache.New(ttl, 2*ttl)}
}

// GetString retrieves a string value by key.
func (c *Cache) GetString(key string) (string, bool) {
	val, found := c.inner.Get(key)
	if !found {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

// Set stores a value with default expiration.
func (c *Cache) Set(key string, val any) {
	c.inner.Set(key, val, gocache.DefaultExpiration)
}
