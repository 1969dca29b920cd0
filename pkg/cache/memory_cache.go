package cache

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// MemoryCache is an in-process Cache used when Redis is not configured and in tests.
type MemoryCache struct {
	items *ttlcache.Cache[string, string]
}

// NewMemoryCache starts the expiry loop; Close stops it.
func NewMemoryCache() *MemoryCache {
	items := ttlcache.New[string, string](
		ttlcache.WithDisableTouchOnHit[string, string](),
	)
	go items.Start()
	return &MemoryCache{items: items}
}

// Set stores value; a zero ttl keeps the entry until deleted.
func (m *MemoryCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = ttlcache.NoTTL
	}
	m.items.Set(key, value, ttl)
	return nil
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, error) {
	item := m.items.Get(key)
	if item == nil || item.IsExpired() {
		return "", ErrMiss
	}
	return item.Value(), nil
}

func (m *MemoryCache) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		m.items.Delete(k)
	}
	return nil
}

// Len reports the number of stored entries, expired ones not yet evicted included.
func (m *MemoryCache) Len() int {
	return m.items.Len()
}

func (m *MemoryCache) Close() {
	m.items.Stop()
}
