package cafes

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type memoryCacheEntry struct {
	result    SearchResult
	createdAt time.Time
}

// MemoryCache is an in-memory Cache used in development and tests.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryCacheEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryCacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func cacheKey(lat, lng float64, radius int) string {
	return fmt.Sprintf("%.3f:%.3f:%d", roundCoord(lat), roundCoord(lng), radius)
}

func (c *MemoryCache) Get(_ context.Context, lat, lng float64, radius int) (SearchResult, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := cacheKey(lat, lng, radius)
	entry, ok := c.entries[key]
	if !ok {
		return SearchResult{}, false, nil
	}
	if c.now().Sub(entry.createdAt) > c.ttl {
		delete(c.entries, key)
		return SearchResult{}, false, nil
	}
	return entry.result, true, nil
}

func (c *MemoryCache) Put(_ context.Context, lat, lng float64, radius int, _ string, result SearchResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey(lat, lng, radius)] = memoryCacheEntry{result: result, createdAt: c.now()}
	return nil
}

func (c *MemoryCache) CleanupExpired(_ context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	cutoff := c.now().Add(-c.ttl)
	for key, entry := range c.entries {
		if entry.createdAt.Before(cutoff) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed, nil
}
