package bundle

import (
	"image"
	"sort"
	"sync"
	"sync/atomic"
)

// RescaleCache memoizes rescaled bitmaps by requested size.
//
// Entries are never evicted or invalidated: the cache grows by one entry per
// distinct size stored and lives as long as the bundle owning it.
//
// RescaleCache is safe for concurrent use.
type RescaleCache struct {
	mu      sync.RWMutex
	entries map[Size]image.Image

	hits   atomic.Uint64
	misses atomic.Uint64
	stores atomic.Uint64
}

// CacheStats is a snapshot of cache activity.
type CacheStats struct {
	Entries int    `json:"entries"`
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
	Stores  uint64 `json:"stores"`
}

// NewRescaleCache returns an empty cache.
func NewRescaleCache() *RescaleCache {
	return &RescaleCache{
		entries: make(map[Size]image.Image),
	}
}

// Lookup returns the bitmap cached for exactly target.
func (c *RescaleCache) Lookup(target Size) (image.Image, bool) {
	c.mu.RLock()
	img, ok := c.entries[target]
	c.mu.RUnlock()

	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return img, ok
}

// Store records img as the bitmap for target, replacing any previous entry.
func (c *RescaleCache) Store(target Size, img image.Image) {
	c.mu.Lock()
	c.entries[target] = img
	c.mu.Unlock()
	c.stores.Add(1)
}

// Len returns the number of cached sizes.
func (c *RescaleCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Sizes returns the cached sizes ordered by area, then width.
func (c *RescaleCache) Sizes() []Size {
	c.mu.RLock()
	sizes := make([]Size, 0, len(c.entries))
	for s := range c.entries {
		sizes = append(sizes, s)
	}
	c.mu.RUnlock()

	sort.Slice(sizes, func(i, j int) bool {
		if a, b := sizes[i].Area(), sizes[j].Area(); a != b {
			return a < b
		}
		return sizes[i].Width < sizes[j].Width
	})
	return sizes
}

// Stats returns a snapshot of the cache counters.
func (c *RescaleCache) Stats() CacheStats {
	return CacheStats{
		Entries: c.Len(),
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Stores:  c.stores.Load(),
	}
}
