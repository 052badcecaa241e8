package assets

import "sync"

// CacheStats is a snapshot of cache usage.
type CacheStats struct {
	Hits    int
	Misses  int
	Entries int
	Bytes   int
}

// Cache keeps raw file bytes by asset path. Decoded assets can be released
// and rebuilt from these bytes without touching the disk again.
type Cache struct {
	mu    sync.Mutex
	data  map[string][]byte
	stats CacheStats
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item and records a hit or miss.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
	return data, ok
}

// Set stores an item, replacing any previous value.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if old, ok := c.data[key]; ok {
		c.stats.Bytes -= len(old)
	} else {
		c.stats.Entries++
	}
	c.data[key] = data
	c.stats.Bytes += len(data)
}

// Clear drops every item and resets the stats.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.stats = CacheStats{}
}

// Stats returns a snapshot of cache usage.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}
