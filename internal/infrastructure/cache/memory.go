package cache

import "sync"

// MemoryCache is an in-memory string cache that lives for one run.
// It has no expiry: entries are only dropped by Clear.
type MemoryCache struct {
	data  map[string]string
	hits  int
	miss  int
	mutex sync.RWMutex
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		data: make(map[string]string),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(key string) (string, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	value, exists := c.data[key]
	if exists {
		c.hits++
	} else {
		c.miss++
	}
	return value, exists
}

// Set stores a value in the cache
func (c *MemoryCache) Set(key, value string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = value
}

// Size returns the current number of items in the cache
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

// Stats returns the hit and miss counters
func (c *MemoryCache) Stats() (hits, misses int) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.hits, c.miss
}

// Clear removes all items from the cache
func (c *MemoryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.data = make(map[string]string)
	c.hits, c.miss = 0, 0
}
