package store

import (
	"fmt"
	"sync"
)

// cacheCapacity bounds the number of memoized derivations. Past the bound
// the oldest entry is evicted.
const cacheCapacity = 128

// opCache memoizes expensive read-only derivations (statistics, the
// enabled-rules view) keyed by operation name and arguments. The whole
// cache is dropped on every collection write so reads always reflect the
// latest committed state.
type opCache struct {
	mu      sync.Mutex
	entries map[string]any
	order   []string
}

func newOpCache() *opCache {
	return &opCache{
		entries: make(map[string]any, cacheCapacity),
		order:   make([]string, 0, cacheCapacity),
	}
}

// key builds the cache key from an operation name and its arguments.
func (c *opCache) key(op string, args ...any) string {
	if len(args) == 0 {
		return op
	}
	return fmt.Sprintf("%s|%v", op, args)
}

func (c *opCache) get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, ok := c.entries[key]
	return value, ok
}

func (c *opCache) put(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		if len(c.order) >= cacheCapacity {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, key)
	}

	c.entries[key] = value
}

func (c *opCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]any, cacheCapacity)
	c.order = c.order[:0]
}

func (c *opCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
