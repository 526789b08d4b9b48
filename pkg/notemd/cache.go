package notemd

import "sync"

// Cache memoizes ParseBlocks results keyed by the exact source text.
// Parses are pure, so a hit is always valid; entries are evicted oldest
// first once the capacity is reached. Safe for concurrent use.
//
// Hosts typically keep one Cache per feed so that re-rendered notes (list
// scrolling, tab switches) skip reparsing.
type Cache struct {
	mu     sync.RWMutex
	max    int
	blocks map[string][]Block
	order  []string
}

// NewCache returns a Cache holding the results of up to max distinct
// source strings.
func NewCache(max int) *Cache {
	if max < 1 {
		max = 1
	}
	return &Cache{max: max, blocks: make(map[string][]Block)}
}

// Blocks returns the parsed blocks of src, parsing on the first request.
// Callers must not mutate the returned slice.
func (c *Cache) Blocks(src string) []Block {
	c.mu.RLock()
	blocks, ok := c.blocks[src]
	c.mu.RUnlock()
	if ok {
		return blocks
	}

	blocks = ParseBlocks(src)
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.blocks[src]; !ok {
		if len(c.order) >= c.max {
			delete(c.blocks, c.order[0])
			c.order = c.order[1:]
		}
		c.blocks[src] = blocks
		c.order = append(c.order, src)
	}
	return blocks
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.blocks)
}
