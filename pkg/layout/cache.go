package layout

import (
	"fmt"
	"strings"
	"sync"
)

// maxCacheEntries bounds the split cache. Terminal resizes produce a new
// key per width, so the cache is dropped wholesale when it fills.
const maxCacheEntries = 256

// splitCache stores previously computed Split results so a grid that is
// re-rendered every frame does not redo the arithmetic.
// It is safe for concurrent use.
type splitCache struct {
	mu      sync.RWMutex
	entries map[string][]int
}

var splits = &splitCache{entries: make(map[string][]int)}

func splitKey(total, gap int, weights []int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d/%d", total, gap)
	for _, w := range weights {
		fmt.Fprintf(&b, ",%d", w)
	}
	return b.String()
}

// get returns a copy of a cached result, or nil.
func (c *splitCache) get(total, gap int, weights []int) []int {
	key := splitKey(total, gap, weights)
	c.mu.RLock()
	defer c.mu.RUnlock()
	parts, ok := c.entries[key]
	if !ok {
		return nil
	}
	cp := make([]int, len(parts))
	copy(cp, parts)
	return cp
}

func (c *splitCache) put(total, gap int, weights []int, parts []int) {
	key := splitKey(total, gap, weights)
	cp := make([]int, len(parts))
	copy(cp, parts)
	c.mu.Lock()
	if len(c.entries) >= maxCacheEntries {
		c.entries = make(map[string][]int)
	}
	c.entries[key] = cp
	c.mu.Unlock()
}

// len reports the number of cached entries.
func (c *splitCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// reset empties the cache.
func (c *splitCache) reset() {
	c.mu.Lock()
	c.entries = make(map[string][]int)
	c.mu.Unlock()
}
