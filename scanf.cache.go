package scanf

import (
	"sync"
)

// PatternCache memoizes compiled patterns per (value kind, format).
// It is bounded: inserting beyond capacity evicts the oldest entry
// first (deterministic FIFO, observable through Stats). All methods
// are safe for concurrent use.
type PatternCache struct {
	mu        sync.RWMutex
	entries   map[patternKey]*Pattern
	evictList []patternKey // insertion order
	capacity  int
	stats     PatternCacheStats
}

// patternKey keeps text and byte formats apart even when they render
// identically.
type patternKey struct {
	kind   ValueKind
	format string
}

// PatternCacheStats tracks cache behavior. Compiles counts actual
// compilations, so tests can observe that a purge forces a recompile.
type PatternCacheStats struct {
	Hits       int64
	Misses     int64
	Evictions  int64
	Compiles   int64
	EntryCount int
}

// NewPatternCache creates a bounded pattern cache.
func NewPatternCache(capacity int) *PatternCache {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	return &PatternCache{
		entries:   make(map[patternKey]*Pattern),
		evictList: make([]patternKey, 0, capacity),
		capacity:  capacity,
	}
}

// Capacity returns the configured maximum entry count.
func (c *PatternCache) Capacity() int {
	return c.capacity
}

// Len returns the current entry count.
func (c *PatternCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// get returns the cached pattern for the key, if present.
func (c *PatternCache) get(kind ValueKind, format string) (*Pattern, bool) {
	key := patternKey{kind: kind, format: format}

	c.mu.RLock()
	p, ok := c.entries[key]
	c.mu.RUnlock()

	c.mu.Lock()
	if ok {
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
	c.mu.Unlock()

	return p, ok
}

// getOrCompile returns the cached pattern for the key, compiling and
// inserting on a miss. Two callers racing on the same new format may
// both compile; the insert is last-wins and both patterns are
// equivalent, so the race is benign.
func (c *PatternCache) getOrCompile(kind ValueKind, format string, compile func() (*Pattern, error)) (*Pattern, error) {
	if p, ok := c.get(kind, format); ok {
		return p, nil
	}

	p, err := compile()
	if err != nil {
		return nil, err
	}

	key := patternKey{kind: kind, format: format}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.Compiles++
	if _, exists := c.entries[key]; exists {
		// Lost the race; keep the existing entry's slot.
		c.entries[key] = p
		return p, nil
	}
	if len(c.entries) >= c.capacity {
		c.evictOldest()
	}
	c.entries[key] = p
	c.evictList = append(c.evictList, key)
	c.stats.EntryCount = len(c.entries)
	return p, nil
}

// evictOldest removes the oldest inserted entry. Caller holds mu.
func (c *PatternCache) evictOldest() {
	for len(c.evictList) > 0 {
		oldest := c.evictList[0]
		c.evictList = c.evictList[1:]
		if _, ok := c.entries[oldest]; ok {
			delete(c.entries, oldest)
			c.stats.Evictions++
			return
		}
	}
}

// Purge removes all entries. Stats counters are kept so a recompile
// after a purge stays observable.
func (c *PatternCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[patternKey]*Pattern)
	c.evictList = c.evictList[:0]
	c.stats.EntryCount = 0
}

// Stats returns a snapshot of the cache counters.
func (c *PatternCache) Stats() PatternCacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// HitRate returns the cache hit rate (0.0 to 1.0).
func (c *PatternCache) HitRate() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.stats.Hits + c.stats.Misses
	if total == 0 {
		return 0
	}
	return float64(c.stats.Hits) / float64(total)
}
