// File: regex.go
// Title: Compiled Regular Expression Cache
// Description: Bounded, thread-safe cache of POSIX ERE patterns compiled with
//              regexp.CompilePOSIX. Used by the strhelp regex helpers so that
//              repeatedly applied patterns (plural rules, format validators)
//              are compiled once.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package cache

import (
	"regexp"
	"sync"

	sherror "github.com/msto63/strhelp/foundation/core/error"
)

// Config holds cache configuration
type Config struct {
	MaxItems int
}

// DefaultConfig returns default cache configuration
func DefaultConfig() Config {
	return Config{MaxItems: 512}
}

// RegexCache maps pattern text to its compiled form
type RegexCache struct {
	mu       sync.RWMutex
	items    map[string]*regexp.Regexp
	order    []string // insertion order; live entries start at head
	head     int
	maxItems int

	hits   int64
	misses int64
}

// NewRegexCache creates a new cache instance
func NewRegexCache(cfg Config) *RegexCache {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = DefaultConfig().MaxItems
	}

	return &RegexCache{
		items:    make(map[string]*regexp.Regexp),
		maxItems: cfg.MaxItems,
	}
}

// Compile returns the compiled form of pattern, compiling it with POSIX ERE
// semantics on a miss. Compile errors are returned with CodeInvalidPattern
// and are not cached.
func (c *RegexCache) Compile(pattern string) (*regexp.Regexp, error) {
	c.mu.RLock()
	re, ok := c.items[pattern]
	c.mu.RUnlock()

	if ok {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
		return re, nil
	}

	re, err := regexp.CompilePOSIX(pattern)
	if err != nil {
		c.mu.Lock()
		c.misses++
		c.mu.Unlock()
		return nil, sherror.Wrap(err, "invalid regular expression").
			WithCode(sherror.CodeInvalidPattern).
			WithOperation("cache.Compile").
			WithDetail("pattern", pattern)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.misses++

	// another goroutine may have stored it meanwhile
	if existing, ok := c.items[pattern]; ok {
		return existing, nil
	}

	if len(c.items) >= c.maxItems {
		c.evictOldest()
	}
	c.items[pattern] = re
	c.order = append(c.order, pattern)

	return re, nil
}

// Clear removes all entries and resets statistics
func (c *RegexCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*regexp.Regexp)
	c.order = nil
	c.head = 0
	c.hits = 0
	c.misses = 0
}

// Size returns the number of cached patterns
func (c *RegexCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stats returns cache statistics
func (c *RegexCache) Stats() (hits, misses int64, hitRate float64) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.hits + c.misses
	if total > 0 {
		hitRate = float64(c.hits) / float64(total)
	}
	return c.hits, c.misses, hitRate
}

// Resize changes the capacity, evicting the oldest entries if the cache
// holds more than maxItems. Non-positive values restore the default.
func (c *RegexCache) Resize(maxItems int) {
	if maxItems <= 0 {
		maxItems = DefaultConfig().MaxItems
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.maxItems = maxItems
	for len(c.items) > c.maxItems {
		c.evictOldest()
	}
}

// evictOldest drops the oldest inserted pattern. Caller holds c.mu.
//
// Evicted slots are cleared and the live tail is moved to the front once it
// occupies less than half of order, so order stays within twice the number
// of cached patterns.
func (c *RegexCache) evictOldest() {
	if c.head >= len(c.order) {
		return
	}
	oldest := c.order[c.head]
	c.order[c.head] = ""
	c.head++
	delete(c.items, oldest)

	if c.head*2 >= len(c.order) {
		n := copy(c.order, c.order[c.head:])
		clear(c.order[n:])
		c.order = c.order[:n]
		c.head = 0
	}
}

var defaultRegexCache = NewRegexCache(DefaultConfig())

// Default returns the process-wide regex cache
func Default() *RegexCache {
	return defaultRegexCache
}
