// File: regex_test.go
// Title: Unit Tests for the Compiled Regex Cache
// Description: Tests hits, misses, eviction, error handling and concurrent
//              use of RegexCache.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test implementation

package cache

import (
	"fmt"
	"regexp"
	"sync"
	"testing"

	sherror "github.com/msto63/strhelp/foundation/core/error"
)

// cached reports whether pattern is held by c without touching statistics
func cached(c *RegexCache, pattern string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.items[pattern]
	return ok
}

// mustCompile fails the test when pattern does not compile
func mustCompile(t *testing.T, c *RegexCache, pattern string) *regexp.Regexp {
	t.Helper()
	re, err := c.Compile(pattern)
	if err != nil {
		t.Fatalf("Compile(%q) error = %v", pattern, err)
	}
	return re
}

func TestCompileHitAndMiss(t *testing.T) {
	c := NewRegexCache(Config{MaxItems: 4})

	first, err := c.Compile("ss$")
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	second, err := c.Compile("ss$")
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if first != second {
		t.Error("second Compile should return the cached instance")
	}

	hits, misses, rate := c.Stats()
	if hits != 1 || misses != 1 || rate != 0.5 {
		t.Errorf("Stats() = %d, %d, %v; want 1, 1, 0.5", hits, misses, rate)
	}
}

func TestCompileUsesPOSIXSemantics(t *testing.T) {
	c := NewRegexCache(DefaultConfig())
	re := mustCompile(t, c, "a|ab")

	// leftmost-longest picks "ab", Perl semantics would pick "a"
	if got := re.FindString("xab"); got != "ab" {
		t.Errorf("FindString() = %q; want %q", got, "ab")
	}
}

func TestCompileInvalidPattern(t *testing.T) {
	c := NewRegexCache(DefaultConfig())

	_, err := c.Compile("(unclosed")
	if err == nil {
		t.Fatal("Compile() should fail for invalid pattern")
	}
	if !sherror.HasCode(err, sherror.CodeInvalidPattern) {
		t.Errorf("error code = %v; want %v", sherror.GetCode(err), sherror.CodeInvalidPattern)
	}
	if cached(c, "(unclosed") {
		t.Error("invalid pattern must not be cached")
	}
}

func TestEvictOldest(t *testing.T) {
	c := NewRegexCache(Config{MaxItems: 2})

	mustCompile(t, c, "a")
	mustCompile(t, c, "b")
	mustCompile(t, c, "c")

	if c.Size() != 2 {
		t.Fatalf("Size() = %d; want 2", c.Size())
	}
	if cached(c, "a") {
		t.Error("oldest pattern should have been evicted")
	}
	if !cached(c, "b") || !cached(c, "c") {
		t.Error("newer patterns should remain cached")
	}

	c.Clear()
	if c.Size() != 0 {
		t.Errorf("Size() after Clear = %d", c.Size())
	}
}

func TestResize(t *testing.T) {
	c := NewRegexCache(Config{MaxItems: 4})
	for _, p := range []string{"a", "b", "c", "d"} {
		mustCompile(t, c, p)
	}

	c.Resize(2)
	if c.Size() != 2 {
		t.Fatalf("Size() after Resize(2) = %d", c.Size())
	}
	if cached(c, "a") || !cached(c, "d") {
		t.Error("Resize should evict the oldest patterns first")
	}

	c.Resize(0)
	for i := 0; i < 10; i++ {
		mustCompile(t, c, fmt.Sprintf("x%d", i))
	}
	if c.Size() != 12 {
		t.Errorf("Size() = %d; want 12 after restoring the default capacity", c.Size())
	}
}

func TestEvictionBoundsOrder(t *testing.T) {
	c := NewRegexCache(Config{MaxItems: 2})

	for i := 0; i < 1000; i++ {
		mustCompile(t, c, fmt.Sprintf("p%d", i))

		c.mu.RLock()
		live := len(c.order) - c.head
		total := len(c.order)
		c.mu.RUnlock()

		if live != c.Size() {
			t.Fatalf("after %d inserts: %d live order entries for %d cached patterns", i+1, live, c.Size())
		}
		if total > 2*c.maxItems {
			t.Fatalf("after %d inserts: order holds %d slots; want at most %d", i+1, total, 2*c.maxItems)
		}
	}

	if !cached(c, "p998") || !cached(c, "p999") || cached(c, "p997") {
		t.Error("the two newest patterns should remain cached")
	}

	c.Resize(1)
	if !cached(c, "p999") || cached(c, "p998") {
		t.Error("Resize(1) should keep only the newest pattern")
	}
}

func TestConcurrentCompile(t *testing.T) {
	c := NewRegexCache(Config{MaxItems: 8})
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := c.Compile(fmt.Sprintf("x%d$", i%4)); err != nil {
				t.Errorf("Compile() error = %v", err)
			}
		}(i)
	}
	wg.Wait()

	if c.Size() != 4 {
		t.Errorf("Size() = %d; want 4", c.Size())
	}
}
