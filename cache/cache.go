// Package cache memoizes truth tables and records run history. Enumerating
// 2^n rows for the same expression over and over is wasted work for callers
// that evaluate repeatedly, so tables are cached both in memory and, when a
// database path is configured, in SQLite.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/rfaulhaber/ttt/eval"
	"github.com/rfaulhaber/ttt/expr"
)

// Key returns the deterministic cache key for an expression: the sha256 of
// its canonical rendering, hex encoded. Structurally equal expressions render
// identically, so they share a key regardless of the source spelling.
func Key(e expr.Expr) string {
	sum := sha256.Sum256([]byte(e.String()))
	return hex.EncodeToString(sum[:])
}

// TableCache is an in-memory truth table cache keyed by expression hash.
type TableCache struct {
	mu      sync.Mutex
	tables  map[string]*eval.TruthTable
	maxSize int
	hits    int64
	misses  int64
}

// NewTableCache creates a cache with the specified maximum size.
// When the cache is full, an arbitrary entry is evicted.
// Set maxSize to 0 for an unlimited cache.
func NewTableCache(maxSize int) *TableCache {
	return &TableCache{
		tables:  make(map[string]*eval.TruthTable),
		maxSize: maxSize,
	}
}

// Get retrieves a cached table for the given expression.
// Returns nil if not found.
func (c *TableCache) Get(e expr.Expr) *eval.TruthTable {
	key := Key(e)

	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.tables[key]; ok {
		c.hits++
		return t
	}
	c.misses++
	return nil
}

// Put stores a table in the cache.
func (c *TableCache) Put(e expr.Expr, t *eval.TruthTable) {
	key := Key(e)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxSize > 0 && len(c.tables) >= c.maxSize {
		for k := range c.tables {
			delete(c.tables, k)
			break
		}
	}
	c.tables[key] = t
}

// GetOrCompute retrieves from the cache or computes and caches the table.
func (c *TableCache) GetOrCompute(e expr.Expr, compute func() (*eval.TruthTable, error)) (*eval.TruthTable, error) {
	if t := c.Get(e); t != nil {
		return t, nil
	}
	t, err := compute()
	if err != nil {
		return nil, err
	}
	c.Put(e, t)
	return t, nil
}

// Size returns the current number of cached entries.
func (c *TableCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tables)
}

// Clear removes all entries from the cache.
func (c *TableCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tables = make(map[string]*eval.TruthTable)
}

// Stats reports cache effectiveness.
type Stats struct {
	Size    int
	MaxSize int
	Hits    int64
	Misses  int64
	HitRate float64
}

// Stats returns cache statistics.
func (c *TableCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := c.hits + c.misses
	hitRate := 0.0
	if total > 0 {
		hitRate = float64(c.hits) / float64(total)
	}
	return Stats{
		Size:    len(c.tables),
		MaxSize: c.maxSize,
		Hits:    c.hits,
		Misses:  c.misses,
		HitRate: hitRate,
	}
}
