package store

import (
	"slices"
	"sync"
	"time"
)

// tableCache holds the last decoded table. ttl <= 0 means entries live
// until invalidated. gen advances on every invalidation so a load that
// started before a file change cannot store its stale result.
type tableCache[T any] struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	gen      uint64
	rows     []T
	loadedAt time.Time
	valid    bool
}

func newTableCache[T any](ttl time.Duration, now func() time.Time) *tableCache[T] {
	return &tableCache[T]{ttl: ttl, now: now}
}

// get returns a copy of the cached rows and the current generation.
func (c *tableCache[T]) get() ([]T, uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid {
		return nil, c.gen, false
	}
	if c.ttl > 0 && c.now().Sub(c.loadedAt) >= c.ttl {
		c.valid = false
		c.rows = nil
		return nil, c.gen, false
	}
	return slices.Clone(c.rows), c.gen, true
}

// put stores rows loaded during generation gen.
func (c *tableCache[T]) put(gen uint64, rows []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.rows = slices.Clone(rows)
	c.loadedAt = c.now()
	c.valid = true
}

func (c *tableCache[T]) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.valid = false
	c.rows = nil
}

// replace stores rows the caller has just written to disk.
func (c *tableCache[T]) replace(rows []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rows = slices.Clone(rows)
	c.loadedAt = c.now()
	c.valid = true
}
