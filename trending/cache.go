package trending

import (
	"sync/atomic"

	"github.com/tastory/tastory/core"
)

// Cache holds the published trending snapshot behind an atomic pointer.
// Readers always see a complete snapshot from a single aggregation run,
// never a mix of two runs. Current returns nil until the first Publish.
type Cache struct {
	current atomic.Pointer[core.TrendingSnapshot]
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Publish atomically replaces the current snapshot. Readers holding the
// previous snapshot keep it.
func (c *Cache) Publish(snapshot *core.TrendingSnapshot) {
	c.current.Store(snapshot)
}

// Current returns the most recently published snapshot, or nil if none
// has been published yet.
func (c *Cache) Current() *core.TrendingSnapshot {
	return c.current.Load()
}
