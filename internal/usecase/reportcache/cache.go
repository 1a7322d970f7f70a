package reportcache

import (
	"sync"
	"time"

	"pricewatch/internal/usecase/queries"
)

// Cache holds the last successfully computed bulk discount report so the
// hot endpoint does not rescan every history on each request. The engine
// itself stays stateless; this is purely a serving-side optimization.
type Cache struct {
	mu          sync.RWMutex
	rows        []*queries.DiscountRow
	refreshedAt time.Time
	ttl         time.Duration
}

func New(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl}
}

// Get returns the cached report while it is still fresh. A cache that was
// never filled always misses.
func (c *Cache) Get(now time.Time) ([]*queries.DiscountRow, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.refreshedAt.IsZero() || now.Sub(c.refreshedAt) > c.ttl {
		return nil, false
	}
	return c.rows, true
}

func (c *Cache) Put(rows []*queries.DiscountRow, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rows = rows
	c.refreshedAt = now
}

func (c *Cache) RefreshedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.refreshedAt
}
