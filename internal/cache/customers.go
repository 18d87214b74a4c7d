// Package cache provides a small TTL cache for the customer/account
// selector view, which is derived from a full distinct scan of the
// event store and changes only on ingest.
package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/touchline/touchline/pkg/types"
)

// Metrics holds cache statistics for observability.
type Metrics struct {
	Hits          atomic.Int64
	Misses        atomic.Int64
	Invalidations atomic.Int64
}

// LoadFunc produces the customer list on a cache miss.
type LoadFunc func(ctx context.Context) ([]types.Customer, error)

// CustomerView caches the grouped customer list. A fixed TTL bounds
// staleness for out-of-process ingest (the CLI loaders); in-process
// ingest invalidates explicitly through the notification bus.
type CustomerView struct {
	mu        sync.Mutex
	ttl       time.Duration
	customers []types.Customer
	loadedAt  time.Time
	valid     bool
	metrics   Metrics
}

// NewCustomerView creates a cache with the given TTL. A zero TTL
// disables time-based expiry; only Invalidate refreshes the view.
func NewCustomerView(ttl time.Duration) *CustomerView {
	return &CustomerView{ttl: ttl}
}

// Get returns the cached customer list, calling load on miss or expiry.
// Errors from load are returned without poisoning the cache.
func (c *CustomerView) Get(ctx context.Context, load LoadFunc) ([]types.Customer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && (c.ttl == 0 || time.Since(c.loadedAt) < c.ttl) {
		c.metrics.Hits.Add(1)
		return c.customers, nil
	}
	c.metrics.Misses.Add(1)

	customers, err := load(ctx)
	if err != nil {
		return nil, err
	}

	c.customers = customers
	c.loadedAt = time.Now()
	c.valid = true
	return customers, nil
}

// Invalidate discards the cached view so the next Get reloads.
func (c *CustomerView) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
	c.metrics.Invalidations.Add(1)
}

// Stats returns a point-in-time snapshot of the cache counters.
func (c *CustomerView) Stats() (hits, misses, invalidations int64) {
	return c.metrics.Hits.Load(), c.metrics.Misses.Load(), c.metrics.Invalidations.Load()
}
