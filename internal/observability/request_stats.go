// Package observability provides request statistics tracking for the
// dashboard API.
package observability

import (
	"sort"
	"sync"
	"time"
)

// RequestStats tracks per-route request volume and latency, and which
// accounts the dashboard is hitting. Used by the /api/stats endpoint.
type RequestStats struct {
	mu       sync.RWMutex
	routes   map[string]*RouteStats
	accounts map[string]*AccountStats
	window   time.Duration
	started  time.Time
}

// RouteStats holds statistics for one API route.
type RouteStats struct {
	Route      string        `json:"route"`
	Requests   int64         `json:"requests"`
	Errors     int64         `json:"errors"`
	TotalMs    int64         `json:"total_ms"`
	MaxMs      int64         `json:"max_ms"`
	LastSeen   time.Time     `json:"last_seen"`
	StatusFreq map[int]int64 `json:"-"`
}

// AccountStats holds access statistics for one customer account.
type AccountStats struct {
	CustomerOrgID string    `json:"customer_org_id"`
	AccountID     string    `json:"account_id"`
	Requests      int64     `json:"requests"`
	LastSeen      time.Time `json:"last_seen"`
}

// NewRequestStats creates a new request statistics tracker.
// window: time duration for pruning stale entries (e.g., 1 hour)
func NewRequestStats(window time.Duration) *RequestStats {
	return &RequestStats{
		routes:   make(map[string]*RouteStats),
		accounts: make(map[string]*AccountStats),
		window:   window,
		started:  time.Now(),
	}
}

// RecordRequest records one completed request against a route.
// This method is O(1) and thread-safe.
func (rs *RequestStats) RecordRequest(route string, status int, elapsed time.Duration) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	stats, exists := rs.routes[route]
	if !exists {
		stats = &RouteStats{
			Route:      route,
			StatusFreq: make(map[int]int64),
		}
		rs.routes[route] = stats
	}

	ms := elapsed.Milliseconds()
	stats.Requests++
	stats.TotalMs += ms
	if ms > stats.MaxMs {
		stats.MaxMs = ms
	}
	if status >= 400 {
		stats.Errors++
	}
	stats.StatusFreq[status]++
	stats.LastSeen = time.Now()
}

// RecordAccount records a lookup against one customer account.
func (rs *RequestStats) RecordAccount(customerOrgID, accountID string) {
	if customerOrgID == "" || accountID == "" {
		return
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	key := customerOrgID + "\x00" + accountID
	stats, exists := rs.accounts[key]
	if !exists {
		stats = &AccountStats{
			CustomerOrgID: customerOrgID,
			AccountID:     accountID,
		}
		rs.accounts[key] = stats
	}

	stats.Requests++
	stats.LastSeen = time.Now()
}

// Routes returns a copy of all route stats sorted by request count
// (descending).
func (rs *RequestStats) Routes() []RouteStats {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	out := make([]RouteStats, 0, len(rs.routes))
	for _, s := range rs.routes {
		out = append(out, RouteStats{
			Route:    s.Route,
			Requests: s.Requests,
			Errors:   s.Errors,
			TotalMs:  s.TotalMs,
			MaxMs:    s.MaxMs,
			LastSeen: s.LastSeen,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Requests > out[j].Requests
	})
	return out
}

// TopAccounts returns the top N accounts by request count.
func (rs *RequestStats) TopAccounts(n int) []AccountStats {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	if n <= 0 || len(rs.accounts) == 0 {
		return []AccountStats{}
	}

	out := make([]AccountStats, 0, len(rs.accounts))
	for _, s := range rs.accounts {
		out = append(out, *s)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Requests > out[j].Requests
	})

	if n > len(out) {
		n = len(out)
	}
	return out[:n]
}

// Uptime returns how long the tracker has been running.
func (rs *RequestStats) Uptime() time.Duration {
	return time.Since(rs.started)
}

// Prune removes entries where time.Since(LastSeen) > window.
// This should be called periodically (e.g., every 5 minutes).
func (rs *RequestStats) Prune() {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	threshold := time.Now().Add(-rs.window)

	for route, stats := range rs.routes {
		if stats.LastSeen.Before(threshold) {
			delete(rs.routes, route)
		}
	}
	for key, stats := range rs.accounts {
		if stats.LastSeen.Before(threshold) {
			delete(rs.accounts, key)
		}
	}
}
