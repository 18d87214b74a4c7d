package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/touchline/touchline/pkg/types"
)

func countingLoader(calls *int, customers []types.Customer) LoadFunc {
	return func(ctx context.Context) ([]types.Customer, error) {
		*calls++
		return customers, nil
	}
}

func TestGetCachesUntilInvalidated(t *testing.T) {
	ctx := context.Background()
	view := NewCustomerView(0)

	want := []types.Customer{{CustomerOrgID: "acme", Accounts: []types.Account{{AccountID: "acct-1", DisplayName: "acct-1"}}}}

	calls := 0
	load := countingLoader(&calls, want)

	for i := 0; i < 3; i++ {
		got, err := view.Get(ctx, load)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if len(got) != 1 || got[0].CustomerOrgID != "acme" {
			t.Fatalf("unexpected customers: %+v", got)
		}
	}
	if calls != 1 {
		t.Errorf("expected 1 load, got %d", calls)
	}

	view.Invalidate()
	if _, err := view.Get(ctx, load); err != nil {
		t.Fatalf("Get after invalidate failed: %v", err)
	}
	if calls != 2 {
		t.Errorf("expected reload after invalidate, got %d loads", calls)
	}

	hits, misses, invalidations := view.Stats()
	if hits != 2 || misses != 2 || invalidations != 1 {
		t.Errorf("unexpected stats: hits=%d misses=%d invalidations=%d", hits, misses, invalidations)
	}
}

func TestTTLExpiry(t *testing.T) {
	ctx := context.Background()
	view := NewCustomerView(time.Millisecond)

	calls := 0
	load := countingLoader(&calls, nil)

	if _, err := view.Get(ctx, load); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := view.Get(ctx, load); err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if calls != 2 {
		t.Errorf("expected reload after TTL expiry, got %d loads", calls)
	}
}

func TestLoadErrorDoesNotPoisonCache(t *testing.T) {
	ctx := context.Background()
	view := NewCustomerView(0)

	boom := errors.New("database locked")
	failures := 0
	load := func(ctx context.Context) ([]types.Customer, error) {
		failures++
		if failures == 1 {
			return nil, boom
		}
		return []types.Customer{{CustomerOrgID: "acme"}}, nil
	}

	if _, err := view.Get(ctx, load); !errors.Is(err, boom) {
		t.Fatalf("expected load error, got %v", err)
	}

	got, err := view.Get(ctx, load)
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected customers after retry, got %+v", got)
	}
}
