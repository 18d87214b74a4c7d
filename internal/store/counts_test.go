package store

import (
	"context"
	"testing"
	"time"

	"github.com/touchline/touchline/pkg/types"
)

func TestDailyCounts(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	mk := func(tp string, ts time.Time, direction string) types.ActivityEvent {
		ev := makeEvent(tp, ts)
		ev.Direction = direction
		return ev
	}

	if _, _, err := st.InsertEvents(ctx, []types.ActivityEvent{
		mk("tp-1", time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC), "IN"),
		mk("tp-2", time.Date(2024, 3, 4, 23, 59, 0, 0, time.UTC), "IN"),
		mk("tp-3", time.Date(2024, 3, 6, 1, 0, 0, 0, time.UTC), "IN"),
		mk("tp-4", time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC), "OUT"),
	}); err != nil {
		t.Fatalf("InsertEvents failed: %v", err)
	}

	counts, err := st.DailyCounts(ctx, "org-1", "acct-1", "IN")
	if err != nil {
		t.Fatalf("DailyCounts failed: %v", err)
	}

	want := []types.DailyCount{
		{Date: "2024-03-04", Count: 2},
		{Date: "2024-03-06", Count: 1},
	}
	if len(counts) != len(want) {
		t.Fatalf("expected %d days, got %d: %v", len(want), len(counts), counts)
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("day %d: got %+v, want %+v", i, counts[i], want[i])
		}
	}

	out, err := st.DailyCounts(ctx, "org-1", "acct-1", "OUT")
	if err != nil {
		t.Fatalf("DailyCounts failed: %v", err)
	}
	if len(out) != 1 || out[0].Count != 1 {
		t.Errorf("unexpected OUT counts: %v", out)
	}
}

func TestDailyCounts_BucketsByUTCDate(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	// 23:30 UTC on the 4th and 00:30 UTC on the 5th land on different
	// days even though they are an hour apart.
	if _, _, err := st.InsertEvents(ctx, []types.ActivityEvent{
		makeEvent("tp-1", time.Date(2024, 3, 4, 23, 30, 0, 0, time.UTC)),
		makeEvent("tp-2", time.Date(2024, 3, 5, 0, 30, 0, 0, time.UTC)),
	}); err != nil {
		t.Fatalf("InsertEvents failed: %v", err)
	}

	counts, err := st.DailyCounts(ctx, "org-1", "acct-1", "IN")
	if err != nil {
		t.Fatalf("DailyCounts failed: %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("expected 2 days, got %v", counts)
	}
	if counts[0].Date != "2024-03-04" || counts[1].Date != "2024-03-05" {
		t.Errorf("unexpected dates: %v", counts)
	}
}

func TestDailyCounts_Empty(t *testing.T) {
	st := newTestStore(t)

	counts, err := st.DailyCounts(context.Background(), "org-x", "acct-x", "IN")
	if err != nil {
		t.Fatalf("DailyCounts failed: %v", err)
	}
	if len(counts) != 0 {
		t.Errorf("expected empty counts, got %v", counts)
	}
}
