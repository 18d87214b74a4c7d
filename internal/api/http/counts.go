package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/touchline/touchline/internal/store"
	"github.com/touchline/touchline/pkg/types"
)

// CountsResponse represents the activity-count response consumed by
// the dashboard minimap.
type CountsResponse struct {
	DailyCounts []types.DailyCount `json:"daily_counts"`
	Direction   string             `json:"direction"`
	Bucket      string             `json:"bucket"`
}

// CountsHandler handles GET /api/events/counts requests: per-period
// activity volume for one account.
type CountsHandler struct {
	store *store.Store
}

// NewCountsHandler creates a new counts handler.
func NewCountsHandler(st *store.Store) *CountsHandler {
	return &CountsHandler{store: st}
}

// ServeHTTP handles the counts HTTP request.
func (h *CountsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := GetRequestID(r.Context())

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", requestID)
		return
	}

	customerOrgID, accountID, ok := requireAccountParams(w, r, requestID)
	if !ok {
		return
	}

	direction := r.URL.Query().Get("direction")
	if direction == "" {
		direction = types.DirectionIn
	}

	bucket := r.URL.Query().Get("bucket")
	if bucket == "" {
		bucket = "day"
	}
	switch bucket {
	case "day", "week", "month", "quarter":
	default:
		writeError(w, http.StatusBadRequest,
			"invalid bucket; must be one of day, week, month, quarter", requestID)
		return
	}

	counts, err := h.store.DailyCounts(r.Context(), customerOrgID, accountID, direction)
	if err != nil {
		writeError(w, http.StatusInternalServerError,
			fmt.Sprintf("failed to count events: %v", err), requestID)
		return
	}

	rolled, err := rollupCounts(counts, bucket)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error(), requestID)
		return
	}

	writeJSON(w, http.StatusOK, CountsResponse{
		DailyCounts: rolled,
		Direction:   direction,
		Bucket:      bucket,
	})
}

// rollupCounts aggregates per-day counts into coarser periods. Each
// output date is the first day of its period: Monday for weeks, the
// first of the month, or the first day of the quarter. Input is
// already sorted ascending, which the rollup preserves.
func rollupCounts(daily []types.DailyCount, bucket string) ([]types.DailyCount, error) {
	if bucket == "day" {
		if daily == nil {
			daily = []types.DailyCount{}
		}
		return daily, nil
	}

	out := []types.DailyCount{}
	for _, dc := range daily {
		day, err := time.ParseInLocation("2006-01-02", dc.Date, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("malformed count date %q", dc.Date)
		}

		start := periodStart(day, bucket)
		key := start.Format("2006-01-02")
		if n := len(out); n > 0 && out[n-1].Date == key {
			out[n-1].Count += dc.Count
		} else {
			out = append(out, types.DailyCount{Date: key, Count: dc.Count})
		}
	}
	return out, nil
}

// periodStart returns the first day of the period containing day.
func periodStart(day time.Time, bucket string) time.Time {
	switch bucket {
	case "week":
		// Monday-based weeks.
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case "month":
		return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	case "quarter":
		quarterMonth := ((int(day.Month())-1)/3)*3 + 1
		return time.Date(day.Year(), time.Month(quarterMonth), 1, 0, 0, 0, 0, time.UTC)
	default:
		return day
	}
}
