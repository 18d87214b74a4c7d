package http

import (
	"net/http"
	"time"

	"github.com/touchline/touchline/internal/observability"
)

// StatsResponse is the payload of GET /api/stats.
type StatsResponse struct {
	UptimeSeconds int64                        `json:"uptime_seconds"`
	Routes        []observability.RouteStats   `json:"routes"`
	TopAccounts   []observability.AccountStats `json:"top_accounts"`
	RequestID     string                       `json:"request_id"`
}

// StatsHandler handles GET /api/stats requests.
type StatsHandler struct {
	stats *observability.RequestStats
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(stats *observability.RequestStats) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// ServeHTTP handles the stats HTTP request.
func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := GetRequestID(r.Context())

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", requestID)
		return
	}

	writeJSON(w, http.StatusOK, StatsResponse{
		UptimeSeconds: int64(h.stats.Uptime().Seconds()),
		Routes:        h.stats.Routes(),
		TopAccounts:   h.stats.TopAccounts(10),
		RequestID:     requestID,
	})
}

// HealthHandler handles GET /health requests.
func HealthHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

// statusRecorder captures the response status code for stats tracking.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

// StatsMiddleware records request volume, latency, and account access
// for every API route.
func StatsMiddleware(stats *observability.RequestStats) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			stats.RecordRequest(r.URL.Path, rec.status, time.Since(start))
			stats.RecordAccount(
				r.URL.Query().Get("customer_org_id"),
				r.URL.Query().Get("account_id"),
			)
		})
	}
}
