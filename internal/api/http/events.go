package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/touchline/touchline/internal/store"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

// EventsHandler handles GET /api/events requests: one page of an
// account's activity timeline, oldest first.
type EventsHandler struct {
	store *store.Store
}

// NewEventsHandler creates a new events handler.
func NewEventsHandler(st *store.Store) *EventsHandler {
	return &EventsHandler{store: st}
}

// ServeHTTP handles the events HTTP request.
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := GetRequestID(r.Context())

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", requestID)
		return
	}

	customerOrgID, accountID, ok := requireAccountParams(w, r, requestID)
	if !ok {
		return
	}

	filter := store.EventFilter{
		CustomerOrgID: customerOrgID,
		AccountID:     accountID,
		Page:          1,
		PageSize:      defaultPageSize,
	}

	q := r.URL.Query()
	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			writeError(w, http.StatusBadRequest, "invalid page", requestID)
			return
		}
		filter.Page = page
	}
	if v := q.Get("page_size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size < 1 || size > maxPageSize {
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("invalid page_size; must be 1-%d", maxPageSize), requestID)
			return
		}
		filter.PageSize = size
	}
	if v := q.Get("start_date"); v != "" {
		t, err := parseISODate(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid start_date format", requestID)
			return
		}
		filter.Start = &t
	}
	if v := q.Get("end_date"); v != "" {
		t, err := parseISODate(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid end_date format", requestID)
			return
		}
		filter.End = &t
	}

	page, err := h.store.ListEvents(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError,
			fmt.Sprintf("failed to list events: %v", err), requestID)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// requireAccountParams extracts the mandatory customer_org_id and
// account_id parameters, writing a 400 response when either is absent.
func requireAccountParams(w http.ResponseWriter, r *http.Request, requestID string) (string, string, bool) {
	customerOrgID := r.URL.Query().Get("customer_org_id")
	accountID := r.URL.Query().Get("account_id")
	if customerOrgID == "" || accountID == "" {
		writeError(w, http.StatusBadRequest,
			"Both 'customer_org_id' and 'account_id' query parameters are required.", requestID)
		return "", "", false
	}
	return customerOrgID, accountID, true
}

// parseISODate accepts an ISO-8601 timestamp or bare date. A trailing
// Z or numeric offset is honored; naive values are taken as UTC.
func parseISODate(s string) (time.Time, error) {
	layouts := []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999999",
		"2006-01-02",
	}
	if strings.Contains(s, " ") {
		s = strings.Replace(s, " ", "T", 1)
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
