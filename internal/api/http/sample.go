package http

import (
	"fmt"
	"net/http"

	"github.com/touchline/touchline/internal/store"
	"github.com/touchline/touchline/pkg/types"
)

// Sampling endpoints kept for the dashboard's data-exploration views.
// Both return a bare JSON array.

// RandomEventsHandler handles GET /api/events/random requests.
type RandomEventsHandler struct {
	store *store.Store
}

// NewRandomEventsHandler creates a new random-events handler.
func NewRandomEventsHandler(st *store.Store) *RandomEventsHandler {
	return &RandomEventsHandler{store: st}
}

// ServeHTTP handles the random-events HTTP request.
func (h *RandomEventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := GetRequestID(r.Context())

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", requestID)
		return
	}

	customerOrgID, accountID, ok := requireAccountParams(w, r, requestID)
	if !ok {
		return
	}

	events, err := h.store.RandomEvents(r.Context(), customerOrgID, accountID, 10)
	if err != nil {
		writeError(w, http.StatusInternalServerError,
			fmt.Sprintf("failed to sample events: %v", err), requestID)
		return
	}
	if events == nil {
		events = []types.ActivityEvent{}
	}

	writeJSON(w, http.StatusOK, events)
}

// RandomPersonsHandler handles GET /api/people/random requests.
type RandomPersonsHandler struct {
	store *store.Store
}

// NewRandomPersonsHandler creates a new random-persons handler.
func NewRandomPersonsHandler(st *store.Store) *RandomPersonsHandler {
	return &RandomPersonsHandler{store: st}
}

// ServeHTTP handles the random-persons HTTP request.
func (h *RandomPersonsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := GetRequestID(r.Context())

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", requestID)
		return
	}

	customerOrgID := r.URL.Query().Get("customer_org_id")
	if customerOrgID == "" {
		writeError(w, http.StatusBadRequest,
			"'customer_org_id' query parameter is required.", requestID)
		return
	}

	persons, err := h.store.RandomPersons(r.Context(), customerOrgID, 5)
	if err != nil {
		writeError(w, http.StatusInternalServerError,
			fmt.Sprintf("failed to sample persons: %v", err), requestID)
		return
	}
	if persons == nil {
		persons = []types.Person{}
	}

	writeJSON(w, http.StatusOK, persons)
}
