package http

import (
	"fmt"
	"net/http"

	"github.com/touchline/touchline/internal/store"
	"github.com/touchline/touchline/pkg/types"
)

// FirstTouchpointsResponse lists the earliest inbound contact per person.
type FirstTouchpointsResponse struct {
	FirstTouchpoints []types.FirstTouchpoint `json:"first_touchpoints"`
}

// FirstTouchpointsHandler handles GET /api/events/first-touchpoints requests.
type FirstTouchpointsHandler struct {
	store *store.Store
}

// NewFirstTouchpointsHandler creates a new first-touchpoints handler.
func NewFirstTouchpointsHandler(st *store.Store) *FirstTouchpointsHandler {
	return &FirstTouchpointsHandler{store: st}
}

// ServeHTTP handles the first-touchpoints HTTP request.
func (h *FirstTouchpointsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := GetRequestID(r.Context())

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", requestID)
		return
	}

	customerOrgID, accountID, ok := requireAccountParams(w, r, requestID)
	if !ok {
		return
	}

	touchpoints, err := h.store.FirstTouchpoints(r.Context(), customerOrgID, accountID)
	if err != nil {
		writeError(w, http.StatusInternalServerError,
			fmt.Sprintf("failed to load first touchpoints: %v", err), requestID)
		return
	}
	if touchpoints == nil {
		touchpoints = []types.FirstTouchpoint{}
	}

	writeJSON(w, http.StatusOK, FirstTouchpointsResponse{FirstTouchpoints: touchpoints})
}
