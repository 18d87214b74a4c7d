package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/touchline/touchline/internal/cache"
	"github.com/touchline/touchline/internal/store"
	"github.com/touchline/touchline/pkg/types"
)

// customersTTL bounds staleness of the selector view when events are
// loaded by an external process.
const customersTTL = 30 * time.Second

// CustomersResponse lists the customer organizations present in the
// store together with their accounts.
type CustomersResponse struct {
	Customers []types.Customer `json:"customers"`
}

// CustomersHandler handles GET /api/customers requests.
type CustomersHandler struct {
	store *store.Store
	view  *cache.CustomerView
}

// NewCustomersHandler creates a new customers handler.
func NewCustomersHandler(st *store.Store) *CustomersHandler {
	return &CustomersHandler{
		store: st,
		view:  cache.NewCustomerView(customersTTL),
	}
}

// Invalidate discards the cached customer view. Called when new events
// are ingested in-process.
func (h *CustomersHandler) Invalidate() {
	h.view.Invalidate()
}

// ServeHTTP handles the customers HTTP request.
func (h *CustomersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := GetRequestID(r.Context())

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", requestID)
		return
	}

	customers, err := h.view.Get(r.Context(), h.store.Customers)
	if err != nil {
		writeError(w, http.StatusInternalServerError,
			fmt.Sprintf("failed to list customers: %v", err), requestID)
		return
	}
	if customers == nil {
		customers = []types.Customer{}
	}

	writeJSON(w, http.StatusOK, CustomersResponse{Customers: customers})
}
