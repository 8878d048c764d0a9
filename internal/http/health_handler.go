package http

import (
	"net/http"

	"platform-stats/internal/stores"
)

type healthHandler struct {
	counterStore stores.CounterStore
}

func NewHealthHandler(counterStore stores.CounterStore) AppHttpHandler {
	return &healthHandler{
		counterStore: counterStore,
	}
}

// Handle processes GET /health requests. The probe fails when the counter
// store cannot be reached, so load balancers stop routing to a dead backend.
func (h *healthHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	if err := h.counterStore.Ping(r.Context()); err != nil {
		return errStoreHealthUnavailable(err)
	}

	return writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"store":  "up",
	})
}
