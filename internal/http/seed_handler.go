package http

import (
	"net/http"

	"platform-stats/internal/seeders"
)

type seedHandler struct {
	seeder seeders.Seeder
}

func NewSeedHandler(seeder seeders.Seeder) AppHttpHandler {
	return &seedHandler{
		seeder: seeder,
	}
}

// Handle processes POST /admin/seed requests.
func (h *seedHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.seeder.SeedDefaults(r.Context())
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, map[string]any{
		"keysWritten": result.KeysWritten,
		"keysSkipped": result.KeysSkipped,
	})
}
