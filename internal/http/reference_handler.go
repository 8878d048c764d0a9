package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"platform-stats/internal/refdata"
)

type referenceHandler struct {
	referenceSource refdata.Source
}

func NewReferenceHandler(referenceSource refdata.Source) AppHttpHandler {
	return &referenceHandler{
		referenceSource: referenceSource,
	}
}

// Handle processes GET /reference/{catalog} requests.
func (h *referenceHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	raw := chi.URLParam(r, "catalog")
	catalog, ok := refdata.NewCatalogFromString(raw)
	if !ok {
		return errUnknownCatalog(raw)
	}

	return writeJSON(w, http.StatusOK, map[string]any{
		"catalog":  catalog,
		"entities": h.referenceSource.List(catalog),
	})
}
