package http

import (
	"encoding/json"
	"net/http"
)

// writeJSON writes v as the JSON response body with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(v)
}
