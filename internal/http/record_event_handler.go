package http

import (
	"encoding/json"
	"net/http"

	"platform-stats/internal/events"
	"platform-stats/internal/recorders"
)

const maxEventBytes = 64 * 1024

type recordEventHandler struct {
	recordingService recorders.RecordingService
}

func NewRecordEventHandler(recordingService recorders.RecordingService) AppHttpHandler {
	return &recordEventHandler{
		recordingService: recordingService,
	}
}

// Handle processes POST /events requests. Recording is synchronous so a store
// outage surfaces to the caller as 503.
func (h *recordEventHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var event events.StatEvent
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEventBytes))
	if err := decoder.Decode(&event); err != nil {
		return errInvalidRequestBody("invalid event json", err)
	}

	result, err := h.recordingService.RecordEvent(r.Context(), event)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusAccepted, map[string]any{
		"countersUpdated": result.CountersUpdated,
	})
}
