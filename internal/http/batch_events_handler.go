package http

import (
	"encoding/json"
	"net/http"

	"platform-stats/internal/events"
	"platform-stats/internal/streams"
)

const (
	maxBatchBytes  = 2 * 1024 * 1024
	maxBatchEvents = 10000
)

type batchEventsHandler struct {
	producer streams.StatEventProducer
}

func NewBatchEventsHandler(producer streams.StatEventProducer) AppHttpHandler {
	return &batchEventsHandler{
		producer: producer,
	}
}

// Handle processes POST /events/batch requests. Events are enqueued onto the
// partitioned queue and recorded asynchronously; malformed events inside an
// accepted batch are dropped by the consumer, not reported here.
func (h *batchEventsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var batch []events.StatEvent
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBatchBytes))
	if err := decoder.Decode(&batch); err != nil {
		return errInvalidRequestBody("invalid event batch json", err)
	}
	if len(batch) == 0 {
		return errInvalidRequestBody("event batch cannot be empty", nil)
	}
	if len(batch) > maxBatchEvents {
		return errInvalidRequestBody("event batch too large", nil)
	}

	accepted, err := h.producer.ProduceBatch(r.Context(), batch)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusAccepted, map[string]any{
		"accepted": accepted,
	})
}
