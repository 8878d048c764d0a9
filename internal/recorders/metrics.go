package recorders

import (
	"platform-stats/internal/shared/metrics"
)

const fieldEventType = "event_type"

var (
	metricEventRecordedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRecording,
			Name:      "event_recorded_total",
		},
		[]string{fieldEventType, metrics.FieldErrorCode},
	)

	metricUnknownEntityTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRecording,
			Name:      "unknown_entity_total",
		},
		[]string{fieldEventType},
	)
)
