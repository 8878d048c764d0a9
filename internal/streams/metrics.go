package streams

import (
	"platform-stats/internal/shared/metrics"
)

var (
	streamStatEvents             = "stat_events"
	metricStatEventProducedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "stat_event_published_total",
		},
		[]string{"stream_id"},
	)

	metricStatEventConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "stat_event_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)
