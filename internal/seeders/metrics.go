package seeders

import (
	"platform-stats/internal/shared/metrics"
)

var metricSeedRunTotal = metrics.NewCounterVec(
	metrics.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubSeeding,
		Name:      "seed_run_total",
	},
	[]string{metrics.FieldErrorCode},
)
