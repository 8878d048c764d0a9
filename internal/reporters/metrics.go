package reporters

import (
	"platform-stats/internal/shared/metrics"
)

const fieldReportType = "report_type"

const (
	reportTypePlatform    = "platform_summary"
	reportTypeDimensional = "dimensional"
	reportTypeEntity      = "entity"
	reportTypeRanking     = "ranking"
)

var (
	metricReportBuiltTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReporting,
			Name:      "report_built_total",
		},
		[]string{fieldReportType, metrics.FieldErrorCode},
	)

	metricReportBuildSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReporting,
			Name:      "report_build_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{fieldReportType},
	)
)
