package http

import (
	"net/http"

	"platform-stats/internal/recorders"
	"platform-stats/internal/refdata"
	"platform-stats/internal/reporters"
	"platform-stats/internal/seeders"
	"platform-stats/internal/shared/loggers"
	"platform-stats/internal/shared/metrics"
	"platform-stats/internal/stores"
	"platform-stats/internal/streams"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(
	recordingService recorders.RecordingService,
	reportingService reporters.ReportingService,
	seeder seeders.Seeder,
	producer streams.StatEventProducer,
	referenceSource refdata.Source,
	counterStore stores.CounterStore,
	httpLogger loggers.Logger,
) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	recordEventHandler := NewRecordEventHandler(recordingService)
	batchEventsHandler := NewBatchEventsHandler(producer)
	platformSummaryHandler := NewPlatformSummaryHandler(reportingService)
	dimensionalReportHandler := NewDimensionalReportHandler(reportingService)
	entityReportHandler := NewEntityReportHandler(reportingService)
	rankingHandler := NewRankingHandler(reportingService)
	referenceHandler := NewReferenceHandler(referenceSource)
	seedHandler := NewSeedHandler(seeder)
	healthHandler := NewHealthHandler(counterStore)

	// Routes
	router.Post("/events", errorHandlingAdapter(recordEventHandler))
	router.Post("/events/batch", errorHandlingAdapter(batchEventsHandler))
	router.Get("/statistics/platform", errorHandlingAdapter(platformSummaryHandler))
	router.Get("/statistics/{category}", errorHandlingAdapter(dimensionalReportHandler))
	router.Get("/statistics/{category}/{entity}", errorHandlingAdapter(entityReportHandler))
	router.Get("/rankings/{category}/{metric}", errorHandlingAdapter(rankingHandler))
	router.Get("/reference/{catalog}", errorHandlingAdapter(referenceHandler))
	router.Post("/admin/seed", errorHandlingAdapter(seedHandler))
	router.Get("/health", errorHandlingAdapter(healthHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
