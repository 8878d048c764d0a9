package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"platform-stats/internal/events"
	internalhttp "platform-stats/internal/http"
	"platform-stats/internal/recorders"
	"platform-stats/internal/refdata"
	"platform-stats/internal/reporters"
	"platform-stats/internal/seeders"
	"platform-stats/internal/shared/configs"
	"platform-stats/internal/shared/loggers"
	"platform-stats/internal/stores"
	"platform-stats/internal/streams"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	statEventConsumer streams.StatEventConsumer
	backgroundCtx     context.Context
	backgroundCancel  context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "platform-stats").
		Logger()

	// Initialize counter store
	counterStore, err := stores.NewRedisCounterStore(config.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize counter store: %w", err)
	}

	// Initialize reference data
	referenceSource := refdata.NewCachedSource(refdata.NewStaticSource())

	// Initialize recording and reporting services
	recordingService := recorders.NewRecordingService(counterStore, referenceSource)
	reportingService := reporters.NewReportingService(counterStore, referenceSource)
	seeder := seeders.NewSeeder(counterStore)

	// Initialize stream queue and workers
	statEventQueue := streams.NewPartitionedQueueSized[events.StatEvent](config.Stats.QueuePartitions)
	statEventProducer := streams.NewStatEventProducer(statEventQueue)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	statEventConsumer := streams.NewStatEventConsumer(statEventQueue, recordingService, consumerLogger)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(
		recordingService,
		reportingService,
		seeder,
		statEventProducer,
		referenceSource,
		counterStore,
		httpLogger,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:            config,
		appLogger:         appLogger,
		server:            server,
		statEventConsumer: statEventConsumer,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting platform-stats service on port %d (log_level=%s, queue_partitions=%d)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Stats.QueuePartitions)

	// start background consumers
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.statEventConsumer.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	// 2) Cancel background consumers
	if app.backgroundCancel != nil {
		app.backgroundCancel()
		app.appLogger.Info().Msg("Background consumers cancelled")
	}

	// 3) Wait for background consumers to finish
	app.statEventConsumer.Stop()
	app.appLogger.Info().Msg("Background consumers stopped")

	return nil
}
