package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	internalhttp "retail-analytics/internal/http"
	"retail-analytics/internal/ingestors"
	"retail-analytics/internal/queries"
	"retail-analytics/internal/shared/configs"
	"retail-analytics/internal/shared/filestorages"
	"retail-analytics/internal/shared/loggers"
	"retail-analytics/internal/stores"
)

// App holds all application dependencies and manages lifecycle. There
// are no background workers: ingestion writes the event log and every
// query aggregates on demand from it.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "retail-analytics").
		Logger()

	// Initialize blob store
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize the shared event log
	eventLogStore := stores.NewEventLogStore(fileStorage, config.EventLog.FileName)

	// Initialize ingestionService
	recordValidator := ingestors.NewRecordValidator()
	ingestionService := ingestors.NewIngestionService(recordValidator, eventLogStore)

	// Initialize queryService
	queryService := queries.NewQueryService(eventLogStore)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(ingestionService, queryService, httpLogger)

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
		config:    config,
		appLogger: appLogger,
		server:    server,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting retail-analytics service on port %d (log_level=%s, file_storage_root_dir=%s, event_log=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir,
			app.config.EventLog.FileName)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	return nil
}
