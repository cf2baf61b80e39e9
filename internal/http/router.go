package http

import (
	"net/http"

	"retail-analytics/internal/ingestors"
	"retail-analytics/internal/queries"
	"retail-analytics/internal/shared/loggers"
	"retail-analytics/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(ingestionService ingestors.IngestionService, queryService queries.QueryService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	ingestHandler := NewIngestHandler(ingestionService)
	liveFeedHandler := NewLiveFeedHandler(queryService)
	overviewHandler := NewOverviewHandler(queryService)
	productsHandler := NewProductsHandler(queryService)

	// Routes
	router.Post("/ingest", errorHandlingAdapter(ingestHandler))
	router.Get("/api/data", errorHandlingAdapter(liveFeedHandler))
	router.Get("/api/overview", errorHandlingAdapter(overviewHandler))
	router.Get("/api/products", errorHandlingAdapter(productsHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
