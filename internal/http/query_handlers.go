package http

import (
	"net/http"

	"retail-analytics/internal/models"
	"retail-analytics/internal/queries"
	"retail-analytics/internal/shared/loggers"
	"retail-analytics/internal/shared/svcerrors"

	"github.com/goccy/go-json"
)

const (
	paramGranularity = "granularity"
	paramMetric      = "metric"

	codeInvalidMetric = "API_1000"
)

type overviewHandler struct {
	queryService queries.QueryService
}

func NewOverviewHandler(queryService queries.QueryService) AppHttpHandler {
	return &overviewHandler{queryService: queryService}
}

// Handle processes GET /api/overview requests.
func (h *overviewHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	granularity, metric, err := querySelectors(r)
	if err != nil {
		return err
	}

	result, err := h.queryService.SalesOverview(r.Context(), granularity, metric)
	if err != nil {
		return err
	}
	return writeJSON(w, result)
}

type productsHandler struct {
	queryService queries.QueryService
}

func NewProductsHandler(queryService queries.QueryService) AppHttpHandler {
	return &productsHandler{queryService: queryService}
}

// Handle processes GET /api/products requests.
func (h *productsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	granularity, metric, err := querySelectors(r)
	if err != nil {
		return err
	}

	result, err := h.queryService.ProductLeaderboard(r.Context(), granularity, metric)
	if err != nil {
		return err
	}
	return writeJSON(w, result)
}

type liveFeedHandler struct {
	queryService queries.QueryService
}

func NewLiveFeedHandler(queryService queries.QueryService) AppHttpHandler {
	return &liveFeedHandler{queryService: queryService}
}

// Handle processes GET /api/data requests.
func (h *liveFeedHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.queryService.LiveFeed(r.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, result)
}

// querySelectors reads the granularity and metric query parameters. An
// unknown metric is rejected; an unknown granularity is passed through
// and degrades to the resolver's fallback window.
func querySelectors(r *http.Request) (models.Granularity, models.Metric, error) {
	rawMetric := r.URL.Query().Get(paramMetric)
	metric, err := models.ParseMetric(rawMetric)
	if err != nil {
		return "", "", svcerrors.NewInvalidArgumentError(codeInvalidMetric, err.Error(), nil)
	}

	granularity := models.Granularity(r.URL.Query().Get(paramGranularity))
	if granularity == "" {
		granularity = models.GranularityHour
	}
	if _, ok := granularity.Bucket(); !ok {
		loggers.Ctx(r.Context()).Debug().
			Str(loggers.FieldGranularity, string(granularity)).
			Msg("unknown granularity, falling back to hourly buckets")
	}

	return granularity, metric, nil
}

func writeJSON(w http.ResponseWriter, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(v)
}
