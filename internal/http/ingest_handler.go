package http

import (
	"fmt"
	"net/http"

	"retail-analytics/internal/ingestors"

	"github.com/goccy/go-json"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// IngestResponse acknowledges an accepted batch. Skipped records are
// reported in aggregate only.
type IngestResponse struct {
	Message string `json:"message"`
	Skipped int    `json:"skipped"`
}

type ingestHandler struct {
	ingestionService ingestors.IngestionService
}

func NewIngestHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &ingestHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes POST /ingest requests.
func (h *ingestHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.ingestionService.IngestBatch(r.Context(), r.Body)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(IngestResponse{
		Message: fmt.Sprintf("wrote %d valid records", result.Written),
		Skipped: result.Skipped,
	})
}
