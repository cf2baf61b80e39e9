package ingestors

import (
	"context"
	"errors"
	"io"

	"retail-analytics/internal/models"
	"retail-analytics/internal/shared/loggers"
	"retail-analytics/internal/shared/metrics"
	"retail-analytics/internal/shared/svcerrors"
	"retail-analytics/internal/stores"

	"github.com/goccy/go-json"
)

const (
	maxBatchBytes = 8 * 1024 * 1024
)

// IngestResult represents the result of a batch ingestion operation.
// Skipped counts records rejected by validation; a batch where every
// record is skipped is still an accepted batch.
type IngestResult struct {
	Written int
	Skipped int
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// IngestBatch processes a JSON payload holding one transaction
	// object or an array of them, appending the valid records to the
	// event log in a single write.
	IngestBatch(ctx context.Context, r io.Reader) (*IngestResult, error)
}

type ingestionService struct {
	recordValidator RecordValidator
	eventLogStore   stores.EventLogStore
}

func NewIngestionService(recordValidator RecordValidator, eventLogStore stores.EventLogStore) IngestionService {
	return &ingestionService{
		recordValidator: recordValidator,
		eventLogStore:   eventLogStore,
	}
}

func (s *ingestionService) IngestBatch(ctx context.Context, r io.Reader) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)

	rawRecords, err := s.parseBatch(r)
	if err != nil {
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			metricBatchIngestedTotal.WithLabelValues(svcErr.Code).Inc()
		}
		return nil, err
	}

	records := make([]*models.Record, 0, len(rawRecords))
	skipped := 0
	for _, raw := range rawRecords {
		obj, ok := raw.(map[string]any)
		if !ok {
			skipped++
			metricRecordsSkippedTotal.WithLabelValues(reasonNotObject).Inc()
			continue
		}

		record, err := s.recordValidator.Validate(obj)
		if err != nil {
			skipped++
			metricRecordsSkippedTotal.WithLabelValues(skipReason(err)).Inc()
			logger.Debug().Err(err).Msg("skipped invalid record")
			continue
		}
		records = append(records, record)
	}

	written, err := s.eventLogStore.Append(ctx, records)
	if err != nil {
		svcError := errInternalEventLogAppendFailed(err)
		metricBatchIngestedTotal.WithLabelValues(svcError.Code).Inc()
		return nil, svcError
	}

	metricBatchIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricRecordsWrittenTotal.Add(float64(written))
	logger.Debug().Msgf("ingested batch: %d written, %d skipped", written, skipped)

	return &IngestResult{Written: written, Skipped: skipped}, nil
}

// parseBatch decodes the request body as either a single JSON object or
// an array of values. Array elements are returned undecoded so that a
// non-object element skips one record rather than failing the batch.
func (s *ingestionService) parseBatch(r io.Reader) ([]any, error) {
	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}

	buf, err := s.readWithLimit(r, maxBatchBytes)
	if err != nil {
		return nil, err
	}

	var payload any
	if err := json.Unmarshal(buf, &payload); err != nil {
		return nil, errValidationFailed("invalid json", err)
	}

	switch v := payload.(type) {
	case []any:
		return v, nil
	case map[string]any:
		return []any{v}, nil
	default:
		return nil, errValidationFailed("payload must be a JSON object or array", nil)
	}
}

// readWithLimit reads up to max+1 bytes from r and checks if it exceeds max.
func (s *ingestionService) readWithLimit(r io.Reader, max int) ([]byte, error) {
	buf, err := io.ReadAll(io.LimitReader(r, int64(max+1)))
	if err != nil {
		return nil, errValidationFailed("failed to read request body", err)
	}
	if len(buf) > max {
		return nil, errBatchTooLarge()
	}
	return buf, nil
}

func skipReason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidQuantity):
		return reasonInvalidQuantity
	default:
		return reasonMissingField
	}
}
