package ingestors

import (
	"retail-analytics/internal/shared/metrics"
)

const (
	reasonNotObject       = "not_object"
	reasonMissingField    = "missing_field"
	reasonInvalidQuantity = "invalid_quantity"
)

var (
	metricBatchIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "batch_ingested_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricRecordsWrittenTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "records_written_total",
		},
	)

	metricRecordsSkippedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "records_skipped_total",
		},
		[]string{metrics.FieldReason},
	)
)
