package queries

import (
	"retail-analytics/internal/shared/metrics"
)

const fieldGranularity = "granularity"

var (
	metricQueryServedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubQuery,
			Name:      "query_served_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricWindowResolvedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubQuery,
			Name:      "window_resolved_total",
		},
		[]string{fieldGranularity},
	)
)
