package stores

import (
	"retail-analytics/internal/shared/metrics"
)

var (
	metricRecordsAppendedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubEventLog,
			Name:      "records_appended_total",
		},
	)

	// metricMalformedLinesTotal counts log lines skipped during a scan,
	// typically a trailing line truncated by a crash.
	metricMalformedLinesTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubEventLog,
			Name:      "malformed_lines_total",
		},
	)
)
