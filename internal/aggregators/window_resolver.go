package aggregators

import (
	"time"

	"retail-analytics/internal/models"
)

// fallbackBucket is used for unrecognized granularities: hourly buckets
// over the whole log.
var fallbackBucket = models.BucketWidth{Step: time.Hour}

// ResolveWindow turns a granularity into a concrete trailing window
// anchored at the newest timestamp in the log, not at wall-clock now,
// so a replayed historical dataset still renders.
//
// An unrecognized granularity resolves to an unbounded window with
// hourly buckets instead of an error.
func ResolveWindow(granularity models.Granularity, logMax time.Time) models.Window {
	bucket, ok := granularity.Bucket()
	if !ok {
		return models.Window{End: logMax, Bucket: fallbackBucket}
	}

	start, _ := granularity.WindowStart(logMax)
	return models.Window{Start: start, End: logMax, Bucket: bucket}
}
