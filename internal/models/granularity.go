package models

import "time"

// Granularity is a named preset pairing a trailing lookback with a
// resampling bucket width. The first four are the dashboard's fixed
// views; the rest are the ad-hoc variants whose lookback is exactly one
// bucket width.
type Granularity string

const (
	GranularityHour  Granularity = "60min" // 1-minute buckets, 60-minute lookback
	GranularityDay   Granularity = "24h"   // 1-hour buckets, 24-hour lookback
	GranularityWeek  Granularity = "7d"    // 8-hour buckets, 7-day lookback
	GranularityYear  Granularity = "12mo"  // calendar-month buckets, 12-month lookback
	Granularity30Min Granularity = "30min"
	Granularity1H    Granularity = "1h"
	Granularity8H    Granularity = "8h"
	Granularity1D    Granularity = "1d"
	Granularity1W    Granularity = "1w"
)

// Bucket returns the resampling width for the granularity. ok is false
// for unrecognized values.
func (g Granularity) Bucket() (BucketWidth, bool) {
	switch g {
	case GranularityHour:
		return BucketWidth{Step: time.Minute}, true
	case GranularityDay, Granularity1H:
		return BucketWidth{Step: time.Hour}, true
	case GranularityWeek, Granularity8H:
		return BucketWidth{Step: 8 * time.Hour}, true
	case GranularityYear:
		return BucketWidth{Months: 1}, true
	case Granularity30Min:
		return BucketWidth{Step: 30 * time.Minute}, true
	case Granularity1D:
		return BucketWidth{Step: 24 * time.Hour}, true
	case Granularity1W:
		return BucketWidth{Step: 7 * 24 * time.Hour}, true
	}
	return BucketWidth{}, false
}

// WindowStart computes the open lower bound of a trailing window ending
// at end. ok is false for unrecognized values.
func (g Granularity) WindowStart(end time.Time) (time.Time, bool) {
	switch g {
	case GranularityHour:
		return end.Add(-60 * time.Minute), true
	case GranularityDay:
		return end.Add(-24 * time.Hour), true
	case GranularityWeek:
		return end.Add(-7 * 24 * time.Hour), true
	case GranularityYear:
		return end.AddDate(0, -12, 0), true
	case Granularity30Min, Granularity1H, Granularity8H, Granularity1D, Granularity1W:
		// Ad-hoc variants look back exactly one bucket width.
		bucket, _ := g.Bucket()
		return end.Add(-bucket.Step), true
	}
	return time.Time{}, false
}

// BucketWidth is a fixed resampling width. Step covers the sub-day and
// sub-week widths; Months covers calendar-month resampling, which has
// no constant duration.
type BucketWidth struct {
	Step   time.Duration
	Months int
}

// Truncate maps a timestamp onto the start of its bucket, in UTC.
func (b BucketWidth) Truncate(t time.Time) time.Time {
	utc := t.UTC()
	if b.Months > 0 {
		return time.Date(utc.Year(), utc.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	return utc.Truncate(b.Step)
}

// Label formats a bucket start for presentation: year-month for
// calendar-month buckets, minute precision otherwise.
func (b BucketWidth) Label(t time.Time) string {
	if b.Months > 0 {
		return t.UTC().Format("2006-01")
	}
	return t.UTC().Format("2006-01-02 15:04")
}

// Window is a trailing time range (Start, End] with its resampling
// width. A zero Start means the window is unbounded below.
type Window struct {
	Start  time.Time
	End    time.Time
	Bucket BucketWidth
}

// Contains reports whether t falls inside the window. The lower bound
// is exclusive and the upper bound inclusive, so the latest record is
// always in range.
func (w Window) Contains(t time.Time) bool {
	if t.After(w.End) {
		return false
	}
	if !w.Start.IsZero() && !t.After(w.Start) {
		return false
	}
	return true
}
