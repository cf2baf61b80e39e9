package aggregators

import (
	"context"
	"sort"
	"time"

	"retail-analytics/internal/models"
)

// TimedRecord pairs a record with its parsed invoice timestamp. Records
// whose invoiceDate never parses are dropped before aggregation, so At
// is always valid here.
type TimedRecord struct {
	Record *models.Record
	At     time.Time
}

// KeyFunc extracts the grouping key and its display label from a record.
type KeyFunc func(r *models.Record) (key string, label string)

// ValueFunc extracts the value a record contributes to an aggregate.
type ValueFunc func(r *models.Record) float64

func ByCountry(r *models.Record) (string, string) {
	return r.Country, r.Country
}

func ByCustomer(r *models.Record) (string, string) {
	return r.CustomerID, r.CustomerID
}

func ByProduct(r *models.Record) (string, string) {
	return r.StockCode, r.StockCode + " - " + r.Description
}

// FilterWindow keeps the records whose invoice timestamp parses and
// falls inside the window, sorted ascending by timestamp. The sort is
// stable so records sharing a timestamp keep their log order.
func FilterWindow(records []*models.Record, window models.Window) []TimedRecord {
	timed := make([]TimedRecord, 0, len(records))
	for _, record := range records {
		at, ok := record.Time()
		if !ok {
			continue
		}
		if !window.Contains(at) {
			continue
		}
		timed = append(timed, TimedRecord{Record: record, At: at})
	}

	sort.SliceStable(timed, func(i, j int) bool {
		return timed[i].At.Before(timed[j].At)
	})
	return timed
}

// BucketSeries resamples the (already sorted) records onto the window's
// bucket width. Buckets with no records are omitted rather than emitted
// as zeroes.
func BucketSeries(ctx context.Context, records []TimedRecord, window models.Window, value ValueFunc) ([]models.SeriesPoint, error) {
	var series []models.SeriesPoint
	for _, record := range records {
		bucketStart := window.Bucket.Truncate(record.At)

		if n := len(series); n > 0 && series[n-1].BucketStart.Equal(bucketStart) {
			series[n-1].Value += value(record.Record)
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}
		series = append(series, models.SeriesPoint{
			BucketStart: bucketStart,
			Label:       window.Bucket.Label(bucketStart),
			Value:       value(record.Record),
		})
	}
	return series, nil
}

// GroupTotals sums a value per group key, preserving first-encounter
// order so that ranking ties resolve deterministically.
func GroupTotals(records []TimedRecord, key KeyFunc, value ValueFunc) []models.GroupTotal {
	index := make(map[string]int)
	var totals []models.GroupTotal

	for _, record := range records {
		k, label := key(record.Record)
		if i, ok := index[k]; ok {
			totals[i].Value += value(record.Record)
			continue
		}
		index[k] = len(totals)
		totals = append(totals, models.GroupTotal{Key: k, Label: label, Value: value(record.Record)})
	}
	return totals
}
