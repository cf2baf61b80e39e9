package queries

import (
	"context"
	"time"

	"retail-analytics/internal/aggregators"
	"retail-analytics/internal/models"
	"retail-analytics/internal/shared/loggers"
	"retail-analytics/internal/shared/metrics"
	"retail-analytics/internal/stores"
)

const (
	rankSize = 10

	liveFeedBuckets = 20
	liveFeedLayout  = "15:04"
)

// QueryService answers the dashboard reads. Every call scans the event
// log and aggregates on demand; windows are anchored at the newest
// record timestamp, never at wall-clock now.
//
//go:generate mockgen -source=query_service.go -destination=./mocks/query_service_mock.go -package=mocks
type QueryService interface {
	// SalesOverview returns a bucketed series for the chosen metric, the
	// per-country split and the top/bottom customers by total spend.
	SalesOverview(ctx context.Context, granularity models.Granularity, metric models.Metric) (*models.OverviewResult, error)

	// ProductLeaderboard returns a bucketed series, the price/quantity
	// scatter sample and the top/bottom products by the chosen metric,
	// plus the whole-log monetary total and time range.
	ProductLeaderboard(ctx context.Context, granularity models.Granularity, metric models.Metric) (*models.LeaderboardResult, error)

	// LiveFeed returns the last few one-minute quantity buckets.
	LiveFeed(ctx context.Context) (*models.LiveFeedResult, error)
}

type queryService struct {
	eventLogStore stores.EventLogStore
}

func NewQueryService(eventLogStore stores.EventLogStore) QueryService {
	return &queryService{eventLogStore: eventLogStore}
}

func (s *queryService) SalesOverview(ctx context.Context, granularity models.Granularity, metric models.Metric) (*models.OverviewResult, error) {
	records, logEnd, _, err := s.loadLog(ctx)
	if err != nil {
		return nil, err
	}

	window := s.resolveWindow(granularity, logEnd)
	timed := aggregators.FilterWindow(records, window)

	series, err := aggregators.BucketSeries(ctx, timed, window, metric.ValueOf)
	if err != nil {
		return nil, err
	}

	countries := aggregators.GroupTotals(timed, aggregators.ByCountry, metric.ValueOf)
	// Customers are ranked by spend whatever metric drives the series.
	customers := aggregators.GroupTotals(timed, aggregators.ByCustomer, spendOf)

	metricQueryServedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return &models.OverviewResult{
		Granularity:     granularity,
		Metric:          metric,
		WindowStart:     window.Start,
		WindowEnd:       window.End,
		Series:          series,
		Countries:       aggregators.TopN(countries, len(countries), aggregators.Descending),
		TopCustomers:    aggregators.TopN(customers, rankSize, aggregators.Descending),
		BottomCustomers: aggregators.TopN(customers, rankSize, aggregators.Ascending),
	}, nil
}

func (s *queryService) ProductLeaderboard(ctx context.Context, granularity models.Granularity, metric models.Metric) (*models.LeaderboardResult, error) {
	records, logEnd, logStart, err := s.loadLog(ctx)
	if err != nil {
		return nil, err
	}

	window := s.resolveWindow(granularity, logEnd)
	timed := aggregators.FilterWindow(records, window)

	series, err := aggregators.BucketSeries(ctx, timed, window, metric.ValueOf)
	if err != nil {
		return nil, err
	}

	products := aggregators.GroupTotals(timed, aggregators.ByProduct, metric.ValueOf)

	scatter := make([]models.ScatterPoint, 0, len(timed))
	for _, t := range timed {
		if t.Record.UnitPrice <= 0 || t.Record.Quantity <= 0 {
			continue
		}
		scatter = append(scatter, models.ScatterPoint{
			UnitPrice:   t.Record.UnitPrice,
			Quantity:    t.Record.Quantity,
			StockCode:   t.Record.StockCode,
			Description: t.Record.Description,
		})
	}

	// The header total covers the whole log, not just the window.
	var totalAmount float64
	for _, record := range records {
		totalAmount += record.Total()
	}

	metricQueryServedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return &models.LeaderboardResult{
		Granularity:    granularity,
		Metric:         metric,
		WindowStart:    window.Start,
		WindowEnd:      window.End,
		LogStart:       logStart,
		LogEnd:         logEnd,
		TotalAmount:    totalAmount,
		Series:         series,
		Scatter:        scatter,
		TopProducts:    aggregators.TopN(products, rankSize, aggregators.Descending),
		BottomProducts: aggregators.TopN(products, rankSize, aggregators.Ascending),
	}, nil
}

func (s *queryService) LiveFeed(ctx context.Context) (*models.LiveFeedResult, error) {
	records, logEnd, _, err := s.loadLog(ctx)
	if err != nil {
		return nil, err
	}

	window := models.Window{End: logEnd, Bucket: models.BucketWidth{Step: time.Minute}}
	timed := aggregators.FilterWindow(records, window)

	series, err := aggregators.BucketSeries(ctx, timed, window, quantityOf)
	if err != nil {
		return nil, err
	}
	if len(series) > liveFeedBuckets {
		series = series[len(series)-liveFeedBuckets:]
	}

	result := &models.LiveFeedResult{
		Labels: make([]string, 0, len(series)),
		Data:   make([]float64, 0, len(series)),
	}
	for _, point := range series {
		result.Labels = append(result.Labels, point.BucketStart.Format(liveFeedLayout))
		result.Data = append(result.Data, point.Value)
	}

	metricQueryServedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return result, nil
}

// loadLog scans the event log and anchors the query at the newest and
// oldest parseable timestamps.
func (s *queryService) loadLog(ctx context.Context) ([]*models.Record, time.Time, time.Time, error) {
	logger := loggers.Ctx(ctx)

	records, err := s.eventLogStore.ReadAll(ctx)
	if err != nil {
		svcError := errInternalEventLogReadFailed(err)
		metricQueryServedTotal.WithLabelValues(svcError.Code).Inc()
		return nil, time.Time{}, time.Time{}, svcError
	}

	var logEnd, logStart time.Time
	for _, record := range records {
		at, ok := record.Time()
		if !ok {
			continue
		}
		if logEnd.IsZero() || at.After(logEnd) {
			logEnd = at
		}
		if logStart.IsZero() || at.Before(logStart) {
			logStart = at
		}
	}

	if logEnd.IsZero() {
		svcError := errInsufficientData()
		metricQueryServedTotal.WithLabelValues(svcError.Code).Inc()
		logger.Debug().Msgf("query rejected: %d records, none with a parseable timestamp", len(records))
		return nil, time.Time{}, time.Time{}, svcError
	}

	return records, logEnd, logStart, nil
}

func (s *queryService) resolveWindow(granularity models.Granularity, logEnd time.Time) models.Window {
	metricWindowResolvedTotal.WithLabelValues(string(granularity)).Inc()
	return aggregators.ResolveWindow(granularity, logEnd)
}

func quantityOf(r *models.Record) float64 { return r.Quantity }
func spendOf(r *models.Record) float64    { return r.Total() }
