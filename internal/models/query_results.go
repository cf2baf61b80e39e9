package models

import "time"

// SeriesPoint is one non-empty bucket of a resampled time series.
// Buckets with no records are never synthesized, so a series is not a
// dense grid.
type SeriesPoint struct {
	BucketStart time.Time `json:"bucketStart"`
	Label       string    `json:"label"`
	Value       float64   `json:"value"`
}

// GroupTotal is the summed metric for one group (a country, a customer,
// or a product).
type GroupTotal struct {
	Key   string  `json:"key"`
	Label string  `json:"label,omitempty"`
	Value float64 `json:"value"`
}

// ScatterPoint is one sample of the price/quantity scatter. Only lines
// with a positive price and quantity are sampled.
type ScatterPoint struct {
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    float64 `json:"quantity"`
	StockCode   string  `json:"stockCode"`
	Description string  `json:"description"`
}

// OverviewResult is the trailing-window summary backing the customers
// and countries page: a bucketed series, a country split and the
// top/bottom customers by total spend.
type OverviewResult struct {
	Granularity     Granularity   `json:"granularity"`
	Metric          Metric        `json:"metric"`
	WindowStart     time.Time     `json:"windowStart"`
	WindowEnd       time.Time     `json:"windowEnd"`
	Series          []SeriesPoint `json:"series"`
	Countries       []GroupTotal  `json:"countries"`
	TopCustomers    []GroupTotal  `json:"topCustomers"`
	BottomCustomers []GroupTotal  `json:"bottomCustomers"`
}

// LeaderboardResult is the trailing-window product leaderboard: a
// bucketed series, a price/quantity scatter sample and the top/bottom
// products by the chosen metric. TotalAmount and the log range cover
// the whole log, not just the window.
type LeaderboardResult struct {
	Granularity    Granularity    `json:"granularity"`
	Metric         Metric         `json:"metric"`
	WindowStart    time.Time      `json:"windowStart"`
	WindowEnd      time.Time      `json:"windowEnd"`
	LogStart       time.Time      `json:"logStart"`
	LogEnd         time.Time      `json:"logEnd"`
	TotalAmount    float64        `json:"totalAmount"`
	Series         []SeriesPoint  `json:"series"`
	Scatter        []ScatterPoint `json:"scatter"`
	TopProducts    []GroupTotal   `json:"topProducts"`
	BottomProducts []GroupTotal   `json:"bottomProducts"`
}

// LiveFeedResult is the minimal live feed: the last few one-minute
// quantity buckets, labels formatted HH:MM.
type LiveFeedResult struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}
