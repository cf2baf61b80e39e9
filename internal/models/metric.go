package models

import "fmt"

// Metric selects the value summed per bucket and per group.
type Metric string

const (
	MetricQuantity Metric = "quantity"
	MetricTotal    Metric = "total"
)

// ParseMetric maps a request selector onto a Metric. An empty selector
// defaults to quantity.
func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case MetricQuantity, MetricTotal:
		return Metric(s), nil
	case "":
		return MetricQuantity, nil
	default:
		return "", fmt.Errorf("unknown metric: %q", s)
	}
}

// ValueOf returns the record's contribution under the metric.
func (m Metric) ValueOf(r *Record) float64 {
	if m == MetricTotal {
		return r.Total()
	}
	return r.Quantity
}
