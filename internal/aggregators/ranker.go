package aggregators

import (
	"sort"

	"retail-analytics/internal/models"
)

// Direction selects which end of the ranking TopN returns.
type Direction int

const (
	Descending Direction = iota
	Ascending
)

// TopN returns the n highest (or lowest) totals without mutating the
// input. The sort is stable, so groups with equal totals keep their
// first-encounter order.
func TopN(totals []models.GroupTotal, n int, direction Direction) []models.GroupTotal {
	ranked := make([]models.GroupTotal, len(totals))
	copy(ranked, totals)

	sort.SliceStable(ranked, func(i, j int) bool {
		if direction == Ascending {
			return ranked[i].Value < ranked[j].Value
		}
		return ranked[i].Value > ranked[j].Value
	})

	if n < 0 || n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
