package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_Total(t *testing.T) {
	t.Parallel()

	r := &Record{Quantity: 5, UnitPrice: 2.0}
	assert.Equal(t, 10.0, r.Total())

	// unitPrice is not validated; negative totals are possible
	r = &Record{Quantity: 3, UnitPrice: -1.5}
	assert.Equal(t, -4.5, r.Total())
}

func TestRecord_Time(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		invoiceDate string
		expected    time.Time
		ok          bool
	}{
		{
			name:        "producer layout",
			invoiceDate: "2021-01-01 10:00:00",
			expected:    time.Date(2021, 1, 1, 10, 0, 0, 0, time.UTC),
			ok:          true,
		},
		{
			name:        "rfc3339",
			invoiceDate: "2021-01-01T10:00:00Z",
			expected:    time.Date(2021, 1, 1, 10, 0, 0, 0, time.UTC),
			ok:          true,
		},
		{
			name:        "unparseable",
			invoiceDate: "first of january",
			ok:          false,
		},
		{
			name:        "empty",
			invoiceDate: "",
			ok:          false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := (&Record{InvoiceDate: tt.invoiceDate}).Time()
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.expected.Equal(got))
			}
		})
	}
}

func TestMetric_ValueOf(t *testing.T) {
	t.Parallel()

	r := &Record{Quantity: 4, UnitPrice: 2.5}
	assert.Equal(t, 4.0, MetricQuantity.ValueOf(r))
	assert.Equal(t, 10.0, MetricTotal.ValueOf(r))
}

func TestParseMetric(t *testing.T) {
	t.Parallel()

	m, err := ParseMetric("total")
	require.NoError(t, err)
	assert.Equal(t, MetricTotal, m)

	m, err = ParseMetric("")
	require.NoError(t, err)
	assert.Equal(t, MetricQuantity, m, "empty selector defaults to quantity")

	_, err = ParseMetric("revenue")
	assert.Error(t, err)
}
