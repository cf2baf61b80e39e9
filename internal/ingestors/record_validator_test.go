package ingestors_test

import (
	"math"
	"testing"

	"retail-analytics/internal/ingestors"
	"retail-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRawRecord() map[string]any {
	return map[string]any{
		"invoiceId":   "536365",
		"stockCode":   "85123A",
		"description": "WHITE HANGING HEART T-LIGHT HOLDER",
		"quantity":    float64(6),
		"unitPrice":   2.55,
		"invoiceDate": "2010-12-01 08:26:00",
		"customerId":  "17850",
		"country":     "United Kingdom",
	}
}

func TestValidate_ValidRecord(t *testing.T) {
	t.Parallel()

	validator := ingestors.NewRecordValidator()
	record, err := validator.Validate(validRawRecord())
	require.NoError(t, err)

	assert.Equal(t, "536365", record.InvoiceID)
	assert.Equal(t, "85123A", record.StockCode)
	assert.Equal(t, "WHITE HANGING HEART T-LIGHT HOLDER", record.Description)
	assert.Equal(t, float64(6), record.Quantity)
	assert.Equal(t, 2.55, record.UnitPrice)
	assert.Equal(t, "2010-12-01 08:26:00", record.InvoiceDate)
	assert.Equal(t, "17850", record.CustomerID)
	assert.Equal(t, "United Kingdom", record.Country)
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		mutate func(raw map[string]any)
	}{
		{name: "missing description", mutate: func(raw map[string]any) { delete(raw, "description") }},
		{name: "empty description", mutate: func(raw map[string]any) { raw["description"] = "   " }},
		{name: "missing quantity", mutate: func(raw map[string]any) { delete(raw, "quantity") }},
		{name: "empty quantity", mutate: func(raw map[string]any) { raw["quantity"] = "" }},
		{name: "missing invoiceDate", mutate: func(raw map[string]any) { delete(raw, "invoiceDate") }},
		{name: "empty invoiceDate", mutate: func(raw map[string]any) { raw["invoiceDate"] = "" }},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			validator := ingestors.NewRecordValidator()
			raw := validRawRecord()
			tc.mutate(raw)

			record, err := validator.Validate(raw)
			assert.ErrorIs(t, err, ingestors.ErrMissingField)
			assert.Nil(t, record)
		})
	}
}

func TestValidate_Quantity(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		quantity any
		want     float64
		wantErr  bool
	}{
		{name: "json number", quantity: float64(12), want: 12},
		{name: "zero", quantity: float64(0), want: 0},
		{name: "numeric string", quantity: "7", want: 7},
		{name: "fractional", quantity: 1.5, want: 1.5},
		{name: "negative", quantity: float64(-3), wantErr: true},
		{name: "negative string", quantity: "-3", wantErr: true},
		{name: "not a number", quantity: "a lot", wantErr: true},
		{name: "boolean", quantity: true, wantErr: true},
		{name: "nan string", quantity: "NaN", wantErr: true},
		{name: "nan value", quantity: math.NaN(), wantErr: true},
		{name: "positive infinity string", quantity: "+Inf", wantErr: true},
		{name: "infinity string", quantity: "Infinity", wantErr: true},
		{name: "negative infinity value", quantity: math.Inf(-1), wantErr: true},
		{name: "object", quantity: map[string]any{"value": 1}, wantErr: true},
		{name: "array", quantity: []any{float64(1)}, wantErr: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			validator := ingestors.NewRecordValidator()
			raw := validRawRecord()
			raw["quantity"] = tc.quantity

			record, err := validator.Validate(raw)
			if tc.wantErr {
				assert.ErrorIs(t, err, ingestors.ErrInvalidQuantity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, record.Quantity)
		})
	}
}

func TestValidate_CustomerIDSentinel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		mutate     func(raw map[string]any)
		wantCustID string
	}{
		{
			name:       "missing customerId",
			mutate:     func(raw map[string]any) { delete(raw, "customerId") },
			wantCustID: models.UnknownCustomerID,
		},
		{
			name:       "empty customerId",
			mutate:     func(raw map[string]any) { raw["customerId"] = "  " },
			wantCustID: models.UnknownCustomerID,
		},
		{
			name:       "numeric customerId",
			mutate:     func(raw map[string]any) { raw["customerId"] = float64(17850) },
			wantCustID: "17850",
		},
		{
			name: "customerID alias",
			mutate: func(raw map[string]any) {
				delete(raw, "customerId")
				raw["customerID"] = "12583"
			},
			wantCustID: "12583",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			validator := ingestors.NewRecordValidator()
			raw := validRawRecord()
			tc.mutate(raw)

			record, err := validator.Validate(raw)
			require.NoError(t, err)
			assert.Equal(t, tc.wantCustID, record.CustomerID)
		})
	}
}

func TestValidate_InvoiceNoAlias(t *testing.T) {
	t.Parallel()

	validator := ingestors.NewRecordValidator()
	raw := validRawRecord()
	delete(raw, "invoiceId")
	raw["invoiceNo"] = "C536379"

	record, err := validator.Validate(raw)
	require.NoError(t, err)
	assert.Equal(t, "C536379", record.InvoiceID)
}

func TestValidate_OptionalFieldsBestEffort(t *testing.T) {
	t.Parallel()

	validator := ingestors.NewRecordValidator()
	raw := map[string]any{
		"description": "JUMBO BAG RED RETROSPOT",
		"quantity":    float64(2),
		"invoiceDate": "2010-12-01 09:00:00",
		"unitPrice":   "not a price",
	}

	record, err := validator.Validate(raw)
	require.NoError(t, err)
	assert.Empty(t, record.InvoiceID)
	assert.Empty(t, record.StockCode)
	assert.Empty(t, record.Country)
	assert.Zero(t, record.UnitPrice, "an unparseable unitPrice does not reject the record")
	assert.Equal(t, models.UnknownCustomerID, record.CustomerID)
}

func TestValidate_UnparseableInvoiceDateAccepted(t *testing.T) {
	t.Parallel()

	validator := ingestors.NewRecordValidator()
	raw := validRawRecord()
	raw["invoiceDate"] = "next tuesday"

	record, err := validator.Validate(raw)
	require.NoError(t, err, "ingestion only requires invoiceDate to be present")
	assert.Equal(t, "next tuesday", record.InvoiceDate)
}
