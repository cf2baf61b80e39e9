package ingestors

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"retail-analytics/internal/models"
)

var (
	ErrMissingField    = errors.New("missing required field")
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// RecordValidator checks a single decoded transaction object and turns
// it into a Record. A record must carry a non-empty description, a
// non-empty invoiceDate and a quantity that parses as a non-negative
// number; everything else is optional and normalized best-effort.
//
//go:generate mockgen -source=record_validator.go -destination=./mocks/record_validator_mock.go -package=mocks
type RecordValidator interface {
	Validate(raw map[string]any) (*models.Record, error)
}

type recordValidator struct{}

func NewRecordValidator() RecordValidator {
	return &recordValidator{}
}

func (v *recordValidator) Validate(raw map[string]any) (*models.Record, error) {
	description := coerceString(raw["description"])
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("%w: description", ErrMissingField)
	}

	invoiceDate := coerceString(raw["invoiceDate"])
	if strings.TrimSpace(invoiceDate) == "" {
		return nil, fmt.Errorf("%w: invoiceDate", ErrMissingField)
	}

	quantityRaw, ok := raw["quantity"]
	if !ok || quantityRaw == nil {
		return nil, fmt.Errorf("%w: quantity", ErrMissingField)
	}
	if s, isString := quantityRaw.(string); isString && strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: quantity", ErrMissingField)
	}
	quantity, ok := coerceNumber(quantityRaw)
	if !ok {
		return nil, fmt.Errorf("%w: not a number", ErrInvalidQuantity)
	}
	// NaN and infinities parse but cannot be serialized into the log.
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return nil, fmt.Errorf("%w: not a finite number", ErrInvalidQuantity)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%w: negative", ErrInvalidQuantity)
	}

	invoiceID := coerceString(raw["invoiceId"])
	if invoiceID == "" {
		// Older feeds ship the invoice number under its original column name.
		invoiceID = coerceString(raw["invoiceNo"])
	}

	customerID := strings.TrimSpace(coerceString(raw["customerId"]))
	if customerID == "" {
		customerID = strings.TrimSpace(coerceString(raw["customerID"]))
	}
	if customerID == "" {
		customerID = models.UnknownCustomerID
	}

	unitPrice, _ := coerceNumber(raw["unitPrice"])

	return &models.Record{
		InvoiceID:   invoiceID,
		StockCode:   coerceString(raw["stockCode"]),
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		InvoiceDate: invoiceDate,
		CustomerID:  customerID,
		Country:     coerceString(raw["country"]),
	}, nil
}

// coerceString renders scalar JSON values as strings. Numeric customer
// and invoice IDs arrive as JSON numbers in some feeds.
func coerceString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func coerceNumber(val any) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
