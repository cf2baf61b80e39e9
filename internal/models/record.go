package models

import "time"

// UnknownCustomerID is the sentinel assigned when a record arrives
// without a customer identity. A missing customer never rejects a
// record on its own.
const UnknownCustomerID = "unknown CustomerID"

// DateLayout is the primary invoiceDate format emitted by producers,
// e.g. "2021-01-01 10:00:00".
const DateLayout = "2006-01-02 15:04:05"

// Record is a validated retail transaction line. One invoice may span
// several records, so InvoiceID is not unique. InvoiceDate is kept in
// its wire form; queries parse it and skip records whose timestamp does
// not parse.
//
// Example JSON (also the persisted log-line format):
//
//	{
//	  "invoiceId": "536365",
//	  "stockCode": "85123A",
//	  "description": "WHITE HANGING HEART T-LIGHT HOLDER",
//	  "quantity": 6,
//	  "unitPrice": 2.55,
//	  "invoiceDate": "2021-01-01 10:00:00",
//	  "customerId": "17850",
//	  "country": "United Kingdom"
//	}
type Record struct {
	InvoiceID   string  `json:"invoiceId"`
	StockCode   string  `json:"stockCode"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	InvoiceDate string  `json:"invoiceDate"`
	CustomerID  string  `json:"customerId"`
	Country     string  `json:"country"`
}

// Total is the monetary value of the line. Derived at aggregation time,
// never persisted.
func (r *Record) Total() float64 {
	return r.Quantity * r.UnitPrice
}

// Time parses the record's invoice date. ok is false when the stored
// string is not a recognizable timestamp.
func (r *Record) Time() (time.Time, bool) {
	if t, err := time.Parse(DateLayout, r.InvoiceDate); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, r.InvoiceDate); err == nil {
		return t, true
	}
	return time.Time{}, false
}
