package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	recordsPerMinute = 12 // Records generated for each simulated minute
	minuteCount      = 5  // Simulated minutes, one batch each
)

var (
	stockCodes = []string{"85123A", "71053", "84406B", "22423"}
	countries  = []string{"United Kingdom", "France", "Germany", "Netherlands"}
)

// ### End - fixed configs

type transaction struct {
	InvoiceID   string  `json:"invoiceId"`
	StockCode   string  `json:"stockCode"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	InvoiceDate string  `json:"invoiceDate"`
	CustomerID  string  `json:"customerId"`
	Country     string  `json:"country"`
}

type ingestResponse struct {
	Message string `json:"message"`
	Skipped int    `json:"skipped"`
}

type liveFeedResponse struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// main runs the e2e scenario: 001_minute_replay
//
// This scenario replays a historical dataset the way the original feed
// does: transactions grouped by invoice minute, one batch posted per
// second. It then reads the live feed and checks that the per-minute
// quantity buckets match what was sent.
//
// What it tests:
//   - Batch ingestion via POST /ingest, including one deliberately
//     invalid record per batch (skipped, never a batch failure)
//   - The append-only event log accumulating across batches
//   - Window anchoring at the newest record timestamp, so a dataset
//     from 2021 still renders
//   - The live feed serving the last per-minute quantity buckets
func main() {
	baseURL := getEnv("BASE_URL", "http://localhost:8080")
	dateUTC := getEnv("DATE_UTC", "2021-03-05") // Date used for generated invoice timestamps (UTC)

	fmt.Println("Starting e2e scenario: 001_minute_replay")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("DATE_UTC: %s\n", dateUTC)
	fmt.Printf("MINUTE_COUNT: %d\n", minuteCount)
	fmt.Printf("RECORDS_PER_MINUTE: %d\n", recordsPerMinute)
	fmt.Println()

	wantPerMinute := make([]float64, minuteCount)
	wantLabels := make([]string, minuteCount)

	for minute := 0; minute < minuteCount; minute++ {
		label := fmt.Sprintf("14:%02d", 10+minute)
		wantLabels[minute] = label

		batch := make([]any, 0, recordsPerMinute+1)
		for i := 0; i < recordsPerMinute; i++ {
			quantity := float64(1 + (i % 4))
			wantPerMinute[minute] += quantity
			batch = append(batch, transaction{
				InvoiceID:   fmt.Sprintf("5363%02d%02d", minute, i),
				StockCode:   stockCodes[i%len(stockCodes)],
				Description: "PRODUCT " + stockCodes[i%len(stockCodes)],
				Quantity:    quantity,
				UnitPrice:   2.5,
				InvoiceDate: fmt.Sprintf("%s %s:%02d", dateUTC, label, i),
				CustomerID:  fmt.Sprintf("178%02d", i%3),
				Country:     countries[i%len(countries)],
			})
		}
		// One broken record per batch: must be skipped, not fatal.
		batch = append(batch, map[string]any{"quantity": "plenty", "invoiceDate": dateUTC})

		skipped, err := sendBatch(baseURL, batch)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: batch for minute %s failed: %v\n", label, err)
			os.Exit(1)
		}
		if skipped != 1 {
			fmt.Fprintf(os.Stderr, "ERROR: batch for minute %s: want 1 skipped record, got %d\n", label, skipped)
			os.Exit(1)
		}
		fmt.Printf("Batch for minute %s sent (%d records, %d skipped)\n", label, len(batch), skipped)

		// The original feed paces one minute-batch per second.
		time.Sleep(1 * time.Second)
	}
	fmt.Println()

	feed, err := fetchLiveFeed(baseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: live feed fetch failed: %v\n", err)
		os.Exit(1)
	}

	if len(feed.Labels) < minuteCount {
		fmt.Fprintf(os.Stderr, "ERROR: live feed has %d buckets, want at least %d\n", len(feed.Labels), minuteCount)
		os.Exit(1)
	}

	// The replayed minutes must be the newest buckets in the feed.
	offset := len(feed.Labels) - minuteCount
	failures := 0
	for minute := 0; minute < minuteCount; minute++ {
		gotLabel := feed.Labels[offset+minute]
		gotValue := feed.Data[offset+minute]
		if gotLabel != wantLabels[minute] || gotValue != wantPerMinute[minute] {
			fmt.Fprintf(os.Stderr, "MISMATCH: bucket %d: got %s=%v, want %s=%v\n",
				minute, gotLabel, gotValue, wantLabels[minute], wantPerMinute[minute])
			failures++
			continue
		}
		fmt.Printf("Bucket %s verified (quantity %v)\n", gotLabel, gotValue)
	}

	fmt.Println()
	if failures > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d bucket mismatches\n", failures)
		os.Exit(1)
	}
	fmt.Println("Scenario completed successfully")
}

func sendBatch(baseURL string, batch []any) (int, error) {
	jsonData, err := json.Marshal(batch)
	if err != nil {
		return 0, fmt.Errorf("marshal batch: %w", err)
	}

	resp, err := http.Post(baseURL+"/ingest", "application/json", bytes.NewReader(jsonData))
	if err != nil {
		return 0, fmt.Errorf("post batch: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	var ack ingestResponse
	if err := json.Unmarshal(body, &ack); err != nil {
		return 0, fmt.Errorf("decode ingest response: %w", err)
	}
	return ack.Skipped, nil
}

func fetchLiveFeed(baseURL string) (*liveFeedResponse, error) {
	resp, err := http.Get(baseURL + "/api/data")
	if err != nil {
		return nil, fmt.Errorf("get live feed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	var feed liveFeedResponse
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("decode live feed: %w", err)
	}
	return &feed, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
