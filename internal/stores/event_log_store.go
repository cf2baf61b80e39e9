package stores

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"

	"retail-analytics/internal/models"
	"retail-analytics/internal/shared/filestorages"

	"github.com/goccy/go-json"
)

const (
	// maxLineBytes bounds a single serialized record during scans.
	maxLineBytes = 1 << 20

	// ctxCheckInterval is how many lines a scan reads between context
	// checks.
	ctxCheckInterval = 4096
)

// EventLogStore is the append-only durable record log. Entries are one
// JSON object per line; the file is created on the first append and
// prior entries are never rewritten.
//
// Append serializes the whole batch and hands it to the storage layer
// as a single write while holding the store's write lock, so concurrent
// batches never interleave and a reader never observes a torn entry.
// ReadAll opens a fresh reader per call and skips malformed lines
// (e.g. a line truncated by a crash mid-write) instead of aborting.
//
//go:generate mockgen -source=event_log_store.go -destination=./mocks/event_log_store_mock.go -package=mocks
type EventLogStore interface {
	Append(ctx context.Context, records []*models.Record) (int, error)
	ReadAll(ctx context.Context) ([]*models.Record, error)
}

type eventLogStore struct {
	fileStorage filestorages.FileStorage
	key         string

	mu sync.Mutex // serializes writers for a whole batch
}

func NewEventLogStore(fileStorage filestorages.FileStorage, key string) EventLogStore {
	return &eventLogStore{fileStorage: fileStorage, key: key}
}

func (s *eventLogStore) Append(ctx context.Context, records []*models.Record) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	var buf bytes.Buffer
	for _, record := range records {
		line, err := json.Marshal(record)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal record: %w", err)
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.fileStorage.Append(ctx, s.key, &buf); err != nil {
		return 0, fmt.Errorf("failed to append to event log: %w", err)
	}

	metricRecordsAppendedTotal.Add(float64(len(records)))
	return len(records), nil
}

func (s *eventLogStore) ReadAll(ctx context.Context) ([]*models.Record, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			// No writes yet; an empty log is not an error.
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open event log: %w", err)
	}
	defer readCloser.Close()

	var records []*models.Record

	scanner := bufio.NewScanner(readCloser)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	for lineNo := 0; scanner.Scan(); lineNo++ {
		if lineNo%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		var record models.Record
		if err := json.Unmarshal(line, &record); err != nil {
			metricMalformedLinesTotal.Inc()
			continue
		}
		records = append(records, &record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan event log: %w", err)
	}

	return records, nil
}
