package store

import (
	"context"
	"sync"
	"time"

	"github.com/KEswar-045/station-status-service/internal/models"
)

// MemoryStore is an in-process event log with the same append
// semantics as PostgresStore. It backs unit tests and local runs
// without a database.
type MemoryStore struct {
	mu      sync.Mutex
	records []models.EventRecord
	byUID   map[string]int

	// Err, when set, is returned by every operation. Lets tests
	// exercise the store-unavailable path.
	Err error
}

// NewMemoryStore returns an empty log.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byUID: make(map[string]int)}
}

// Append mirrors PostgresStore.Append: next sequence id, occurred_at
// defaulted to now, duplicates by event_uid return the stored record.
func (m *MemoryStore) Append(_ context.Context, rec models.EventRecord) (models.EventRecord, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return models.EventRecord{}, false, m.Err
	}
	if rec.EventUID != "" {
		if i, ok := m.byUID[rec.EventUID]; ok {
			return m.records[i], false, nil
		}
	}
	if rec.OccurredAt.IsZero() {
		rec.OccurredAt = time.Now().UTC()
	}
	rec.SequenceID = int64(len(m.records)) + 1
	m.records = append(m.records, rec)
	if rec.EventUID != "" {
		m.byUID[rec.EventUID] = len(m.records) - 1
	}
	return rec, true, nil
}

// All returns the log in append order.
func (m *MemoryStore) All(_ context.Context) ([]models.EventRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]models.EventRecord, len(m.records))
	copy(out, m.records)
	return out, nil
}

// Ping reports the injected error, if any.
func (m *MemoryStore) Ping(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Err
}
