package store

import (
	"context"
	"slices"
	"sync"
	"time"
)

// MemStore is an in-memory implementation of Store.
//
// Records are lost when the process exits. MemStore is safe for
// concurrent use.
type MemStore struct {
	mu      sync.RWMutex
	records map[string]Record
	order   []string // runIDs, oldest save first
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		records: make(map[string]Record),
	}
}

// SaveResult stores a copy of rec.
func (m *MemStore) SaveResult(_ context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	rec.Steps = slices.Clone(rec.Steps)

	if _, exists := m.records[rec.RunID]; exists {
		m.order = slices.DeleteFunc(m.order, func(id string) bool { return id == rec.RunID })
	}
	m.records[rec.RunID] = rec
	m.order = append(m.order, rec.RunID)
	return nil
}

// LoadResult returns the record for runID.
func (m *MemStore) LoadResult(_ context.Context, runID string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[runID]
	if !ok {
		return Record{}, ErrNotFound
	}
	rec.Steps = slices.Clone(rec.Steps)
	return rec, nil
}

// ListResults returns records most recently saved first.
func (m *MemStore) ListResults(_ context.Context, limit int) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := len(m.order)
	if limit > 0 && limit < n {
		n = limit
	}
	result := make([]Record, 0, n)
	for i := len(m.order) - 1; i >= 0 && len(result) < n; i-- {
		rec := m.records[m.order[i]]
		rec.Steps = slices.Clone(rec.Steps)
		result = append(result, rec)
	}
	return result, nil
}
