// Package memory provides in-memory implementations of driven ports.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/reportctl/internal/core/domain"
	"github.com/custodia-labs/reportctl/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.StoreHistory = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.StoreHistory. It is
// used when the local database cannot be opened, and in tests.
type HistoryStore struct {
	mu      sync.RWMutex
	records []domain.StoreRecord
}

// NewHistoryStore creates a new in-memory store history.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Record saves a completed store.
func (s *HistoryStore) Record(_ context.Context, rec domain.StoreRecord) error {
	if rec.RunName == "" {
		return fmt.Errorf("%w: run name is required", domain.ErrInvalidInput)
	}
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return nil
}

// List returns the most recent records first.
func (s *HistoryStore) List(_ context.Context, limit int) ([]domain.StoreRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.sorted(func(domain.StoreRecord) bool { return true })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ListByRun returns the records of one run, most recent first.
func (s *HistoryStore) ListByRun(_ context.Context, runName string) ([]domain.StoreRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sorted(func(r domain.StoreRecord) bool { return r.RunName == runName }), nil
}

// sorted must be called with the lock held.
func (s *HistoryStore) sorted(keep func(domain.StoreRecord) bool) []domain.StoreRecord {
	out := make([]domain.StoreRecord, 0, len(s.records))
	for _, r := range s.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StoredAt.After(out[j].StoredAt)
	})
	return out
}
