// Package memory provides in-memory implementations of the driven
// storage ports. Used in tests and as a fallback when the SQLite store
// cannot be opened.
package memory

import (
	"context"
	"sync"

	"github.com/riklabs/rigveda-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
type HistoryStore struct {
	mu      sync.Mutex
	queries []string
}

// NewHistoryStore creates an empty in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// List returns the stored history, most recent first.
func (s *HistoryStore) List(context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.queries))
	copy(out, s.queries)
	return out, nil
}

// Replace overwrites the stored history.
func (s *HistoryStore) Replace(_ context.Context, queries []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queries = make([]string, len(queries))
	copy(s.queries, queries)
	return nil
}

// Clear removes the stored history.
func (s *HistoryStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queries = nil
	return nil
}
