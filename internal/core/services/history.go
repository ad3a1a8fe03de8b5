package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/riklabs/rigveda-cli/internal/core/ports/driven"
	"github.com/riklabs/rigveda-cli/internal/core/ports/driving"
	"github.com/riklabs/rigveda-cli/internal/logger"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// DefaultHistoryLimit is the default maximum number of remembered
// queries.
const DefaultHistoryLimit = 10

// HistoryService keeps the bounded, most-recent-first list of search
// queries. Every mutation is mirrored synchronously to the store; a
// store that fails to load (missing or corrupt data) yields an empty
// history, never an error.
type HistoryService struct {
	store driven.HistoryStore
	limit int

	mu      sync.Mutex
	entries []string
	loaded  bool
}

// NewHistoryService creates a history service with the given maximum
// length. A non-positive limit uses DefaultHistoryLimit.
func NewHistoryService(store driven.HistoryStore, limit int) *HistoryService {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &HistoryService{store: store, limit: limit}
}

// ensureLoaded pulls the persisted history once. Caller must hold mu.
func (s *HistoryService) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true

	entries, err := s.store.List(ctx)
	if err != nil {
		// Corrupt or missing persisted data means starting fresh.
		logger.Warn("Search history unreadable, starting empty: %v", err)
		s.entries = nil
		return
	}
	if len(entries) > s.limit {
		entries = entries[:s.limit]
	}
	s.entries = entries
}

// Record pushes a query to the front of history with move-to-front
// deduplication. Blank input is ignored.
func (s *HistoryService) Record(ctx context.Context, query string) error {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	// Move-to-front: drop any prior occurrence, then prepend.
	next := make([]string, 0, len(s.entries)+1)
	next = append(next, query)
	for _, e := range s.entries {
		if e != query {
			next = append(next, e)
		}
	}
	if len(next) > s.limit {
		next = next[:s.limit]
	}

	s.entries = next
	if err := s.store.Replace(ctx, next); err != nil {
		return fmt.Errorf("persist history: %w", err)
	}
	return nil
}

// List returns the history, most recent first.
func (s *HistoryService) List(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	out := make([]string, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// Remove deletes one entry, preserving the order of the rest.
func (s *HistoryService) Remove(ctx context.Context, query string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	next := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		if e != query {
			next = append(next, e)
		}
	}
	if len(next) == len(s.entries) {
		return nil
	}

	s.entries = next
	if err := s.store.Replace(ctx, next); err != nil {
		return fmt.Errorf("persist history: %w", err)
	}
	return nil
}

// Clear empties the history and removes the persisted copy.
func (s *HistoryService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	s.loaded = true
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
