package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riklabs/rigveda-cli/internal/core/domain"
	"github.com/riklabs/rigveda-cli/internal/core/ports/driven"
)

// Ensure BookmarkStore implements the interface.
var _ driven.BookmarkStore = (*BookmarkStore)(nil)

// BookmarkStore is an in-memory implementation of driven.BookmarkStore.
type BookmarkStore struct {
	mu        sync.Mutex
	byVerseID map[string]domain.Bookmark
}

// NewBookmarkStore creates an empty in-memory bookmark store.
func NewBookmarkStore() *BookmarkStore {
	return &BookmarkStore{byVerseID: make(map[string]domain.Bookmark)}
}

// Save stores a bookmark. Saving an already-bookmarked verse is a no-op.
func (s *BookmarkStore) Save(_ context.Context, bookmark domain.Bookmark) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byVerseID[bookmark.VerseID]; ok {
		return nil
	}
	s.byVerseID[bookmark.VerseID] = bookmark
	return nil
}

// Delete removes the bookmark for a verse, if present.
func (s *BookmarkStore) Delete(_ context.Context, verseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byVerseID, verseID)
	return nil
}

// List returns all bookmarks, newest first.
func (s *BookmarkStore) List(context.Context) ([]domain.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Bookmark, 0, len(s.byVerseID))
	for _, b := range s.byVerseID {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].VerseID < out[j].VerseID
	})
	return out, nil
}

// Exists reports whether a verse is bookmarked.
func (s *BookmarkStore) Exists(_ context.Context, verseID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.byVerseID[verseID]
	return ok, nil
}
