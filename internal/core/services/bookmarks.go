package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/riklabs/rigveda-cli/internal/core/domain"
	"github.com/riklabs/rigveda-cli/internal/core/ports/driven"
	"github.com/riklabs/rigveda-cli/internal/core/ports/driving"
)

// Ensure BookmarkService implements the interface.
var _ driving.BookmarkService = (*BookmarkService)(nil)

// BookmarkService manages the user's saved verses.
type BookmarkService struct {
	store driven.BookmarkStore
	now   func() time.Time
}

// NewBookmarkService creates a bookmark service.
func NewBookmarkService(store driven.BookmarkStore) *BookmarkService {
	return &BookmarkService{store: store, now: time.Now}
}

// Add bookmarks a verse. Adding an existing bookmark is a no-op.
func (s *BookmarkService) Add(ctx context.Context, verseID string) error {
	if verseID == "" {
		return fmt.Errorf("%w: empty verse ID", domain.ErrInvalidInput)
	}

	exists, err := s.store.Exists(ctx, verseID)
	if err != nil {
		return fmt.Errorf("check bookmark: %w", err)
	}
	if exists {
		return nil
	}

	bookmark := domain.Bookmark{
		ID:        uuid.NewString(),
		VerseID:   verseID,
		CreatedAt: s.now(),
	}
	if err := s.store.Save(ctx, bookmark); err != nil {
		return fmt.Errorf("save bookmark: %w", err)
	}
	return nil
}

// Remove deletes a verse's bookmark.
func (s *BookmarkService) Remove(ctx context.Context, verseID string) error {
	if err := s.store.Delete(ctx, verseID); err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}
	return nil
}

// Toggle flips a verse's bookmark state and reports the new state.
func (s *BookmarkService) Toggle(ctx context.Context, verseID string) (bool, error) {
	exists, err := s.store.Exists(ctx, verseID)
	if err != nil {
		return false, fmt.Errorf("check bookmark: %w", err)
	}
	if exists {
		if err := s.Remove(ctx, verseID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := s.Add(ctx, verseID); err != nil {
		return false, err
	}
	return true, nil
}

// List returns all bookmarks, newest first.
func (s *BookmarkService) List(ctx context.Context) ([]domain.Bookmark, error) {
	bookmarks, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	return bookmarks, nil
}

// IsBookmarked reports whether a verse is bookmarked.
func (s *BookmarkService) IsBookmarked(ctx context.Context, verseID string) (bool, error) {
	return s.store.Exists(ctx, verseID)
}
