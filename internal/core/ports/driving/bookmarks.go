package driving

import (
	"context"

	"github.com/riklabs/rigveda-cli/internal/core/domain"
)

// BookmarkService manages the user's saved verses.
type BookmarkService interface {
	// Add bookmarks a verse. Bookmarking twice is a no-op.
	Add(ctx context.Context, verseID string) error

	// Remove deletes a verse's bookmark. Removing a verse that is not
	// bookmarked is a no-op.
	Remove(ctx context.Context, verseID string) error

	// Toggle flips a verse's bookmark state and reports the new state.
	Toggle(ctx context.Context, verseID string) (bookmarked bool, err error)

	// List returns all bookmarks, newest first.
	List(ctx context.Context) ([]domain.Bookmark, error)

	// IsBookmarked reports whether a verse is bookmarked.
	IsBookmarked(ctx context.Context, verseID string) (bool, error)
}
