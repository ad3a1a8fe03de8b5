package driven

import (
	"context"

	"github.com/riklabs/rigveda-cli/internal/core/domain"
)

// BookmarkStore persists bookmarked verses. Backed by SQLite.
type BookmarkStore interface {
	// Save stores a bookmark. Saving an already-bookmarked verse is a
	// no-op rather than an error.
	Save(ctx context.Context, bookmark domain.Bookmark) error

	// Delete removes the bookmark for a verse. Deleting a verse that is
	// not bookmarked is a no-op.
	Delete(ctx context.Context, verseID string) error

	// List returns all bookmarks, newest first.
	List(ctx context.Context) ([]domain.Bookmark, error)

	// Exists reports whether a verse is bookmarked.
	Exists(ctx context.Context, verseID string) (bool, error)
}
