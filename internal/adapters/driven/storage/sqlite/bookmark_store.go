package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/riklabs/rigveda-cli/internal/core/domain"
	"github.com/riklabs/rigveda-cli/internal/core/ports/driven"
)

// bookmarkStore implements driven.BookmarkStore.
type bookmarkStore struct {
	store *Store
}

var _ driven.BookmarkStore = (*bookmarkStore)(nil)

// Save stores a bookmark. Saving an already-bookmarked verse is a no-op.
func (s *bookmarkStore) Save(ctx context.Context, bookmark domain.Bookmark) error {
	if bookmark.CreatedAt.IsZero() {
		bookmark.CreatedAt = time.Now().UTC()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO bookmarks (id, verse_id, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(verse_id) DO NOTHING
	`, bookmark.ID, bookmark.VerseID, bookmark.CreatedAt)

	if err != nil {
		return fmt.Errorf("saving bookmark: %w", err)
	}
	return nil
}

// Delete removes the bookmark for a verse, if present.
func (s *bookmarkStore) Delete(ctx context.Context, verseID string) error {
	if _, err := s.store.db.ExecContext(ctx, `
		DELETE FROM bookmarks WHERE verse_id = ?
	`, verseID); err != nil {
		return fmt.Errorf("deleting bookmark: %w", err)
	}
	return nil
}

// List returns all bookmarks, newest first.
func (s *bookmarkStore) List(ctx context.Context) ([]domain.Bookmark, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, verse_id, created_at
		FROM bookmarks
		ORDER BY created_at DESC, verse_id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying bookmarks: %w", err)
	}
	defer rows.Close()

	var bookmarks []domain.Bookmark
	for rows.Next() {
		var b domain.Bookmark
		if err := rows.Scan(&b.ID, &b.VerseID, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning bookmark row: %w", err)
		}
		bookmarks = append(bookmarks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bookmark rows: %w", err)
	}
	return bookmarks, nil
}

// Exists reports whether a verse is bookmarked.
func (s *bookmarkStore) Exists(ctx context.Context, verseID string) (bool, error) {
	var one int
	err := s.store.db.QueryRowContext(ctx, `
		SELECT 1 FROM bookmarks WHERE verse_id = ?
	`, verseID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("checking bookmark: %w", err)
	}
	return true, nil
}
