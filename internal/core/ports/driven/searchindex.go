package driven

import (
	"context"

	"github.com/riklabs/rigveda-cli/internal/core/domain"
)

// SearchIndex provides fuzzy full-text search over one corpus snapshot.
// Backed by Bleve. An index belongs to exactly one collection: the search
// service rebuilds it whenever the source collection changes and never
// queries a stale index.
type SearchIndex interface {
	// Rebuild replaces the index contents with the given verses.
	Rebuild(ctx context.Context, verses []domain.Verse) error

	// Search returns matching verse IDs ranked best-first. Ties and
	// equal-score runs are broken by natural verse order, so results
	// are stable across repeated calls.
	Search(ctx context.Context, query string, limit int) ([]SearchHit, error)

	// Close releases index resources.
	Close() error
}

// SearchHit is one match from the index.
type SearchHit struct {
	// VerseID identifies the matched verse.
	VerseID string

	// Score is the relevance score.
	Score float64
}
