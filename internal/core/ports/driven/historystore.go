package driven

import "context"

// HistoryStore persists the recent-query list. Backed by SQLite.
//
// The store holds the list verbatim; ordering, deduplication, and
// truncation are the history service's responsibility. Load failures
// from missing or corrupt data surface as an empty list, never an error.
type HistoryStore interface {
	// List returns the persisted history, most recent first.
	List(ctx context.Context) ([]string, error)

	// Replace overwrites the persisted history with the given list.
	Replace(ctx context.Context, queries []string) error

	// Clear removes the persisted history entirely.
	Clear(ctx context.Context) error
}
