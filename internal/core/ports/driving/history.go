package driving

import "context"

// HistoryService records and replays recent search queries.
type HistoryService interface {
	// Record pushes a query to the front of history: blank input is
	// ignored, a prior occurrence moves to the front instead of
	// duplicating, and the list is truncated to the configured maximum.
	Record(ctx context.Context, query string) error

	// List returns the history, most recent first.
	List(ctx context.Context) ([]string, error)

	// Remove deletes a single entry without affecting the others' order.
	Remove(ctx context.Context, query string) error

	// Clear empties the history and removes the persisted copy.
	Clear(ctx context.Context) error
}
