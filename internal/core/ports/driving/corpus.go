package driving

import (
	"context"
	"time"

	"github.com/riklabs/rigveda-cli/internal/core/domain"
)

// CorpusService loads and serves the verse corpus.
//
// Loads are cached per key ("all" or a mandala number) with a freshness
// window; concurrent requests for the same key share one in-flight fetch.
// Loading never panics on upstream failure: a total failure yields an
// empty slice plus domain.ErrCorpusUnavailable.
type CorpusService interface {
	// LoadAll returns every verse in the corpus, merged from all book
	// partitions (falling back to the legacy single-file resource),
	// deduplicated by ID and in natural order.
	LoadAll(ctx context.Context) ([]domain.Verse, error)

	// LoadBook returns the verses of one mandala (1..10).
	LoadBook(ctx context.Context, mandala int) ([]domain.Verse, error)

	// Verse resolves a single verse by ID or by "m.s.v" reference,
	// loading its owning book if needed.
	Verse(ctx context.Context, idOrRef string) (*domain.Verse, error)

	// AudioURL returns the recitation URL for (mandala, sukta).
	// ok is false when no recording exists; that is not an error.
	AudioURL(ctx context.Context, mandala, sukta int) (url string, ok bool, err error)

	// Geography returns the geographic reference entries.
	Geography(ctx context.Context) ([]domain.GeographyEntry, error)

	// Deities returns the deity reference entries.
	Deities(ctx context.Context) ([]domain.DeityEntry, error)

	// Stats aggregates the loaded corpus.
	Stats(ctx context.Context) (domain.CorpusStats, error)

	// Daily returns the featured verse for a date. The pick is
	// deterministic: the same date always yields the same verse.
	Daily(ctx context.Context, date time.Time) (*domain.Verse, error)

	// Invalidate drops cached data so the next load refetches.
	Invalidate()
}
