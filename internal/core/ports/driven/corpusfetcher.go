package driven

import (
	"context"

	"github.com/riklabs/rigveda-cli/internal/core/domain"
)

// CorpusFetcher retrieves corpus resources from their upstream location
// (HTTP endpoint or local data directory). Implementations normalise the
// shape-tolerant partition format at the ingestion boundary and return
// plain verse slices; caching, retries, and merging belong to the
// corpus service.
type CorpusFetcher interface {
	// FetchBook retrieves one mandala partition. The response may be a
	// bare array, a {"verses": [...]} wrapper, or a {"data": [...]}
	// wrapper; all three are accepted.
	FetchBook(ctx context.Context, mandala int) ([]domain.Verse, error)

	// FetchLegacy retrieves the legacy single-file corpus resource,
	// with the same shape tolerance. Used only when the per-partition
	// load yields no verses.
	FetchLegacy(ctx context.Context) ([]domain.Verse, error)

	// FetchAudioIndex retrieves the mandala -> sukta -> URL audio map.
	FetchAudioIndex(ctx context.Context) (domain.AudioIndex, error)

	// FetchGeography retrieves the geographic reference entries.
	FetchGeography(ctx context.Context) ([]domain.GeographyEntry, error)

	// FetchDeities retrieves the deity reference entries.
	FetchDeities(ctx context.Context) ([]domain.DeityEntry, error)
}
