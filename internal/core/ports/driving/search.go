package driving

import (
	"context"

	"github.com/riklabs/rigveda-cli/internal/core/domain"
)

// SearchService answers ranked fuzzy queries and combined filter
// evaluations over the current corpus.
type SearchService interface {
	// Search returns ranked matches for a free-text query. An empty or
	// whitespace-only query yields an empty result list.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)

	// Browse evaluates a full filter spec: when the spec's Query matched
	// at least one verse the categorical predicates apply to the search
	// results, otherwise to the whole source collection.
	Browse(ctx context.Context, spec domain.FilterSpec) ([]domain.Verse, error)

	// Suggest offers typed completions for a partial query, drawn from
	// search history and corpus metadata. Queries shorter than two
	// characters yield nothing.
	Suggest(ctx context.Context, query string) ([]domain.Suggestion, error)
}
