package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"

	"github.com/riklabs/rigveda-cli/internal/core/domain"
	"github.com/riklabs/rigveda-cli/internal/core/ports/driven"
	"github.com/riklabs/rigveda-cli/internal/core/ports/driving"
	"github.com/riklabs/rigveda-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// Suggestion caps per source, and overall. Matches the reference UI:
// history and the larger metadata pools get three slots each, meters and
// themes two, ten in total.
const (
	suggestHistoryMax = 3
	suggestDeityMax   = 3
	suggestRishiMax   = 3
	suggestMeterMax   = 2
	suggestThemeMax   = 2
	suggestTotalMax   = 10

	suggestMinQueryLen = 2
)

// SearchService answers fuzzy queries over the corpus. The underlying
// index is memoized per corpus snapshot: a fingerprint of the collection
// decides whether the index can be reused or must be rebuilt, so a query
// never runs against an index built from a different collection.
type SearchService struct {
	corpus  driving.CorpusService
	index   driven.SearchIndex
	history driving.HistoryService

	mu          sync.Mutex
	fingerprint string
}

// NewSearchService creates a search service. The history service is
// optional (nil disables history-sourced suggestions).
func NewSearchService(corpus driving.CorpusService, index driven.SearchIndex, history driving.HistoryService) *SearchService {
	return &SearchService{
		corpus:  corpus,
		index:   index,
		history: history,
	}
}

// Search performs a ranked fuzzy search over the full corpus.
func (s *SearchService) Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.SearchResult{}, nil
	}

	verses, err := s.corpus.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	return s.searchCollection(ctx, verses, query, opts)
}

// Browse evaluates a full filter spec. The source collection is the
// filtered mandala when one is selected (so a single-book view never
// pays the full-corpus cost), otherwise the whole corpus. When the
// spec's query matched at least one verse the categorical predicates
// run over the search results; otherwise over the source collection.
func (s *SearchService) Browse(ctx context.Context, spec domain.FilterSpec) ([]domain.Verse, error) {
	var (
		source []domain.Verse
		err    error
	)
	if spec.Mandala != 0 {
		source, err = s.corpus.LoadBook(ctx, spec.Mandala)
	} else {
		source, err = s.corpus.LoadAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("browse: %w", err)
	}

	base := source
	if q := strings.TrimSpace(spec.Query); q != "" {
		results, err := s.searchCollection(ctx, source, q, domain.SearchOptions{Limit: len(source)})
		if err != nil {
			return nil, fmt.Errorf("browse: %w", err)
		}
		// A query with zero matches falls through to the unsearched
		// source, mirroring the reference behaviour.
		if len(results) > 0 {
			base = make([]domain.Verse, len(results))
			for i := range results {
				base[i] = results[i].Verse
			}
		}
	}

	return spec.Apply(base), nil
}

// searchCollection runs a query against one collection, rebuilding the
// index first if the collection changed since the last build.
func (s *SearchService) searchCollection(ctx context.Context, verses []domain.Verse, query string, opts domain.SearchOptions) ([]domain.SearchResult, error) {
	if err := s.ensureIndex(ctx, verses); err != nil {
		return nil, err
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = domain.DefaultSearchLimit
	}

	// Fetch past the offset so pagination slices a full window.
	hits, err := s.index.Search(ctx, query, limit+opts.Offset)
	if err != nil {
		return nil, fmt.Errorf("index search: %w", err)
	}
	logger.Debug("Index returned %d hits", len(hits))

	byID := make(map[string]*domain.Verse, len(verses))
	for i := range verses {
		byID[verses[i].ID] = &verses[i]
	}

	results := make([]domain.SearchResult, 0, len(hits))
	for _, hit := range hits {
		v, ok := byID[hit.VerseID]
		if !ok {
			// Hit from a verse not in this collection; should not
			// happen with a fresh index.
			continue
		}
		results = append(results, domain.SearchResult{Verse: *v, Score: hit.Score})
	}

	// Equal scores tie-break on natural verse order so result order is
	// stable across repeated calls.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Verse.Ref().Compare(results[j].Verse.Ref()) < 0
	})

	if opts.Offset >= len(results) {
		return []domain.SearchResult{}, nil
	}
	end := opts.Offset + limit
	if end > len(results) {
		end = len(results)
	}
	return results[opts.Offset:end], nil
}

// ensureIndex rebuilds the index when the collection fingerprint
// changed. The fingerprint hashes every verse ID in order, so swapping
// between whole-corpus and single-book collections always rebuilds.
func (s *SearchService) ensureIndex(ctx context.Context, verses []domain.Verse) error {
	fp := fingerprint(verses)

	s.mu.Lock()
	defer s.mu.Unlock()

	if fp == s.fingerprint {
		return nil
	}

	logger.Info("Rebuilding search index for %d verses", len(verses))
	if err := s.index.Rebuild(ctx, verses); err != nil {
		return fmt.Errorf("rebuild index: %w", err)
	}
	s.fingerprint = fp
	return nil
}

// fingerprint identifies a corpus snapshot by its member IDs.
func fingerprint(verses []domain.Verse) string {
	h := fnv.New64a()
	for i := range verses {
		h.Write([]byte(verses[i].ID))
		h.Write([]byte{0})
	}
	return strconv.Itoa(len(verses)) + ":" + strconv.FormatUint(h.Sum64(), 16)
}

// Suggest offers typed completions for a partial query: recent history
// entries first, then deities, rishis, meters, and themes drawn from the
// corpus metadata, each pool fuzzy-ranked against the query.
func (s *SearchService) Suggest(ctx context.Context, query string) ([]domain.Suggestion, error) {
	query = strings.TrimSpace(query)
	if len(query) < suggestMinQueryLen {
		return nil, nil
	}

	var suggestions []domain.Suggestion

	if s.history != nil {
		entries, err := s.history.List(ctx)
		if err == nil {
			for _, match := range rankMatches(query, entries, suggestHistoryMax) {
				suggestions = append(suggestions, domain.Suggestion{
					Kind:  domain.SuggestionHistory,
					Value: match,
					Label: match,
				})
			}
		}
	}

	verses, err := s.corpus.LoadAll(ctx)
	if err != nil {
		// Suggestions degrade to history-only when the corpus is down.
		logger.Warn("Suggestions without corpus metadata: %v", err)
		return suggestions, nil
	}

	deities := make(map[string]struct{})
	rishis := make(map[string]struct{})
	meters := make(map[string]struct{})
	themes := make(map[string]struct{})
	for i := range verses {
		v := &verses[i]
		if d := v.Metadata.Deity.Primary; d != "" {
			deities[d] = struct{}{}
		}
		if r := v.Metadata.Rishi.Name; r != "" {
			rishis[r] = struct{}{}
		}
		if m := v.Metadata.Meter; m != "" {
			meters[m] = struct{}{}
		}
		for _, t := range v.Themes {
			themes[t] = struct{}{}
		}
	}

	pools := []struct {
		kind   domain.SuggestionKind
		values map[string]struct{}
		max    int
		label  string
	}{
		{domain.SuggestionDeity, deities, suggestDeityMax, "Deity: "},
		{domain.SuggestionRishi, rishis, suggestRishiMax, "Rishi: "},
		{domain.SuggestionMeter, meters, suggestMeterMax, "Meter: "},
		{domain.SuggestionTheme, themes, suggestThemeMax, "Theme: "},
	}
	for _, pool := range pools {
		for _, match := range rankMatches(query, sortedKeys(pool.values), pool.max) {
			suggestions = append(suggestions, domain.Suggestion{
				Kind:  pool.kind,
				Value: match,
				Label: pool.label + match,
			})
		}
	}

	if len(suggestions) > suggestTotalMax {
		suggestions = suggestions[:suggestTotalMax]
	}
	return suggestions, nil
}

// rankMatches fuzzy-ranks candidates against the query and returns the
// top max values.
func rankMatches(query string, candidates []string, max int) []string {
	matches := fuzzy.Find(strings.ToLower(query), lowered(candidates))
	out := make([]string, 0, max)
	for _, m := range matches {
		out = append(out, candidates[m.Index])
		if len(out) == max {
			break
		}
	}
	return out
}

func lowered(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
