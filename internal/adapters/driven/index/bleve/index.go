// Package bleve implements the search index port on an in-memory Bleve
// index. The index is rebuilt wholesale per corpus snapshot; rebuild
// scheduling and memoization live in the search service.
package bleve

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/riklabs/rigveda-cli/internal/core/domain"
	"github.com/riklabs/rigveda-cli/internal/core/ports/driven"
	"github.com/riklabs/rigveda-cli/internal/logger"
)

// Field boosts. Deity and theme hits matter more than a passing word in
// a long translation.
const (
	boostDeity       = 3.0
	boostTheme       = 2.5
	boostRishi       = 2.0
	boostTranslation = 1.5
	boostIAST        = 1.2
	boostSanskrit    = 1.0
	boostMeter       = 1.0
)

// fuzzyMinQueryLen guards short queries against fuzzy matching; one
// edit on a three-letter word matches far too much.
const fuzzyMinQueryLen = 4

// Ensure Index implements the interface.
var _ driven.SearchIndex = (*Index)(nil)

// Index is an in-memory Bleve index over the verse collection.
type Index struct {
	mu  sync.RWMutex
	idx bleve.Index
}

// New creates an empty index. Search returns ErrIndexNotReady until the
// first Rebuild.
func New() *Index {
	return &Index{}
}

// verseDoc is the flattened indexed form of a verse. Translations
// collapse to one field; ranking does not need per-translator fields.
type verseDoc struct {
	Sanskrit     string   `json:"sanskrit"`
	IAST         string   `json:"iast"`
	Translations string   `json:"translations"`
	Deity        string   `json:"deity"`
	Rishi        string   `json:"rishi"`
	Meter        string   `json:"meter"`
	Themes       []string `json:"themes"`
	Sort         string   `json:"sort"`
}

func buildMapping() mapping.IndexMapping {
	text := bleve.NewTextFieldMapping()
	text.Analyzer = en.AnalyzerName

	// Transliteration and Devanagari stay unstemmed.
	plain := bleve.NewTextFieldMapping()

	// The sort key must index verbatim to order hits.
	sortField := bleve.NewTextFieldMapping()
	sortField.Analyzer = keyword.Name

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt("sanskrit", plain)
	doc.AddFieldMappingsAt("iast", plain)
	doc.AddFieldMappingsAt("translations", text)
	doc.AddFieldMappingsAt("deity", text)
	doc.AddFieldMappingsAt("rishi", text)
	doc.AddFieldMappingsAt("meter", text)
	doc.AddFieldMappingsAt("themes", text)
	doc.AddFieldMappingsAt("sort", sortField)

	m := bleve.NewIndexMapping()
	m.DefaultMapping = doc
	return m
}

// Rebuild replaces the index contents with the given collection.
func (x *Index) Rebuild(_ context.Context, verses []domain.Verse) error {
	idx, err := bleve.NewMemOnly(buildMapping())
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}

	batch := idx.NewBatch()
	for i := range verses {
		v := &verses[i]
		if err := batch.Index(v.ID, toDoc(v)); err != nil {
			idx.Close()
			return fmt.Errorf("index %s: %w", v.ID, err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		idx.Close()
		return fmt.Errorf("commit batch: %w", err)
	}

	x.mu.Lock()
	old := x.idx
	x.idx = idx
	x.mu.Unlock()

	if old != nil {
		if err := old.Close(); err != nil {
			logger.Warn("Closing previous index: %v", err)
		}
	}
	logger.Debug("Indexed %d verses", len(verses))
	return nil
}

func toDoc(v *domain.Verse) verseDoc {
	translations := make([]string, 0, len(v.Text.Translations))
	for _, tr := range v.Text.Translations {
		translations = append(translations, tr.Text)
	}

	deity := v.Metadata.Deity.Primary
	if v.Metadata.Deity.Secondary != "" {
		deity += " " + v.Metadata.Deity.Secondary
	}

	return verseDoc{
		Sanskrit:     v.Text.Sanskrit,
		IAST:         v.Text.IAST,
		Translations: strings.Join(translations, " "),
		Deity:        deity,
		Rishi:        v.Metadata.Rishi.Name,
		Meter:        v.Metadata.Meter,
		Themes:       v.Themes,
		Sort:         fmt.Sprintf("%02d.%03d.%03d", v.Mandala, v.Sukta, v.Verse),
	}
}

// Search runs a ranked query and returns up to limit hits. Ties on
// score break on the verse sort key, keeping result order stable.
func (x *Index) Search(ctx context.Context, queryText string, limit int) ([]driven.SearchHit, error) {
	x.mu.RLock()
	idx := x.idx
	x.mu.RUnlock()

	if idx == nil {
		return nil, domain.ErrIndexNotReady
	}
	if limit <= 0 {
		limit = domain.DefaultSearchLimit
	}

	request := bleve.NewSearchRequestOptions(buildQuery(queryText), limit, 0, false)
	request.SortBy([]string{"-_score", "sort"})

	result, err := idx.SearchInContext(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	hits := make([]driven.SearchHit, 0, len(result.Hits))
	for _, hit := range result.Hits {
		hits = append(hits, driven.SearchHit{VerseID: hit.ID, Score: hit.Score})
	}
	return hits, nil
}

// buildQuery combines per-field match queries into one disjunction.
// Longer queries also match with one edit of fuzziness so misspelled
// transliterated terms still hit.
func buildQuery(queryText string) query.Query {
	queryText = strings.TrimSpace(queryText)

	fields := []struct {
		name  string
		boost float64
	}{
		{"deity", boostDeity},
		{"themes", boostTheme},
		{"rishi", boostRishi},
		{"translations", boostTranslation},
		{"iast", boostIAST},
		{"sanskrit", boostSanskrit},
		{"meter", boostMeter},
	}

	var clauses []query.Query
	for _, f := range fields {
		match := bleve.NewMatchQuery(queryText)
		match.SetField(f.name)
		match.SetBoost(f.boost)
		clauses = append(clauses, match)

		if len(queryText) >= fuzzyMinQueryLen {
			fuzzy := bleve.NewMatchQuery(queryText)
			fuzzy.SetField(f.name)
			fuzzy.Fuzziness = 1
			// Exact hits must outrank fuzzy ones.
			fuzzy.SetBoost(f.boost / 2)
			clauses = append(clauses, fuzzy)
		}

		prefix := bleve.NewPrefixQuery(strings.ToLower(queryText))
		prefix.SetField(f.name)
		prefix.SetBoost(f.boost / 2)
		clauses = append(clauses, prefix)
	}

	return bleve.NewDisjunctionQuery(clauses...)
}

// Close releases the underlying index.
func (x *Index) Close() error {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.idx == nil {
		return nil
	}
	err := x.idx.Close()
	x.idx = nil
	return err
}
