package domain

// SearchOptions configures a search query.
type SearchOptions struct {
	// Limit is the maximum number of results (0 = default).
	Limit int

	// Offset is the number of results to skip.
	Offset int
}

// SearchResult represents a single search hit.
type SearchResult struct {
	// Verse is the matched verse, resolved from the current corpus so
	// downstream filtering can run against the full record.
	Verse Verse

	// Score is the relevance score, best first.
	Score float64
}

// SuggestionKind classifies where a search suggestion came from.
type SuggestionKind string

// Suggestion sources, in display priority order.
const (
	SuggestionHistory SuggestionKind = "history"
	SuggestionDeity   SuggestionKind = "deity"
	SuggestionRishi   SuggestionKind = "rishi"
	SuggestionMeter   SuggestionKind = "meter"
	SuggestionTheme   SuggestionKind = "theme"
)

// Suggestion is a typed completion offered while the user types a query.
type Suggestion struct {
	// Kind identifies the suggestion source.
	Kind SuggestionKind

	// Value is the text to substitute for the query.
	Value string

	// Label is the display form (e.g. "Deity: Agni").
	Label string
}

// DefaultSearchLimit caps results when the caller does not specify one.
const DefaultSearchLimit = 50
