package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/riklabs/rigveda-cli/internal/core/domain"
)

// SearchInput is the input schema for the search_verses tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"free-text query matched against deities, themes, rishis, and translations"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchOutput is the output schema for the search_verses tool.
type SearchOutput struct {
	Results []VerseSummary `json:"results"`
	Count   int            `json:"count"`
}

// VerseSummary is the compact verse form returned by tools.
type VerseSummary struct {
	ID          string   `json:"id"`
	Ref         string   `json:"ref"`
	Deity       string   `json:"deity,omitempty"`
	Rishi       string   `json:"rishi,omitempty"`
	Meter       string   `json:"meter,omitempty"`
	Themes      []string `json:"themes,omitempty"`
	Translation string   `json:"translation,omitempty"`
	Score       float64  `json:"score,omitempty"`
}

// GetVerseInput is the input schema for the get_verse tool.
type GetVerseInput struct {
	Verse string `json:"verse" jsonschema:"verse ID or mandala.sukta.verse reference, e.g. 1.1.1"`
}

// BrowseInput is the input schema for the browse_verses tool.
type BrowseInput struct {
	Query   string `json:"query,omitempty" jsonschema:"optional free-text query"`
	Mandala int    `json:"mandala,omitempty" jsonschema:"restrict to one book (1-10)"`
	Sukta   int    `json:"sukta,omitempty" jsonschema:"restrict to one hymn within the book"`
	Deity   string `json:"deity,omitempty" jsonschema:"filter by deity name"`
	Rishi   string `json:"rishi,omitempty" jsonschema:"filter by rishi name"`
	Meter   string `json:"meter,omitempty" jsonschema:"filter by poetic meter"`
	Theme   string `json:"theme,omitempty" jsonschema:"filter by theme tag"`
	Limit   int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 25)"`
}

// BrowseOutput is the output schema for the browse_verses tool.
type BrowseOutput struct {
	Verses []VerseSummary `json:"verses"`
	Count  int            `json:"count"`
}

// SuggestInput is the input schema for the suggest_queries tool.
type SuggestInput struct {
	Partial string `json:"partial" jsonschema:"partial query text, at least two characters"`
}

// SuggestOutput is the output schema for the suggest_queries tool.
type SuggestOutput struct {
	Suggestions []QuerySuggestion `json:"suggestions"`
}

// QuerySuggestion is one typed completion for a partial query.
type QuerySuggestion struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
	Label string `json:"label"`
}

// DailyInput is the input schema for the daily_verse tool.
type DailyInput struct {
	Date string `json:"date,omitempty" jsonschema:"date in YYYY-MM-DD form (default today)"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_verses",
		Description: "Search the Rigveda corpus by deity, theme, rishi, or translated text",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_verse",
		Description: "Fetch one verse with its full text, translations, and metadata",
	}, s.handleGetVerse)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "browse_verses",
		Description: "List verses matching combined filters (mandala, deity, rishi, meter, theme)",
	}, s.handleBrowse)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "suggest_queries",
		Description: "Complete a partial query from search history, deities, rishis, meters, and themes",
	}, s.handleSuggest)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "daily_verse",
		Description: "Return the featured verse for a date; the pick is deterministic per date",
	}, s.handleDaily)
}

// handleSearch handles the search_verses tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	opts := domain.SearchOptions{Limit: limit}
	results, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	if s.ports.History != nil && input.Query != "" {
		// History failures never fail the search itself.
		_ = s.ports.History.Record(ctx, input.Query)
	}

	output := SearchOutput{
		Results: make([]VerseSummary, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = summarise(&results[i].Verse)
		output.Results[i].Score = results[i].Score
	}

	return nil, output, nil
}

// handleGetVerse handles the get_verse tool invocation.
func (s *Server) handleGetVerse(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetVerseInput,
) (*mcp.CallToolResult, *domain.Verse, error) {
	verse, err := s.ports.Corpus.Verse(ctx, input.Verse)
	if err != nil {
		return nil, nil, err
	}
	return nil, verse, nil
}

// handleBrowse handles the browse_verses tool invocation.
func (s *Server) handleBrowse(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input BrowseInput,
) (*mcp.CallToolResult, BrowseOutput, error) {
	spec := domain.FilterSpec{
		Query:   input.Query,
		Mandala: input.Mandala,
		Sukta:   input.Sukta,
		Deity:   input.Deity,
		Rishi:   input.Rishi,
		Meter:   input.Meter,
		Theme:   input.Theme,
	}

	verses, err := s.ports.Search.Browse(ctx, spec)
	if err != nil {
		return nil, BrowseOutput{}, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 25
	}
	if limit < len(verses) {
		verses = verses[:limit]
	}

	output := BrowseOutput{
		Verses: make([]VerseSummary, len(verses)),
		Count:  len(verses),
	}
	for i := range verses {
		output.Verses[i] = summarise(&verses[i])
	}

	return nil, output, nil
}

// handleSuggest handles the suggest_queries tool invocation.
func (s *Server) handleSuggest(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SuggestInput,
) (*mcp.CallToolResult, SuggestOutput, error) {
	suggestions, err := s.ports.Search.Suggest(ctx, input.Partial)
	if err != nil {
		return nil, SuggestOutput{}, err
	}

	output := SuggestOutput{
		Suggestions: make([]QuerySuggestion, len(suggestions)),
	}
	for i, suggestion := range suggestions {
		output.Suggestions[i] = QuerySuggestion{
			Kind:  string(suggestion.Kind),
			Value: suggestion.Value,
			Label: suggestion.Label,
		}
	}

	return nil, output, nil
}

// handleDaily handles the daily_verse tool invocation.
func (s *Server) handleDaily(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DailyInput,
) (*mcp.CallToolResult, *domain.Verse, error) {
	date := time.Now()
	if input.Date != "" {
		parsed, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			return nil, nil, err
		}
		date = parsed
	}

	verse, err := s.ports.Corpus.Daily(ctx, date)
	if err != nil {
		return nil, nil, err
	}
	return nil, verse, nil
}

// summarise reduces a verse to the compact tool output form, preferring
// the first English translation for the snippet.
func summarise(v *domain.Verse) VerseSummary {
	summary := VerseSummary{
		ID:     v.ID,
		Ref:    v.Ref().String(),
		Deity:  v.Metadata.Deity.Primary,
		Rishi:  v.Metadata.Rishi.Name,
		Meter:  v.Metadata.Meter,
		Themes: v.Themes,
	}
	if len(v.Text.Translations) > 0 {
		summary.Translation = v.Text.Translations[0].Text
	}
	return summary
}
