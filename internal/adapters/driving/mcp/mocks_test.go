package mcp

import (
	"context"
	"time"

	"github.com/riklabs/rigveda-cli/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results     []domain.SearchResult
	verses      []domain.Verse
	suggestions []domain.Suggestion
	err         error
}

func (m *mockSearchService) Search(
	_ context.Context,
	_ string,
	_ domain.SearchOptions,
) ([]domain.SearchResult, error) {
	return m.results, m.err
}

func (m *mockSearchService) Browse(_ context.Context, _ domain.FilterSpec) ([]domain.Verse, error) {
	return m.verses, m.err
}

func (m *mockSearchService) Suggest(_ context.Context, _ string) ([]domain.Suggestion, error) {
	return m.suggestions, m.err
}

// mockCorpusService is a mock implementation of driving.CorpusService.
type mockCorpusService struct {
	verses   []domain.Verse
	verse    *domain.Verse
	audioURL string
	audioOK  bool
	regions  []domain.GeographyEntry
	deities  []domain.DeityEntry
	stats    domain.CorpusStats
	err      error
}

func (m *mockCorpusService) LoadAll(_ context.Context) ([]domain.Verse, error) {
	return m.verses, m.err
}

func (m *mockCorpusService) LoadBook(_ context.Context, _ int) ([]domain.Verse, error) {
	return m.verses, m.err
}

func (m *mockCorpusService) Verse(_ context.Context, _ string) (*domain.Verse, error) {
	return m.verse, m.err
}

func (m *mockCorpusService) AudioURL(_ context.Context, _, _ int) (string, bool, error) {
	return m.audioURL, m.audioOK, m.err
}

func (m *mockCorpusService) Geography(_ context.Context) ([]domain.GeographyEntry, error) {
	return m.regions, m.err
}

func (m *mockCorpusService) Deities(_ context.Context) ([]domain.DeityEntry, error) {
	return m.deities, m.err
}

func (m *mockCorpusService) Stats(_ context.Context) (domain.CorpusStats, error) {
	return m.stats, m.err
}

func (m *mockCorpusService) Daily(_ context.Context, _ time.Time) (*domain.Verse, error) {
	return m.verse, m.err
}

func (m *mockCorpusService) Invalidate() {}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	recorded []string
	queries  []string
	err      error
}

func (m *mockHistoryService) Record(_ context.Context, query string) error {
	m.recorded = append(m.recorded, query)
	return m.err
}

func (m *mockHistoryService) List(_ context.Context) ([]string, error) {
	return m.queries, m.err
}

func (m *mockHistoryService) Remove(_ context.Context, _ string) error {
	return m.err
}

func (m *mockHistoryService) Clear(_ context.Context) error {
	return m.err
}
