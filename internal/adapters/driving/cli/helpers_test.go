package cli

import (
	"bytes"
	"context"
	"time"

	"github.com/riklabs/rigveda-cli/internal/core/domain"
)

// mockCorpusService implements driving.CorpusService for testing.
type mockCorpusService struct {
	VerseFunc    func(ctx context.Context, idOrRef string) (*domain.Verse, error)
	AudioURLFunc func(ctx context.Context, mandala, sukta int) (string, bool, error)
	StatsFunc    func(ctx context.Context) (domain.CorpusStats, error)
	DailyFunc    func(ctx context.Context, date time.Time) (*domain.Verse, error)
}

func (m *mockCorpusService) LoadAll(_ context.Context) ([]domain.Verse, error) { return nil, nil }

func (m *mockCorpusService) LoadBook(_ context.Context, _ int) ([]domain.Verse, error) {
	return nil, nil
}

func (m *mockCorpusService) Verse(ctx context.Context, idOrRef string) (*domain.Verse, error) {
	if m.VerseFunc != nil {
		return m.VerseFunc(ctx, idOrRef)
	}
	return nil, domain.ErrNotFound
}

func (m *mockCorpusService) AudioURL(ctx context.Context, mandala, sukta int) (string, bool, error) {
	if m.AudioURLFunc != nil {
		return m.AudioURLFunc(ctx, mandala, sukta)
	}
	return "", false, nil
}

func (m *mockCorpusService) Geography(_ context.Context) ([]domain.GeographyEntry, error) {
	return nil, nil
}

func (m *mockCorpusService) Deities(_ context.Context) ([]domain.DeityEntry, error) {
	return nil, nil
}

func (m *mockCorpusService) Stats(ctx context.Context) (domain.CorpusStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return domain.CorpusStats{}, nil
}

func (m *mockCorpusService) Daily(ctx context.Context, date time.Time) (*domain.Verse, error) {
	if m.DailyFunc != nil {
		return m.DailyFunc(ctx, date)
	}
	return nil, domain.ErrNotFound
}

func (m *mockCorpusService) Invalidate() {}

// mockSearchService implements driving.SearchService for testing.
type mockSearchService struct {
	SearchFunc func(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)
	BrowseFunc func(ctx context.Context, spec domain.FilterSpec) ([]domain.Verse, error)
}

func (m *mockSearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, opts)
	}
	return nil, nil
}

func (m *mockSearchService) Browse(ctx context.Context, spec domain.FilterSpec) ([]domain.Verse, error) {
	if m.BrowseFunc != nil {
		return m.BrowseFunc(ctx, spec)
	}
	return nil, nil
}

func (m *mockSearchService) Suggest(_ context.Context, _ string) ([]domain.Suggestion, error) {
	return nil, nil
}

// mockHistoryService implements driving.HistoryService for testing.
type mockHistoryService struct {
	Entries  []string
	Recorded []string
	Err      error
}

func (m *mockHistoryService) Record(_ context.Context, query string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Recorded = append(m.Recorded, query)
	return nil
}

func (m *mockHistoryService) List(_ context.Context) ([]string, error) {
	return m.Entries, m.Err
}

func (m *mockHistoryService) Remove(_ context.Context, _ string) error { return m.Err }
func (m *mockHistoryService) Clear(_ context.Context) error            { return m.Err }

// mockBookmarkService implements driving.BookmarkService for testing.
type mockBookmarkService struct {
	Bookmarks  []domain.Bookmark
	Bookmarked bool
	Added      []string
	Removed    []string
	Err        error
}

func (m *mockBookmarkService) Add(_ context.Context, verseID string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Added = append(m.Added, verseID)
	return nil
}

func (m *mockBookmarkService) Remove(_ context.Context, verseID string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Removed = append(m.Removed, verseID)
	return nil
}

func (m *mockBookmarkService) Toggle(_ context.Context, _ string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	m.Bookmarked = !m.Bookmarked
	return m.Bookmarked, nil
}

func (m *mockBookmarkService) List(_ context.Context) ([]domain.Bookmark, error) {
	return m.Bookmarks, m.Err
}

func (m *mockBookmarkService) IsBookmarked(_ context.Context, _ string) (bool, error) {
	return m.Bookmarked, m.Err
}

// mockSettingsService implements driving.SettingsService for testing.
type mockSettingsService struct {
	Settings domain.ReadingSettings
	Saved    *domain.ReadingSettings
	SetCalls map[string]string
	Err      error
}

func newMockSettingsService() *mockSettingsService {
	return &mockSettingsService{
		Settings: domain.DefaultReadingSettings(),
		SetCalls: make(map[string]string),
	}
}

func (m *mockSettingsService) Get() (domain.ReadingSettings, error) {
	return m.Settings, m.Err
}

func (m *mockSettingsService) Save(settings domain.ReadingSettings) error {
	if m.Err != nil {
		return m.Err
	}
	m.Saved = &settings
	return nil
}

func (m *mockSettingsService) Set(key, value string) error {
	if m.Err != nil {
		return m.Err
	}
	m.SetCalls[key] = value
	return nil
}

func (m *mockSettingsService) GetDefaults() domain.ReadingSettings {
	return domain.DefaultReadingSettings()
}

// setupTestServices wires default mocks and returns a cleanup that
// restores the previous wiring.
func setupTestServices() func() {
	return setupServices(Services{
		Corpus:    &mockCorpusService{},
		Search:    &mockSearchService{},
		History:   &mockHistoryService{},
		Bookmarks: &mockBookmarkService{},
		Settings:  newMockSettingsService(),
	})
}

// setupServices wires the given services and returns a cleanup that
// restores the previous wiring.
func setupServices(s Services) func() {
	old := Services{
		Corpus:    corpusService,
		Search:    searchService,
		History:   historyService,
		Bookmarks: bookmarkService,
		Settings:  settingsService,
	}
	Wire(s)
	return func() {
		Wire(old)
	}
}

// executeCommand runs the root command with args and captures output.
func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

// sampleVerse builds a fully-populated verse for command output tests.
func sampleVerse(id string, mandala, sukta, verse int, deity string) *domain.Verse {
	return &domain.Verse{
		ID:      id,
		Mandala: mandala,
		Sukta:   sukta,
		Verse:   verse,
		Text: domain.VerseText{
			Sanskrit: "अग्निमीळे पुरोहितम्",
			IAST:     "agnim ile purohitam",
			Translations: []domain.Translation{
				{Language: "en", Translator: "Griffith", Text: "I laud " + deity + ", the chosen priest"},
			},
		},
		Metadata: domain.VerseMetadata{
			Deity: domain.Deity{Primary: deity},
			Rishi: domain.Rishi{Name: "Madhuchchhandas"},
			Meter: "Gayatri",
		},
		Themes: []string{"praise"},
	}
}
