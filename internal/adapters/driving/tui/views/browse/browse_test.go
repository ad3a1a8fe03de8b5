package browse

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riklabs/rigveda-cli/internal/adapters/driving/tui/messages"
	"github.com/riklabs/rigveda-cli/internal/core/domain"
)

// MockCorpusService implements driving.CorpusService for testing.
type MockCorpusService struct {
	LoadBookFunc func(ctx context.Context, mandala int) ([]domain.Verse, error)
}

func (m *MockCorpusService) LoadAll(_ context.Context) ([]domain.Verse, error) { return nil, nil }

func (m *MockCorpusService) LoadBook(ctx context.Context, mandala int) ([]domain.Verse, error) {
	if m.LoadBookFunc != nil {
		return m.LoadBookFunc(ctx, mandala)
	}
	return nil, nil
}

func (m *MockCorpusService) Verse(_ context.Context, _ string) (*domain.Verse, error) {
	return nil, domain.ErrNotFound
}

func (m *MockCorpusService) AudioURL(_ context.Context, _, _ int) (string, bool, error) {
	return "", false, nil
}

func (m *MockCorpusService) Geography(_ context.Context) ([]domain.GeographyEntry, error) {
	return nil, nil
}

func (m *MockCorpusService) Deities(_ context.Context) ([]domain.DeityEntry, error) {
	return nil, nil
}

func (m *MockCorpusService) Stats(_ context.Context) (domain.CorpusStats, error) {
	return domain.CorpusStats{}, nil
}

func (m *MockCorpusService) Daily(_ context.Context, _ time.Time) (*domain.Verse, error) {
	return nil, domain.ErrNotFound
}

func (m *MockCorpusService) Invalidate() {}

func bookVerses(mandala, n int) []domain.Verse {
	verses := make([]domain.Verse, n)
	for i := range verses {
		verses[i] = domain.Verse{
			ID:      "v",
			Mandala: mandala,
			Sukta:   1,
			Verse:   i + 1,
			Text:    domain.VerseText{IAST: "agnim ile purohitam"},
			Metadata: domain.VerseMetadata{
				Deity: domain.Deity{Primary: "Agni"},
			},
		}
	}
	return verses
}

// openBook drives the view through a book load request so a following
// VersesLoaded message matches the current request.
func openBook(t *testing.T, view *View, mandala int, verses []domain.Verse) *View {
	t.Helper()
	for view.Mandala() < mandala {
		view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	}
	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	updated, _ := view.Update(messages.VersesLoaded{Mandala: mandala, Verses: verses})
	return updated
}

func TestNewView(t *testing.T) {
	view := NewView(nil, nil, &MockCorpusService{})

	require.NotNil(t, view)
	assert.Equal(t, ModeMandalas, view.Mode())
	assert.Equal(t, 1, view.Mandala())
	assert.NoError(t, view.Err())
}

func TestView_MandalaNavigation(t *testing.T) {
	view := NewView(nil, nil, &MockCorpusService{})
	view.SetDimensions(100, 40)

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 1, view.Mandala())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, view.Mandala())

	for i := 0; i < 20; i++ {
		view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	}
	assert.Equal(t, domain.MandalaCount, view.Mandala())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, domain.MandalaCount-1, view.Mandala())
}

func TestView_EnterLoadsBook(t *testing.T) {
	var gotMandala int
	svc := &MockCorpusService{
		LoadBookFunc: func(_ context.Context, mandala int) ([]domain.Verse, error) {
			gotMandala = mandala
			return bookVerses(mandala, 3), nil
		},
	}
	view := NewView(nil, nil, svc)
	view.SetDimensions(100, 40)
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	loaded, ok := msg.(messages.VersesLoaded)
	require.True(t, ok)
	assert.Equal(t, 2, gotMandala)
	assert.Equal(t, 2, loaded.Mandala)
	assert.Len(t, loaded.Verses, 3)
	assert.NoError(t, loaded.Err)
}

func TestView_Update_VersesLoaded(t *testing.T) {
	view := NewView(nil, nil, &MockCorpusService{})
	view.SetDimensions(100, 40)

	updated := openBook(t, view, 3, bookVerses(3, 5))

	assert.Equal(t, ModeVerses, updated.Mode())
	assert.Equal(t, 3, updated.Mandala())
	require.NotNil(t, updated.SelectedVerse())
	assert.Equal(t, 3, updated.SelectedVerse().Mandala)
}

func TestView_Update_VersesLoadedError(t *testing.T) {
	view := NewView(nil, nil, &MockCorpusService{})
	view.SetDimensions(100, 40)
	for view.Mandala() < 3 {
		view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	}
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	updated, _ := view.Update(messages.VersesLoaded{Mandala: 3, Err: errors.New("corpus unavailable")})

	assert.Equal(t, ModeMandalas, updated.Mode())
	assert.Error(t, updated.Err())
}

func TestView_Update_StaleVersesLoadedDropped(t *testing.T) {
	view := NewView(nil, nil, &MockCorpusService{})
	view.SetDimensions(100, 40)

	// Request mandala 2, then change the selection and request mandala 5
	// before the first load settles.
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	for view.Mandala() < 5 {
		view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	}
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// The late mandala 2 result must not commit.
	updated, _ := view.Update(messages.VersesLoaded{Mandala: 2, Verses: bookVerses(2, 4)})
	assert.Equal(t, ModeMandalas, updated.Mode())
	assert.Equal(t, 5, updated.Mandala())

	// The current request still lands.
	updated, _ = updated.Update(messages.VersesLoaded{Mandala: 5, Verses: bookVerses(5, 2)})
	assert.Equal(t, ModeVerses, updated.Mode())
	assert.Equal(t, 5, updated.Mandala())
	require.NotNil(t, updated.SelectedVerse())
	assert.Equal(t, 5, updated.SelectedVerse().Mandala)
}

func TestView_VerseNavigationAndSelect(t *testing.T) {
	view := NewView(nil, nil, &MockCorpusService{})
	view.SetDimensions(100, 40)
	openBook(t, view, 1, bookVerses(1, 3))

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	selected, ok := msg.(messages.VerseSelected)
	require.True(t, ok)
	assert.Equal(t, 3, selected.Verse.Verse)
}

func TestView_EscBacksUpOneLevel(t *testing.T) {
	view := NewView(nil, nil, &MockCorpusService{})
	view.SetDimensions(100, 40)
	openBook(t, view, 1, bookVerses(1, 3))
	require.Equal(t, ModeVerses, view.Mode())

	updated, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, ModeMandalas, updated.Mode())
	assert.Nil(t, cmd)
}

func TestView_EscFromMandalasReturnsToMenu(t *testing.T) {
	view := NewView(nil, nil, &MockCorpusService{})
	view.SetDimensions(100, 40)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	msg := cmd()
	changed, ok := msg.(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}

func TestView_View(t *testing.T) {
	t.Run("not ready", func(t *testing.T) {
		view := NewView(nil, nil, &MockCorpusService{})

		assert.Contains(t, view.View(), "Initialising")
	})

	t.Run("mandala list", func(t *testing.T) {
		view := NewView(nil, nil, &MockCorpusService{})
		view.SetDimensions(100, 40)

		rendered := view.View()
		assert.Contains(t, rendered, "Browse")
		assert.Contains(t, rendered, "Mandala 1")
		assert.Contains(t, rendered, "Mandala 10")
	})

	t.Run("verse list", func(t *testing.T) {
		view := NewView(nil, nil, &MockCorpusService{})
		view.SetDimensions(100, 40)
		openBook(t, view, 7, bookVerses(7, 2))

		rendered := view.View()
		assert.Contains(t, rendered, "Mandala 7")
		assert.Contains(t, rendered, "7.1.1")
	})
}

func TestView_Reset(t *testing.T) {
	view := NewView(nil, nil, &MockCorpusService{})
	view.SetDimensions(100, 40)
	openBook(t, view, 2, bookVerses(2, 3))

	view.Reset()

	assert.Equal(t, ModeMandalas, view.Mode())
	assert.Nil(t, view.SelectedVerse())
	assert.NoError(t, view.Err())
}
