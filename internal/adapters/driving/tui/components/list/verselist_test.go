package list

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riklabs/rigveda-cli/internal/adapters/driving/tui/styles"
	"github.com/riklabs/rigveda-cli/internal/core/domain"
)

func testVerses() []domain.Verse {
	return []domain.Verse{
		{
			ID: "rv-1-1-1", Mandala: 1, Sukta: 1, Verse: 1,
			Text: domain.VerseText{
				IAST: "agnim ile purohitam",
				Translations: []domain.Translation{
					{Language: "en", Translator: "Griffith", Text: "I laud Agni, the chosen priest"},
				},
			},
			Metadata: domain.VerseMetadata{
				Deity: domain.Deity{Primary: "Agni"},
				Meter: "Gayatri",
			},
		},
		{
			ID: "rv-1-1-2", Mandala: 1, Sukta: 1, Verse: 2,
			Text: domain.VerseText{
				IAST: "agnih purvebhir rsibhir",
			},
			Metadata: domain.VerseMetadata{
				Deity: domain.Deity{Primary: "Agni"},
			},
		},
		{
			ID: "rv-10-129-1", Mandala: 10, Sukta: 129, Verse: 1,
			Text: domain.VerseText{
				Sanskrit: "नासदासीन्नो सदासीत्",
			},
			Metadata: domain.VerseMetadata{
				Deity: domain.Deity{Primary: "Creation"},
			},
		},
	}
}

func TestNewVerseList(t *testing.T) {
	l := NewVerseList(styles.DefaultStyles())

	require.NotNil(t, l)
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Count())
	assert.Nil(t, l.SelectedVerse())
}

func TestNewVerseList_NilStyles(t *testing.T) {
	l := NewVerseList(nil)

	require.NotNil(t, l)
	assert.NotNil(t, l.styles)
}

func TestVerseList_SetVerses(t *testing.T) {
	l := NewVerseList(nil)

	l.SetVerses(testVerses())

	assert.Equal(t, 3, l.Count())
	assert.Equal(t, 0, l.Selected())
	for _, item := range l.Items() {
		assert.False(t, item.HasScore)
	}
}

func TestVerseList_SetResults(t *testing.T) {
	l := NewVerseList(nil)
	verses := testVerses()

	l.SetResults([]domain.SearchResult{
		{Verse: verses[0], Score: 0.9},
		{Verse: verses[1], Score: 0.5},
	})

	require.Equal(t, 2, l.Count())
	assert.True(t, l.Items()[0].HasScore)
	assert.InDelta(t, 0.9, l.Items()[0].Score, 0.001)
}

func TestVerseList_SetVerses_ResetsSelection(t *testing.T) {
	l := NewVerseList(nil)
	l.SetVerses(testVerses())
	l.SetSelected(2)

	l.SetVerses(testVerses()[:1])

	assert.Equal(t, 0, l.Selected())
}

func TestVerseList_Navigation(t *testing.T) {
	l := NewVerseList(nil)
	l.SetVerses(testVerses())

	l.MoveUp()
	assert.Equal(t, 0, l.Selected())

	l.MoveDown()
	assert.Equal(t, 1, l.Selected())

	l.MoveDown()
	l.MoveDown()
	assert.Equal(t, 2, l.Selected())

	l.MoveUp()
	assert.Equal(t, 1, l.Selected())
}

func TestVerseList_Update_Keys(t *testing.T) {
	l := NewVerseList(nil)
	l.SetVerses(testVerses())

	l.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, l.Selected())

	l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, l.Selected())

	l.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, l.Selected())

	l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 0, l.Selected())
}

func TestVerseList_SetSelected_Bounds(t *testing.T) {
	l := NewVerseList(nil)
	l.SetVerses(testVerses())

	l.SetSelected(2)
	assert.Equal(t, 2, l.Selected())

	l.SetSelected(5)
	assert.Equal(t, 2, l.Selected())

	l.SetSelected(-1)
	assert.Equal(t, 2, l.Selected())
}

func TestVerseList_SelectedVerse(t *testing.T) {
	l := NewVerseList(nil)
	l.SetVerses(testVerses())
	l.SetSelected(1)

	verse := l.SelectedVerse()

	require.NotNil(t, verse)
	assert.Equal(t, "rv-1-1-2", verse.ID)
}

func TestVerseList_View_Empty(t *testing.T) {
	l := NewVerseList(nil)

	assert.Contains(t, l.View(), "No verses")
}

func TestVerseList_View_RendersEntries(t *testing.T) {
	l := NewVerseList(nil)
	l.SetDimensions(100, 20)
	l.SetVerses(testVerses())

	rendered := l.View()

	assert.Contains(t, rendered, "Verses (3)")
	assert.Contains(t, rendered, "1.1.1")
	assert.Contains(t, rendered, "Agni")
	assert.Contains(t, rendered, "(Gayatri)")
	assert.Contains(t, rendered, "I laud Agni, the chosen priest")
	// Snippet falls back to the transliteration, then the original.
	assert.Contains(t, rendered, "agnih purvebhir rsibhir")
	assert.Contains(t, rendered, "नासदासीन्नो सदासीत्")
}

func TestVerseList_View_ScoresShown(t *testing.T) {
	l := NewVerseList(nil)
	l.SetDimensions(100, 20)
	l.SetResults([]domain.SearchResult{{Verse: testVerses()[0], Score: 0.95}})

	assert.Contains(t, l.View(), "0.95")
}

func TestVerseList_View_ScrollsToSelection(t *testing.T) {
	l := NewVerseList(nil)
	// Height 8 leaves room for two visible entries.
	l.SetDimensions(100, 8)

	verses := make([]domain.Verse, 6)
	for i := range verses {
		verses[i] = domain.Verse{
			ID: "v", Mandala: 1, Sukta: 1, Verse: i + 1,
			Text: domain.VerseText{IAST: "text"},
		}
	}
	l.SetVerses(verses)
	l.SetSelected(5)

	rendered := l.View()

	assert.Contains(t, rendered, "1.1.6")
	assert.NotContains(t, rendered, "1.1.1")
}

func TestVerseSnippet_Preference(t *testing.T) {
	v := &domain.Verse{
		Text: domain.VerseText{
			Sanskrit: "sanskrit",
			IAST:     "iast",
			Translations: []domain.Translation{
				{Text: "translation"},
			},
		},
	}

	assert.Equal(t, "translation", verseSnippet(v))

	v.Text.Translations = nil
	assert.Equal(t, "iast", verseSnippet(v))

	v.Text.IAST = ""
	assert.Equal(t, "sanskrit", verseSnippet(v))
}
