// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riklabs/rigveda-cli/internal/adapters/driving/tui/styles"
	"github.com/riklabs/rigveda-cli/internal/core/domain"
)

// Item is one verse entry, with an optional relevance score for
// search-backed lists.
type Item struct {
	Verse    domain.Verse
	Score    float64
	HasScore bool
}

// VerseList displays verses in a navigable list.
type VerseList struct {
	items    []Item
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewVerseList creates a new verse list component.
func NewVerseList(s *styles.Styles) *VerseList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &VerseList{
		items:    nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the verse list.
func (l *VerseList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *VerseList) Update(msg tea.Msg) (*VerseList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			l.MoveUp()
		case tea.KeyDown:
			l.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			l.MoveUp()
		case "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the verse list.
func (l *VerseList) View() string {
	if len(l.items) == 0 {
		return l.styles.Muted.Render("No verses")
	}

	lines := make([]string, 0, len(l.items)*2+2)

	header := l.styles.Subtitle.Render(fmt.Sprintf("Verses (%d)", len(l.items)))
	lines = append(lines, header, "")

	// Each entry takes a heading line plus a snippet line.
	visibleCount := (l.height - 4) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if l.selected >= visibleCount {
		start = l.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(l.items) {
		end = len(l.items)
	}

	for i := start; i < end; i++ {
		lines = append(lines, l.renderItem(i, &l.items[i]))
	}

	return strings.Join(lines, "\n")
}

// renderItem formats a single verse entry with a translation snippet.
func (l *VerseList) renderItem(index int, item *Item) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	v := &item.Verse
	heading := v.Ref().String()
	if deity := v.Metadata.Deity.Primary; deity != "" {
		heading += "  " + deity
	}
	if meter := v.Metadata.Meter; meter != "" {
		heading += "  (" + meter + ")"
	}

	maxHeadingLen := l.width - 20
	if maxHeadingLen < 10 {
		maxHeadingLen = 10
	}
	if len(heading) > maxHeadingLen {
		heading = heading[:maxHeadingLen-3] + "..."
	}

	var headingLine string
	if item.HasScore {
		score := fmt.Sprintf("%.2f", item.Score)
		if index == l.selected {
			headingLine = l.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxHeadingLen, heading, score))
		} else {
			headingLine = l.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxHeadingLen, heading)) +
				l.styles.Muted.Render(score)
		}
	} else {
		if index == l.selected {
			headingLine = l.styles.Selected.Render(indicator + heading)
		} else {
			headingLine = l.styles.Normal.Render(indicator + heading)
		}
	}

	snippet := verseSnippet(v)
	maxSnippetLen := l.width - 6
	if maxSnippetLen < 20 {
		maxSnippetLen = 20
	}
	if len(snippet) > maxSnippetLen {
		snippet = snippet[:maxSnippetLen-3] + "..."
	}
	snippetLine := l.styles.Muted.Render("    " + snippet)

	return headingLine + "\n" + snippetLine
}

// verseSnippet picks a one-line preview: the first translation when
// present, then the transliteration, then the original.
func verseSnippet(v *domain.Verse) string {
	if len(v.Text.Translations) > 0 && v.Text.Translations[0].Text != "" {
		return v.Text.Translations[0].Text
	}
	if v.Text.IAST != "" {
		return v.Text.IAST
	}
	return v.Text.Sanskrit
}

// SetVerses replaces the list contents with unscored verses.
func (l *VerseList) SetVerses(verses []domain.Verse) {
	items := make([]Item, len(verses))
	for i := range verses {
		items[i] = Item{Verse: verses[i]}
	}
	l.items = items
	l.selected = 0
}

// SetResults replaces the list contents with scored search results.
func (l *VerseList) SetResults(results []domain.SearchResult) {
	items := make([]Item, len(results))
	for i := range results {
		items[i] = Item{Verse: results[i].Verse, Score: results[i].Score, HasScore: true}
	}
	l.items = items
	l.selected = 0
}

// Items returns the current entries.
func (l *VerseList) Items() []Item {
	return l.items
}

// Selected returns the index of the selected entry.
func (l *VerseList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *VerseList) SetSelected(index int) {
	if index >= 0 && index < len(l.items) {
		l.selected = index
	}
}

// SelectedVerse returns the currently selected verse, or nil if none.
func (l *VerseList) SelectedVerse() *domain.Verse {
	if len(l.items) == 0 || l.selected < 0 || l.selected >= len(l.items) {
		return nil
	}
	return &l.items[l.selected].Verse
}

// MoveUp moves selection up.
func (l *VerseList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *VerseList) MoveDown() {
	if l.selected < len(l.items)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *VerseList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Width returns the current width.
func (l *VerseList) Width() int {
	return l.width
}

// Height returns the current height.
func (l *VerseList) Height() int {
	return l.height
}

// Count returns the number of entries.
func (l *VerseList) Count() int {
	return len(l.items)
}

// IsEmpty returns whether the list is empty.
func (l *VerseList) IsEmpty() bool {
	return len(l.items) == 0
}
