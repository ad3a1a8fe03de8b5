// Package bookmarks provides the saved-verses view for the TUI.
package bookmarks

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/riklabs/rigveda-cli/internal/adapters/driving/tui/components/list"
	"github.com/riklabs/rigveda-cli/internal/adapters/driving/tui/components/status"
	"github.com/riklabs/rigveda-cli/internal/adapters/driving/tui/keymap"
	"github.com/riklabs/rigveda-cli/internal/adapters/driving/tui/messages"
	"github.com/riklabs/rigveda-cli/internal/adapters/driving/tui/styles"
	"github.com/riklabs/rigveda-cli/internal/core/domain"
	"github.com/riklabs/rigveda-cli/internal/core/ports/driving"
)

// View lists the user's bookmarked verses, newest first.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	list      *list.VerseList
	statusbar *status.Bar

	corpusService   driving.CorpusService
	bookmarkService driving.BookmarkService
	ctx             context.Context

	err    error
	width  int
	height int
	ready  bool
}

// NewView creates a new bookmarks view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	corpusService driving.CorpusService,
	bookmarkService driving.BookmarkService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:          s,
		keymap:          km,
		list:            list.NewVerseList(s),
		statusbar:       status.NewBar(s, km),
		corpusService:   corpusService,
		bookmarkService: bookmarkService,
		ctx:             context.Background(),
		width:           80,
		height:          24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the bookmark list.
func (v *View) Init() tea.Cmd {
	return v.loadBookmarks()
}

// loadBookmarks lists bookmarks and resolves each to a verse. Entries
// whose verse no longer resolves are skipped rather than failing the
// whole list.
func (v *View) loadBookmarks() tea.Cmd {
	return func() tea.Msg {
		if v.bookmarkService == nil {
			return messages.BookmarksLoaded{}
		}

		marks, err := v.bookmarkService.List(v.ctx)
		if err != nil {
			return messages.BookmarksLoaded{Err: err}
		}

		verses := make([]domain.Verse, 0, len(marks))
		for _, m := range marks {
			verse, err := v.corpusService.Verse(v.ctx, m.VerseID)
			if err != nil {
				continue
			}
			verses = append(verses, *verse)
		}
		return messages.BookmarksLoaded{Bookmarks: marks, Verses: verses}
	}
}

// Update handles messages for the bookmarks view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.BookmarksLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.err = nil
		v.list.SetVerses(msg.Verses)
		v.statusbar.SetState(status.StateResults)
		v.statusbar.SetResultCount(len(msg.Verses))
		return v, nil
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if msg.Type == tea.KeyEnter {
		if verse := v.list.SelectedVerse(); verse != nil {
			selected := *verse
			return v, func() tea.Msg {
				return messages.VerseSelected{Verse: selected}
			}
		}
		return v, nil
	}

	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyUp:
		v.list.MoveUp()
	case tea.KeyDown:
		v.list.MoveDown()
	}
	switch msg.String() {
	case "k":
		v.list.MoveUp()
	case "j":
		v.list.MoveDown()
	}
	return v, nil
}

// View renders the bookmarks view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := []string{
		v.styles.Title.Render("Bookmarks"),
		"",
		v.list.View(),
		"",
		v.statusbar.View(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.list.SetDimensions(width, height-8)
	v.statusbar.SetWidth(width)
}

// SelectedVerse returns the currently selected verse.
func (v *View) SelectedVerse() *domain.Verse {
	return v.list.SelectedVerse()
}

// Count returns the number of listed bookmarks.
func (v *View) Count() int {
	return v.list.Count()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
