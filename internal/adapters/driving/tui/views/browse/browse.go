// Package browse provides the mandala browsing view for the TUI.
package browse

import (
	"context"
	"fmt"
	"strings"

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

// Mode tracks which level of the browse hierarchy is active.
type Mode int

const (
	// ModeMandalas lists the ten books.
	ModeMandalas Mode = iota
	// ModeVerses lists one book's verses.
	ModeVerses
)

// View represents the two-level browse view: books, then verses.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	list      *list.VerseList
	statusbar *status.Bar

	corpusService driving.CorpusService
	ctx           context.Context

	mode      Mode
	mandala   int // selected book in ModeMandalas, loaded book in ModeVerses
	requested int // book of the most recent load request
	loading   bool
	err     error
	width   int
	height  int
	ready   bool
}

// NewView creates a new browse view.
func NewView(s *styles.Styles, km *keymap.KeyMap, corpusService driving.CorpusService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:        s,
		keymap:        km,
		list:          list.NewVerseList(s),
		statusbar:     status.NewBar(s, km),
		corpusService: corpusService,
		ctx:           context.Background(),
		mode:          ModeMandalas,
		mandala:       1,
		width:         80,
		height:        24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browse view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.VersesLoaded:
		if msg.Mandala != v.requested {
			// Late result for a superseded request.
			return v, nil
		}
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.err = nil
		v.mode = ModeVerses
		v.mandala = msg.Mandala
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
		if v.mode == ModeVerses {
			// Back up one level
			v.mode = ModeMandalas
			v.statusbar.Clear()
			return v, nil
		}
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if v.mode == ModeMandalas {
		switch msg.String() {
		case "up", "k":
			if v.mandala > 1 {
				v.mandala--
			}
		case "down", "j":
			if v.mandala < domain.MandalaCount {
				v.mandala++
			}
		case "enter":
			v.loading = true
			v.requested = v.mandala
			v.statusbar.SetState(status.StateSearching)
			return v, v.loadBook(v.mandala)
		}
		return v, nil
	}

	// ModeVerses: Enter opens the selected verse
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

// loadBook fetches one mandala's verses.
func (v *View) loadBook(mandala int) tea.Cmd {
	return func() tea.Msg {
		verses, err := v.corpusService.LoadBook(v.ctx, mandala)
		return messages.VersesLoaded{Mandala: mandala, Verses: verses, Err: err}
	}
}

// View renders the browse view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	if v.mode == ModeMandalas {
		return v.viewMandalas()
	}
	return v.viewVerses()
}

// viewMandalas renders the book selection list.
func (v *View) viewMandalas() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Browse"))
	b.WriteString("\n\n")

	for m := 1; m <= domain.MandalaCount; m++ {
		cursor := "  "
		label := fmt.Sprintf("Mandala %d", m)
		if m == v.mandala {
			cursor = "> "
			b.WriteString(cursor + v.styles.Selected.Render(label))
		} else {
			b.WriteString(cursor + v.styles.Normal.Render(label))
		}
		b.WriteString("\n")
	}

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	}
	if v.loading {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("Loading..."))
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Open  [esc] Menu"))

	return b.String()
}

// viewVerses renders one book's verse list.
func (v *View) viewVerses() string {
	sections := []string{
		v.styles.Title.Render(fmt.Sprintf("Mandala %d", v.mandala)),
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

// Mode returns the active browse level.
func (v *View) Mode() Mode {
	return v.mode
}

// Mandala returns the selected or loaded book number.
func (v *View) Mandala() int {
	return v.mandala
}

// SelectedVerse returns the currently selected verse in ModeVerses.
func (v *View) SelectedVerse() *domain.Verse {
	return v.list.SelectedVerse()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Reset returns the view to the book selection level.
func (v *View) Reset() {
	v.mode = ModeMandalas
	v.err = nil
	v.loading = false
	v.requested = 0
	v.list.SetVerses(nil)
	v.statusbar.Clear()
}
