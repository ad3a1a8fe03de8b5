// Package versedetail provides the single-verse view for the TUI.
package versedetail

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riklabs/rigveda-cli/internal/adapters/driving/tui/components/status"
	"github.com/riklabs/rigveda-cli/internal/adapters/driving/tui/keymap"
	"github.com/riklabs/rigveda-cli/internal/adapters/driving/tui/messages"
	"github.com/riklabs/rigveda-cli/internal/adapters/driving/tui/styles"
	"github.com/riklabs/rigveda-cli/internal/core/domain"
	"github.com/riklabs/rigveda-cli/internal/core/ports/driving"
)

// View renders a single verse with its text, translation, and metadata.
// Rendering honours the user's reading preferences.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar

	corpusService   driving.CorpusService
	bookmarkService driving.BookmarkService
	settingsService driving.SettingsService
	ctx             context.Context

	verse      *domain.Verse
	settings   domain.ReadingSettings
	bookmarked bool
	audioURL   string
	err        error
	width      int
	height     int
	ready      bool

	// back is the view to return to on Esc.
	back messages.ViewType
}

// NewView creates a new verse detail view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	corpusService driving.CorpusService,
	bookmarkService driving.BookmarkService,
	settingsService driving.SettingsService,
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
		statusbar:       status.NewBar(s, km),
		corpusService:   corpusService,
		bookmarkService: bookmarkService,
		settingsService: settingsService,
		ctx:             context.Background(),
		settings:        domain.DefaultReadingSettings(),
		back:            messages.ViewMenu,
		width:           80,
		height:          24,
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

// SetVerse loads a verse into the view and refreshes its bookmark state
// and the reading preferences.
func (v *View) SetVerse(verse domain.Verse, back messages.ViewType) tea.Cmd {
	v.verse = &verse
	v.back = back
	v.audioURL = ""
	v.err = nil
	v.bookmarked = false
	v.statusbar.SetState(status.StateVerse)
	v.statusbar.SetMessage(verse.Ref().String())

	if v.settingsService != nil {
		if s, err := v.settingsService.Get(); err == nil {
			v.settings = s
		}
	}

	if v.bookmarkService == nil {
		return nil
	}
	id := verse.ID
	return func() tea.Msg {
		marked, err := v.bookmarkService.IsBookmarked(v.ctx, id)
		return messages.BookmarkToggled{VerseID: id, Bookmarked: marked, Err: err}
	}
}

// Update handles messages for the verse detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.BookmarkToggled:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		if v.verse != nil && msg.VerseID == v.verse.ID {
			v.bookmarked = msg.Bookmarked
		}
		return v, nil

	case messages.AudioResolved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		if msg.OK {
			v.audioURL = msg.URL
		} else {
			v.audioURL = ""
			v.statusbar.SetMessage("No recording for this sukta")
		}
		return v, nil
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		back := v.back
		return v, func() tea.Msg {
			return messages.ViewChanged{View: back}
		}
	}

	switch msg.String() {
	case "b":
		return v, v.toggleBookmark()
	case "a":
		return v, v.resolveAudio()
	}

	return v, nil
}

// toggleBookmark flips the bookmark on the open verse.
func (v *View) toggleBookmark() tea.Cmd {
	if v.verse == nil || v.bookmarkService == nil {
		return nil
	}
	id := v.verse.ID
	return func() tea.Msg {
		marked, err := v.bookmarkService.Toggle(v.ctx, id)
		return messages.BookmarkToggled{VerseID: id, Bookmarked: marked, Err: err}
	}
}

// resolveAudio looks up the recitation URL for the verse's sukta.
func (v *View) resolveAudio() tea.Cmd {
	if v.verse == nil || v.corpusService == nil {
		return nil
	}
	id := v.verse.ID
	mandala, sukta := v.verse.Mandala, v.verse.Sukta
	return func() tea.Msg {
		url, ok, err := v.corpusService.AudioURL(v.ctx, mandala, sukta)
		return messages.AudioResolved{VerseID: id, URL: url, OK: ok, Err: err}
	}
}

// View renders the verse.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}
	if v.verse == nil {
		return v.styles.Muted.Render("No verse selected")
	}

	verse := v.verse
	var b strings.Builder

	heading := verse.Ref().String()
	if deity := verse.Metadata.Deity.Primary; deity != "" {
		heading += "  " + deity
	}
	if meter := verse.Metadata.Meter; meter != "" {
		heading += "  (" + meter + ")"
	}
	b.WriteString(v.styles.Title.Render(heading))
	b.WriteString("\n\n")

	if v.settings.Script != domain.ScriptIAST && verse.Text.Sanskrit != "" {
		b.WriteString(v.styles.Sanskrit.Render(verse.Text.Sanskrit))
		b.WriteString("\n\n")
	}
	if v.settings.Script != domain.ScriptDevanagari && verse.Text.IAST != "" {
		b.WriteString(v.styles.Normal.Render(verse.Text.IAST))
		b.WriteString("\n\n")
	}

	if tr, ok := verse.TranslationBy(v.settings.Translation); ok {
		b.WriteString(v.styles.Normal.Render(tr.Text))
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("(" + tr.Translator + ")"))
		b.WriteString("\n\n")
	} else if len(verse.Text.Translations) > 0 {
		tr := verse.Text.Translations[0]
		b.WriteString(v.styles.Normal.Render(tr.Text))
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("(" + tr.Translator + ")"))
		b.WriteString("\n\n")
	}

	if rishi := verse.Metadata.Rishi.Name; rishi != "" {
		b.WriteString(v.styles.Muted.Render("Rishi: " + rishi))
		b.WriteString("\n")
	}
	if len(verse.Themes) > 0 {
		b.WriteString(v.styles.Muted.Render("Themes: " + strings.Join(verse.Themes, ", ")))
		b.WriteString("\n")
	}
	if v.bookmarked {
		b.WriteString(v.styles.Success.Render("Bookmarked"))
		b.WriteString("\n")
	}
	if v.audioURL != "" {
		b.WriteString(v.styles.Subtitle.Render("Audio: " + v.audioURL))
		b.WriteString("\n")
	}
	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.statusbar.View())

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.statusbar.SetWidth(width)
}

// Verse returns the open verse, or nil.
func (v *View) Verse() *domain.Verse {
	return v.verse
}

// Bookmarked reports the open verse's bookmark state.
func (v *View) Bookmarked() bool {
	return v.bookmarked
}

// AudioURL returns the resolved recitation URL, if any.
func (v *View) AudioURL() string {
	return v.audioURL
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
