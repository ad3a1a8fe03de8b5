package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riklabs/rigveda-cli/internal/adapters/driving/tui/messages"
	"github.com/riklabs/rigveda-cli/internal/adapters/driving/tui/styles"
	"github.com/riklabs/rigveda-cli/internal/adapters/driving/tui/views/bookmarks"
	"github.com/riklabs/rigveda-cli/internal/adapters/driving/tui/views/browse"
	"github.com/riklabs/rigveda-cli/internal/adapters/driving/tui/views/menu"
	"github.com/riklabs/rigveda-cli/internal/adapters/driving/tui/views/search"
	"github.com/riklabs/rigveda-cli/internal/adapters/driving/tui/views/settings"
	"github.com/riklabs/rigveda-cli/internal/adapters/driving/tui/views/versedetail"
	"github.com/riklabs/rigveda-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// menuView is the main navigation menu.
	menuView *menu.View

	// searchView is the query input and results view.
	searchView *search.View

	// browseView is the mandala and verse browsing view.
	browseView *browse.View

	// verseView shows a single verse in full.
	verseView *versedetail.View

	// bookmarksView lists the saved verses.
	bookmarksView *bookmarks.View

	// settingsView is the reading preferences view.
	settingsView *settings.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// verseReturn is the view the detail view returns to on Esc.
	verseReturn messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		menuView:      menu.NewView(s),
		searchView:    search.NewView(s, nil, ports.Search, ports.History),
		browseView:    browse.NewView(s, nil, ports.Corpus),
		verseView:     versedetail.NewView(s, nil, ports.Corpus, ports.Bookmarks, ports.Settings),
		bookmarksView: bookmarks.NewView(s, nil, ports.Corpus, ports.Bookmarks),
		settingsView:  settings.NewView(s, ports.Settings),
		currentView:   messages.ViewMenu, // Start with menu
		verseReturn:   messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("rigveda - Verse Browser"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo,funlen // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.searchView.SetDimensions(msg.Width, msg.Height)
		a.browseView.SetDimensions(msg.Width, msg.Height)
		a.verseView.SetDimensions(msg.Width, msg.Height)
		a.bookmarksView.SetDimensions(msg.Width, msg.Height)
		a.settingsView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Forward key messages to active view
		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
			a.err = a.searchView.Err()
			return a, cmd

		case messages.ViewBrowse:
			a.browseView, cmd = a.browseView.Update(msg)
			return a, cmd

		case messages.ViewVerse:
			a.verseView, cmd = a.verseView.Update(msg)
			return a, cmd

		case messages.ViewBookmarks:
			a.bookmarksView, cmd = a.bookmarksView.Update(msg)
			return a, cmd

		case messages.ViewSettings:
			a.settingsView, cmd = a.settingsView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Esc from help goes to menu
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.SearchCompleted:
		a.searchView, cmd = a.searchView.Update(msg)
		a.err = a.searchView.Err()
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		// Initialise views when switching to them
		switch msg.View {
		case messages.ViewSearch:
			a.searchView.Reset()
			return a, a.searchView.Init()
		case messages.ViewBrowse:
			a.browseView.Reset()
			return a, a.browseView.Init()
		case messages.ViewBookmarks:
			return a, a.bookmarksView.Init()
		case messages.ViewSettings:
			a.settingsView.Reset()
			return a, a.settingsView.Init()
		case messages.ViewMenu, messages.ViewVerse, messages.ViewHelp:
			// Other views don't need special initialisation
		}
		return a, nil

	case messages.VerseSelected:
		// Remember where to return on Esc
		a.verseReturn = a.currentView
		a.currentView = messages.ViewVerse
		return a, a.verseView.SetVerse(msg.Verse, a.verseReturn)

	case messages.VersesLoaded:
		a.browseView, cmd = a.browseView.Update(msg)
		return a, cmd

	case messages.BookmarksLoaded:
		a.bookmarksView, cmd = a.bookmarksView.Update(msg)
		return a, cmd

	case messages.BookmarkToggled, messages.AudioResolved:
		a.verseView, cmd = a.verseView.Update(msg)
		return a, cmd

	case messages.SettingsLoaded, messages.SettingsSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		// Forward to current view
		switch a.currentView {
		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
		case messages.ViewBrowse:
			a.browseView, cmd = a.browseView.Update(msg)
		case messages.ViewMenu, messages.ViewVerse, messages.ViewBookmarks,
			messages.ViewSettings, messages.ViewHelp:
			// Other views don't handle error messages
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewBrowse:
		a.browseView, cmd = a.browseView.Update(msg)
	case messages.ViewVerse:
		a.verseView, cmd = a.verseView.Update(msg)
	case messages.ViewBookmarks:
		a.bookmarksView, cmd = a.bookmarksView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewBrowse:
		return a.browseView.View()
	case messages.ViewVerse:
		return a.verseView.View()
	case messages.ViewBookmarks:
		return a.bookmarksView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Search:
  (type)      Enter search query
  enter       Submit search
  n           New search

Verses:
  j/k, ↑/↓    Navigate
  enter       Open verse
  b           Toggle bookmark
  a           Show recitation URL

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Query returns the current search query.
func (a *App) Query() string {
	return a.searchView.Query()
}

// SelectedVerse returns the verse selected in the active list view.
func (a *App) SelectedVerse() *domain.Verse {
	switch a.currentView {
	case messages.ViewSearch:
		return a.searchView.SelectedVerse()
	case messages.ViewBrowse:
		return a.browseView.SelectedVerse()
	case messages.ViewBookmarks:
		return a.bookmarksView.SelectedVerse()
	case messages.ViewVerse:
		return a.verseView.Verse()
	case messages.ViewMenu, messages.ViewSettings, messages.ViewHelp:
		return nil
	}
	return nil
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.searchView.SetDimensions(width, height)
	a.browseView.SetDimensions(width, height)
	a.verseView.SetDimensions(width, height)
	a.bookmarksView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
