// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/riklabs/rigveda-cli/internal/core/domain"
)

// QueryChanged is sent when the search query input changes.
type QueryChanged struct {
	Query string
}

// SearchRequested is a command to perform a search.
type SearchRequested struct {
	Query   string
	Options domain.SearchOptions
}

// SearchCompleted carries search results back to the model. Query
// identifies the request so consumers can drop results that settle
// after a newer search was submitted.
type SearchCompleted struct {
	Query   string
	Results []domain.SearchResult
	Err     error
}

// ResultSelected is sent when a search result is selected.
type ResultSelected struct {
	Index int
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSearch is the search input and results view.
	ViewSearch
	// ViewBrowse is the mandala and verse browsing view.
	ViewBrowse
	// ViewVerse shows a single verse in full.
	ViewVerse
	// ViewBookmarks lists the saved verses.
	ViewBookmarks
	// ViewSettings is the reading preferences view.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSearch:
		return "search"
	case ViewBrowse:
		return "browse"
	case ViewVerse:
		return "verse"
	case ViewBookmarks:
		return "bookmarks"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// VerseSelected signals a verse was chosen for the detail view.
type VerseSelected struct {
	Verse domain.Verse
}

// VersesLoaded carries one book's verses into the browse view.
type VersesLoaded struct {
	Mandala int
	Verses  []domain.Verse
	Err     error
}

// BookmarkToggled signals a verse's bookmark state changed.
type BookmarkToggled struct {
	VerseID    string
	Bookmarked bool
	Err        error
}

// BookmarksLoaded carries the saved verse list.
type BookmarksLoaded struct {
	Bookmarks []domain.Bookmark
	Verses    []domain.Verse
	Err       error
}

// AudioResolved carries the recitation URL for a verse's sukta.
type AudioResolved struct {
	VerseID string
	URL     string
	OK      bool
	Err     error
}

// SettingsLoaded carries the reading preferences.
type SettingsLoaded struct {
	Settings domain.ReadingSettings
	Err      error
}

// SettingsSaved signals settings were saved.
type SettingsSaved struct {
	Err error
}
