// Package tui provides an interactive terminal browser for the corpus.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/riklabs/rigveda-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search answers ranked queries and filter evaluations.
	Search driving.SearchService

	// Corpus loads verses, audio, and the reference indexes.
	Corpus driving.CorpusService

	// Bookmarks manages the user's saved verses. Optional.
	Bookmarks driving.BookmarkService

	// History records search queries. Optional.
	History driving.HistoryService

	// Settings manages reading preferences. Optional; the defaults
	// apply when absent.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the required services.
func NewPorts(search driving.SearchService, corpus driving.CorpusService) *Ports {
	return &Ports{
		Search: search,
		Corpus: corpus,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Corpus == nil {
		return ErrMissingCorpusService
	}
	return nil
}
