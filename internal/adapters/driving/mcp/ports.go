package mcp

import (
	"github.com/riklabs/rigveda-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search answers ranked queries over the corpus.
	Search driving.SearchService

	// Corpus loads verses and the reference indexes.
	Corpus driving.CorpusService

	// History records queries issued through the server. Optional.
	History driving.HistoryService
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
	// History is optional.
	return nil
}
