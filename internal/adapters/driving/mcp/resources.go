package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for corpus resources.
	uriScheme = "rigveda://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the deity reference.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "deities",
		Name:        "deities",
		Description: "Deity reference: names, domains, and epithets",
		MIMEType:    "application/json",
	}, s.handleDeitiesResource)

	// Static resource for the geography reference.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "geography",
		Name:        "geography",
		Description: "Geographic regions referenced by the corpus",
		MIMEType:    "application/json",
	}, s.handleGeographyResource)

	// Static resource for corpus statistics.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "stats",
		Name:        "stats",
		Description: "Corpus statistics: verse counts by mandala, deity, rishi, and meter",
		MIMEType:    "application/json",
	}, s.handleStatsResource)

	// Template for one book's verses.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "mandalas/{mandala}",
		Name:        "mandala-verses",
		Description: "All verses of one mandala (1-10)",
		MIMEType:    "application/json",
	}, s.handleMandalaResource)
}

// handleDeitiesResource returns the deity reference entries.
func (s *Server) handleDeitiesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	deities, err := s.ports.Corpus.Deities(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing deities: %w", err)
	}
	return jsonResource(req.Params.URI, deities)
}

// handleGeographyResource returns the geographic reference entries.
func (s *Server) handleGeographyResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	regions, err := s.ports.Corpus.Geography(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing regions: %w", err)
	}
	return jsonResource(req.Params.URI, regions)
}

// handleStatsResource returns aggregated corpus statistics.
func (s *Server) handleStatsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	stats, err := s.ports.Corpus.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("computing statistics: %w", err)
	}
	return jsonResource(req.Params.URI, stats)
}

// handleMandalaResource returns the verses of one book.
func (s *Server) handleMandalaResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	mandala, ok := extractMandala(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	verses, err := s.ports.Corpus.LoadBook(ctx, mandala)
	if err != nil {
		return nil, fmt.Errorf("loading mandala %d: %w", mandala, err)
	}

	summaries := make([]VerseSummary, len(verses))
	for i := range verses {
		summaries[i] = summarise(&verses[i])
	}
	return jsonResource(req.Params.URI, summaries)
}

// jsonResource wraps a value as a single JSON resource content.
func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractMandala parses the book number from a URI like rigveda://mandalas/3.
func extractMandala(uri string) (int, bool) {
	const prefix = uriScheme + "mandalas/"

	if !strings.HasPrefix(uri, prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(uri, prefix))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
