package search

import "errors"

// ErrNoSearchService is returned when a query is submitted but the view
// was constructed without a search service.
var ErrNoSearchService = errors.New("search service is required")
