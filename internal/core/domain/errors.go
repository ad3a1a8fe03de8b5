package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCorpusUnavailable indicates every partition and the legacy
	// fallback failed to load. The caller gets an empty corpus plus
	// this error as the out-of-band failure signal.
	ErrCorpusUnavailable = errors.New("corpus unavailable")

	// ErrIndexNotReady indicates search was attempted before an index
	// was built for the current corpus snapshot. This is a programming
	// contract violation, not an expected runtime condition.
	ErrIndexNotReady = errors.New("search index not ready")

	// ErrMalformedPartition indicates a partition response matched none
	// of the recognised shapes (bare array, verses wrapper, data wrapper).
	ErrMalformedPartition = errors.New("malformed partition")
)
