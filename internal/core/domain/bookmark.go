package domain

import "time"

// Bookmark marks a verse the user saved for later.
type Bookmark struct {
	// ID is the bookmark's own identifier (UUID).
	ID string

	// VerseID is the bookmarked verse.
	VerseID string

	// CreatedAt is when the bookmark was made.
	CreatedAt time.Time
}
