// Package domain contains the core business entities for the Rigveda
// corpus browser: verses and their multilingual text, filter predicates,
// search results, reading settings, and bookmarks.
//
// Domain types have no dependencies on adapters or external services.
package domain
