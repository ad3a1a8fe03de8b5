// Package services implements the core application services: corpus
// loading with caching and retry, search with per-snapshot indexing,
// filter evaluation, search history, bookmarks, and reading settings.
package services
