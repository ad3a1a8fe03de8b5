// Package fetch implements the corpus fetcher port over HTTP and the
// local filesystem. Both share the shape-tolerant decoding in
// normalize.go. Caching, retries, and partition merging are the corpus
// service's responsibility, not the fetcher's.
package fetch
