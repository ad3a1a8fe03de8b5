// Package driven defines the driven ports: interfaces the core requires
// from infrastructure adapters (corpus fetching, search indexing, local
// persistence, configuration).
package driven
