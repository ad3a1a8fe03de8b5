// Package migrations embeds the schema migrations applied by the
// SQLite store on open.
package migrations

import "embed"

// FS holds the numbered up/down migration pairs.
//
//go:embed *.sql
var FS embed.FS
