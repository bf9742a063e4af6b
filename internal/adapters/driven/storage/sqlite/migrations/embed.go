// Package migrations embeds SQL schema files for the SQLite store.
package migrations

import "embed"

// FS contains all SQL schema files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS
