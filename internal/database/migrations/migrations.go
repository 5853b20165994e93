// Package migrations embeds the goose SQL migrations shared by every backend.
package migrations

import "embed"

// FS holds the migration files at its root
//
//go:embed *.sql
var FS embed.FS
