// Package migrations embeds the goose SQL migrations that define the
// Farmart schema. The embedded FS is handed to goose.NewProvider by the
// migration runner and by tests, so binaries never depend on a migrations
// directory being present on disk.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
