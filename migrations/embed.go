// Package migrations embeds the SQL migration files (users, visits) so the
// goose programmatic API can apply them in tests and at server bootstrap.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
// Pass this to a goose.Provider instead of relying on a filesystem
// path at runtime.
//
//go:embed *.sql
var FS embed.FS
