// Package migrations holds the versioned schema, applied with golang-migrate.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
