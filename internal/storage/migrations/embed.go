package migrations

import "embed"

// FS contains embedded postgres migrations for the club ledger.
//
//go:embed *.sql
var FS embed.FS
