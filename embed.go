// Package catalog holds repository-level embedded assets shared by the CLI
// and the test harness.
package catalog

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate
// command and by integration tests.
//
//go:embed migrations/*.sql
var Migrations embed.FS
