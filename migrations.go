// Package linkify holds assets embedded into the binary.
package linkify

import "embed"

// Migrations contains the goose SQL migrations for the PostgreSQL page store.
//
//go:embed migrations/*.sql
var Migrations embed.FS
