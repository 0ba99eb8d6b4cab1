package postgres

import "embed"

// Migrations holds the embedded goose migration files applied at startup.
//
//go:embed migrations/*.sql
var Migrations embed.FS
