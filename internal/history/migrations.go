package history

import "embed"

// MigrationsDir is the directory of Migrations holding the schema files.
const MigrationsDir = "migrations"

//go:embed migrations/*.sql
var Migrations embed.FS
