// Package migrations embeds the tree library schema for each supported driver.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"
)

// Schema files are compiled into the binary, one directory per dialect.
//
//go:embed sqlite/*.sql
var SqliteMigrations embed.FS

//go:embed postgres/*.sql
var PostgresMigrations embed.FS

// ForDriver returns the migration tree and its root directory for a
// database/sql driver name.
func ForDriver(driver string) (fs.FS, string, error) {
	switch driver {
	case "sqlite3":
		return SqliteMigrations, "sqlite", nil
	case "postgres":
		return PostgresMigrations, "postgres", nil
	default:
		return nil, "", fmt.Errorf("unsupported database driver: %s", driver)
	}
}
