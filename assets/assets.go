// Package assets embeds the SQL migrations shipped with the binary.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrations embed.FS

// Migrations returns the migration files for the given database driver.
func Migrations(driver string) (fs.FS, error) {
	return fs.Sub(migrations, "migrations/"+driver)
}
