package assets

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations(t *testing.T) {
	for _, driver := range []string{"postgres", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			fsys, err := Migrations(driver)
			require.NoError(t, err)

			names, err := fs.Glob(fsys, "*.up.sql")
			require.NoError(t, err)
			assert.Contains(t, names, "000001_create_tasks.up.sql")
		})
	}
}
