package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAndMigrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tasks.db")

	require.NoError(t, RunMigrations(path, nil))
	// A second run is a no-op.
	require.NoError(t, RunMigrations(path, nil))

	db, err := Open(context.Background(), path, nil)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM tasks`).Scan(&count))
	assert.Zero(t, count)

	var isCompleted bool
	_, err = db.Exec(`INSERT INTO tasks (title) VALUES ('defaulted')`)
	require.NoError(t, err)
	require.NoError(t, db.QueryRow(`SELECT is_completed FROM tasks WHERE title = 'defaulted'`).Scan(&isCompleted))
	assert.False(t, isCompleted)
}
