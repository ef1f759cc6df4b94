package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/tasklist/domain"
	sqliteInfra "github.com/fastygo/tasklist/internal/infrastructure/sqlite"
	"github.com/fastygo/tasklist/repository"
)

func setupTestRepo(t *testing.T) repository.TaskRepository {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tasks.db")
	require.NoError(t, sqliteInfra.RunMigrations(path, nil))

	db, err := sqliteInfra.Open(context.Background(), path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewTaskRepository(db)
}

func mustTask(t *testing.T, title string, completed bool) *domain.Task {
	t.Helper()
	task, err := domain.NewTask(title, completed)
	require.NoError(t, err)
	return task
}

func TestInsertAndGet(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	created, err := repo.Insert(ctx, mustTask(t, "Buy milk", false))
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID())

	got, err := repo.GetByID(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", got.Title())
	assert.False(t, got.IsCompleted())

	second, err := repo.Insert(ctx, mustTask(t, "Walk dog", true))
	require.NoError(t, err)
	assert.Greater(t, second.ID(), created.ID())
	assert.True(t, second.IsCompleted())
}

func TestGetMissing(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.GetByID(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
	assert.Equal(t, "Task with ID 99 not found", domain.Message(err))
}

func TestListOrderedByID(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)

	for _, title := range []string{"c", "a", "b"} {
		_, err := repo.Insert(ctx, mustTask(t, title, false))
		require.NoError(t, err)
	}

	// Updating the first row must not move it.
	first, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, first.Update("z", true))
	require.NoError(t, repo.Update(ctx, first))

	tasks, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	for i, task := range tasks {
		assert.Equal(t, int64(i+1), task.ID())
	}
	assert.Equal(t, "z", tasks[0].Title())
}

func TestUpdate(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	a, err := repo.Insert(ctx, mustTask(t, "a", false))
	require.NoError(t, err)
	b, err := repo.Insert(ctx, mustTask(t, "b", false))
	require.NoError(t, err)

	require.NoError(t, a.Update("a2", true))
	require.NoError(t, repo.Update(ctx, a))

	got, err := repo.GetByID(ctx, a.ID())
	require.NoError(t, err)
	assert.Equal(t, "a2", got.Title())
	assert.True(t, got.IsCompleted())

	untouched, err := repo.GetByID(ctx, b.ID())
	require.NoError(t, err)
	assert.Equal(t, "b", untouched.Title())
	assert.False(t, untouched.IsCompleted())

	err = repo.Update(ctx, domain.HydrateTask(404, "ghost", false))
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}

func TestDelete(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	created, err := repo.Insert(ctx, mustTask(t, "temp", false))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID()))

	_, err = repo.GetByID(ctx, created.ID())
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))

	err = repo.Delete(ctx, created.ID())
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}

func TestIDsAreNotReused(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	first, err := repo.Insert(ctx, mustTask(t, "one", false))
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, first.ID()))

	second, err := repo.Insert(ctx, mustTask(t, "two", false))
	require.NoError(t, err)
	assert.Greater(t, second.ID(), first.ID())
}
