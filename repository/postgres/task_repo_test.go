package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/tasklist/domain"
)

type fakeQuerier struct {
	tag     string
	execErr error
	row     fakeRow
	sql     string
	args    []any
}

func (q *fakeQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not used")
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.sql, q.args = sql, args
	return q.row
}

func (q *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.sql, q.args = sql, args
	return pgconn.NewCommandTag(q.tag), q.execErr
}

func TestUpdateMissingRow(t *testing.T) {
	q := &fakeQuerier{tag: "UPDATE 0"}
	repo := &taskRepository{pool: q}

	err := repo.Update(context.Background(), domain.HydrateTask(7, "Buy milk", true))
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
	assert.Equal(t, "Task with ID 7 not found", domain.Message(err))
	assert.Equal(t, []any{int64(7), "Buy milk", true}, q.args)
}

func TestUpdateExistingRow(t *testing.T) {
	repo := &taskRepository{pool: &fakeQuerier{tag: "UPDATE 1"}}

	assert.NoError(t, repo.Update(context.Background(), domain.HydrateTask(7, "Buy milk", true)))
}

func TestDeleteMissingRow(t *testing.T) {
	repo := &taskRepository{pool: &fakeQuerier{tag: "DELETE 0"}}

	err := repo.Delete(context.Background(), 0)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
	assert.Equal(t, "Task with ID 0 not found", domain.Message(err))
}

func TestDeleteExistingRow(t *testing.T) {
	repo := &taskRepository{pool: &fakeQuerier{tag: "DELETE 1"}}

	assert.NoError(t, repo.Delete(context.Background(), 3))
}

func TestExecErrorIsWrapped(t *testing.T) {
	repo := &taskRepository{pool: &fakeQuerier{execErr: errors.New("connection reset")}}

	err := repo.Delete(context.Background(), 3)
	assert.ErrorContains(t, err, "delete task 3: connection reset")
	assert.False(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}

func TestGetByIDMissingRow(t *testing.T) {
	repo := &taskRepository{pool: &fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}}

	_, err := repo.GetByID(context.Background(), 4)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}
