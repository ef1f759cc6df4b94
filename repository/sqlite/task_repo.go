package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastygo/tasklist/domain"
	"github.com/fastygo/tasklist/repository"
)

type taskRepository struct {
	db *sql.DB
}

// NewTaskRepository returns a SQLite-backed implementation of TaskRepository.
func NewTaskRepository(db *sql.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) List(ctx context.Context) ([]*domain.Task, error) {
	const query = `SELECT id, title, is_completed FROM tasks ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	const query = `SELECT id, title, is_completed FROM tasks WHERE id = ?`

	task, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.TaskNotFound(id)
		}
		return nil, fmt.Errorf("get task %d: %w", id, err)
	}
	return task, nil
}

func (r *taskRepository) Insert(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}

	const query = `INSERT INTO tasks (title, is_completed) VALUES (?, ?)`
	result, err := r.db.ExecContext(ctx, query, task.Title(), task.IsCompleted())
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert task: last insert id: %w", err)
	}
	return domain.HydrateTask(id, task.Title(), task.IsCompleted()), nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}

	const query = `UPDATE tasks SET title = ?, is_completed = ? WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, task.Title(), task.IsCompleted(), task.ID())
	if err != nil {
		return fmt.Errorf("update task %d: %w", task.ID(), err)
	}
	return requireRow(result, task.ID())
}

func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM tasks WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return requireRow(result, id)
}

func scanTask(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Task, error) {
	var (
		id          int64
		title       string
		isCompleted bool
	)
	if err := row.Scan(&id, &title, &isCompleted); err != nil {
		return nil, err
	}
	return domain.HydrateTask(id, title, isCompleted), nil
}

func requireRow(result sql.Result, id int64) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.TaskNotFound(id)
	}
	return nil
}
