package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/fastygo/tasklist/domain"
)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
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

func notFound(err error, id int64) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.TaskNotFound(id)
	}
	return err
}
