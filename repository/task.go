package repository

import (
	"context"

	"github.com/fastygo/tasklist/domain"
)

// TaskRepository is the persistence gateway for tasks. Lookups of missing ids
// return an error classified as domain.ErrCodeNotFound.
type TaskRepository interface {
	List(ctx context.Context) ([]*domain.Task, error)
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	Insert(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id int64) error
}
