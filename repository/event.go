package repository

import (
	"context"

	"github.com/fastygo/tasklist/domain"
)

// EventPublisher delivers a task event to external subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.TaskEvent) error
}
