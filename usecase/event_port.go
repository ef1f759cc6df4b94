package usecase

import (
	"context"

	"github.com/fastygo/tasklist/domain"
)

// EventPublisher abstracts event delivery so use cases stay transport-agnostic.
type EventPublisher interface {
	PublishTaskEvent(ctx context.Context, event domain.TaskEvent) error
}
