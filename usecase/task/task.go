package task

import (
	"context"

	"go.uber.org/zap"

	"github.com/fastygo/tasklist/domain"
	"github.com/fastygo/tasklist/pkg/logger"
	"github.com/fastygo/tasklist/repository"
	"github.com/fastygo/tasklist/usecase"
)

type UseCase struct {
	tasks  repository.TaskRepository
	events usecase.EventPublisher
	logger *zap.Logger
}

// New builds the task use case. events may be nil when event publishing is disabled.
func New(tasks repository.TaskRepository, events usecase.EventPublisher, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		events: events,
		logger: logger,
	}
}

func (uc *UseCase) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	return uc.tasks.List(ctx)
}

func (uc *UseCase) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	return uc.tasks.GetByID(ctx, id)
}

// CreateTask validates the input before touching the store.
func (uc *UseCase) CreateTask(ctx context.Context, title string, isCompleted bool) (*domain.Task, error) {
	task, err := domain.NewTask(title, isCompleted)
	if err != nil {
		return nil, err
	}

	created, err := uc.tasks.Insert(ctx, task)
	if err != nil {
		return nil, err
	}

	uc.emit(ctx, domain.NewTaskEvent(domain.EventTaskCreated, created.ID(), created))
	return created, nil
}

// ReplaceTask overwrites title and completion flag of an existing task. A missing id is
// reported before the new title is validated.
func (uc *UseCase) ReplaceTask(ctx context.Context, id int64, title string, isCompleted bool) (*domain.Task, error) {
	task, err := uc.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := task.Update(title, isCompleted); err != nil {
		return nil, err
	}

	if err := uc.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	uc.emit(ctx, domain.NewTaskEvent(domain.EventTaskUpdated, task.ID(), task))
	return task, nil
}

func (uc *UseCase) DeleteTask(ctx context.Context, id int64) error {
	if err := uc.tasks.Delete(ctx, id); err != nil {
		return err
	}

	uc.emit(ctx, domain.NewTaskEvent(domain.EventTaskDeleted, id, nil))
	return nil
}

// emit never fails the request: the change is already persisted.
func (uc *UseCase) emit(ctx context.Context, event domain.TaskEvent) {
	if uc.events == nil {
		return
	}
	if err := uc.events.PublishTaskEvent(ctx, event); err != nil {
		logger.WithRequestID(ctx, uc.logger).Error("failed to publish task event",
			zap.String("event", string(event.Type)),
			zap.Int64("task_id", event.TaskID),
			zap.Error(err))
	}
}
