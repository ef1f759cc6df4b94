package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a change applied to a task.
type EventType string

const (
	EventTaskCreated EventType = "task.created"
	EventTaskUpdated EventType = "task.updated"
	EventTaskDeleted EventType = "task.deleted"
)

// TaskEvent is published after a task change has been persisted.
type TaskEvent struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	TaskID     int64     `json:"taskId"`
	Task       *Task     `json:"task,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewTaskEvent stamps a fresh event for task. Delete events carry no snapshot.
func NewTaskEvent(kind EventType, taskID int64, task *Task) TaskEvent {
	if kind == EventTaskDeleted {
		task = nil
	}
	return TaskEvent{
		ID:         uuid.NewString(),
		Type:       kind,
		TaskID:     taskID,
		Task:       task,
		OccurredAt: time.Now().UTC(),
	}
}
