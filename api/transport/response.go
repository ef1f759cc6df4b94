package transport

import (
	"encoding/json"

	"github.com/fastygo/tasklist/domain"
)

// TaskResponse is the public representation of a task.
type TaskResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"isCompleted"`
}

// ErrorResponse is the body of every 4xx/5xx answer.
type ErrorResponse struct {
	Error string      `json:"error"`
	Meta  interface{} `json:"meta,omitempty"`
}

// NewTask maps a task entity onto its response representation.
func NewTask(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID(),
		Title:       task.Title(),
		IsCompleted: task.IsCompleted(),
	}
}

// NewTaskList maps tasks, keeping their order. The result is never nil so it encodes as [].
func NewTaskList(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, NewTask(task))
	}
	return out
}

// NewError returns an error body with optional metadata.
func NewError(message string, meta interface{}) ErrorResponse {
	return ErrorResponse{
		Error: message,
		Meta:  meta,
	}
}

// String returns the JSON representation (best-effort) for logging purposes.
func (e ErrorResponse) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}
