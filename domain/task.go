package domain

import (
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// MaxTitleLength is the longest title a task may carry, counted in characters.
const MaxTitleLength = 255

const (
	msgTitleEmpty   = "Task title cannot be empty."
	msgTitleTooLong = "Task title cannot exceed 255 characters."
)

// Task is a single to-do item. Fields are only reachable through accessors so the
// title invariant cannot be bypassed by callers.
type Task struct {
	id          int64
	title       string
	isCompleted bool
}

// NewTask builds a task that has not been persisted yet (ID() == 0).
func NewTask(title string, isCompleted bool) (*Task, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	return &Task{title: title, isCompleted: isCompleted}, nil
}

// HydrateTask rebuilds a task from a stored row. Only the persistence layer should call it:
// rows are trusted and the title is not validated again.
func HydrateTask(id int64, title string, isCompleted bool) *Task {
	return &Task{id: id, title: title, isCompleted: isCompleted}
}

// Update replaces title and completion flag. On error the task is left untouched.
func (t *Task) Update(title string, isCompleted bool) error {
	if err := ValidateTitle(title); err != nil {
		return err
	}
	t.title = title
	t.isCompleted = isCompleted
	return nil
}

func (t *Task) ID() int64 {
	if t == nil {
		return 0
	}
	return t.id
}

func (t *Task) Title() string {
	if t == nil {
		return ""
	}
	return t.title
}

func (t *Task) IsCompleted() bool {
	return t != nil && t.isCompleted
}

// MarshalJSON renders the public representation used in events and the outbox.
func (t *Task) MarshalJSON() ([]byte, error) {
	return json.Marshal(taskJSON{ID: t.ID(), Title: t.Title(), IsCompleted: t.IsCompleted()})
}

// UnmarshalJSON hydrates a task from its public representation.
func (t *Task) UnmarshalJSON(data []byte) error {
	var raw taskJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = Task{id: raw.ID, title: raw.Title, isCompleted: raw.IsCompleted}
	return nil
}

type taskJSON struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"isCompleted"`
}

// ValidateTitle reports whether title may be stored on a task. Length is counted
// in runes, so a character outside the BMP counts once.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return NewError(ErrCodeInvalid, msgTitleEmpty)
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return NewError(ErrCodeInvalid, msgTitleTooLong)
	}
	return nil
}
