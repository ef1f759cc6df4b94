package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr string
	}{
		{name: "simple", title: "Buy milk"},
		{name: "max length", title: strings.Repeat("a", MaxTitleLength)},
		{name: "multibyte at max length", title: strings.Repeat("é", MaxTitleLength)},
		{name: "astral runes count once", title: strings.Repeat("🥛", MaxTitleLength)},
		{name: "astral runes over max", title: strings.Repeat("🥛", MaxTitleLength+1), wantErr: "Task title cannot exceed 255 characters."},
		{name: "surrounding spaces kept", title: "  walk dog  "},
		{name: "empty", title: "", wantErr: "Task title cannot be empty."},
		{name: "whitespace only", title: " \t\n ", wantErr: "Task title cannot be empty."},
		{name: "too long", title: strings.Repeat("a", MaxTitleLength+1), wantErr: "Task title cannot exceed 255 characters."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := NewTask(tt.title, false)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Nil(t, task)
				assert.Equal(t, tt.wantErr, err.Error())
				assert.True(t, IsDomainError(err, ErrCodeInvalid))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.title, task.Title())
			assert.False(t, task.IsCompleted())
			assert.Zero(t, task.ID())
		})
	}
}

func TestTaskUpdate(t *testing.T) {
	task := HydrateTask(7, "Buy milk", false)

	require.NoError(t, task.Update("Buy oat milk", true))
	assert.Equal(t, int64(7), task.ID())
	assert.Equal(t, "Buy oat milk", task.Title())
	assert.True(t, task.IsCompleted())

	err := task.Update("   ", false)
	require.Error(t, err)
	assert.True(t, IsDomainError(err, ErrCodeInvalid))
	assert.Equal(t, "Buy oat milk", task.Title(), "failed update must not touch the task")
	assert.True(t, task.IsCompleted())
}

func TestTaskJSON(t *testing.T) {
	body, err := json.Marshal(HydrateTask(1, "Buy milk", true))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"title":"Buy milk","isCompleted":true}`, string(body))

	var decoded Task
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, int64(1), decoded.ID())
	assert.Equal(t, "Buy milk", decoded.Title())
	assert.True(t, decoded.IsCompleted())
}

func TestTaskNotFound(t *testing.T) {
	err := TaskNotFound(42)
	assert.Equal(t, "Task with ID 42 not found", Message(err))
	assert.True(t, IsDomainError(err, ErrCodeNotFound))
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestNewTaskEvent(t *testing.T) {
	task := HydrateTask(3, "Read", false)

	created := NewTaskEvent(EventTaskCreated, task.ID(), task)
	assert.NotEmpty(t, created.ID)
	assert.Same(t, task, created.Task)

	deleted := NewTaskEvent(EventTaskDeleted, task.ID(), task)
	assert.Nil(t, deleted.Task)
	assert.Equal(t, int64(3), deleted.TaskID)
	assert.NotEqual(t, created.ID, deleted.ID)
}
