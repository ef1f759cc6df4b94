package monitor

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/tasklist/internal/infrastructure/buffer"
)

func okPing(context.Context) error   { return nil }
func downPing(context.Context) error { return errors.New("connection refused") }

func TestMonitorStatus(t *testing.T) {
	store, err := buffer.Open(filepath.Join(t.TempDir(), "outbox.db"), "")
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.Enqueue(buffer.Item{EventType: "task.created"}))

	m := New(okPing, downPing, store, time.Hour, nil)
	m.Start()
	defer m.Stop()

	status := m.GetStatus()
	assert.True(t, status.Store)
	assert.False(t, status.Redis)
	assert.True(t, status.RedisEnabled)
	assert.True(t, status.Outbox)
	assert.Equal(t, 1, status.OutboxSize)
	assert.False(t, status.Healthy())
	assert.False(t, m.PublisherOnline())
}

func TestMonitorRedisDisabled(t *testing.T) {
	m := New(okPing, nil, nil, time.Hour, nil)
	m.Start()
	m.Stop()
	m.Stop()

	status := m.GetStatus()
	assert.False(t, status.RedisEnabled)
	assert.False(t, status.Outbox)
	assert.True(t, status.Healthy())
}
