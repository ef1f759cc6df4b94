package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fastygo/tasklist/domain"
)

func TestPublishRejectsEventsWithoutID(t *testing.T) {
	p := NewEventPublisher(nil, "")

	err := p.Publish(context.Background(), domain.TaskEvent{Type: domain.EventTaskCreated})
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
	assert.Equal(t, "tasks:events", p.(*eventPublisher).channel)
}
