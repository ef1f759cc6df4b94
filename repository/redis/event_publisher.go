package redis

import (
	"context"
	"encoding/json"
	"fmt"

	redislib "github.com/redis/go-redis/v9"

	"github.com/fastygo/tasklist/domain"
	"github.com/fastygo/tasklist/repository"
)

type eventPublisher struct {
	client  *redislib.Client
	channel string
}

// NewEventPublisher creates a publisher that sends task events to a Redis pub/sub channel.
func NewEventPublisher(client *redislib.Client, channel string) repository.EventPublisher {
	if channel == "" {
		channel = "tasks:events"
	}
	return &eventPublisher{
		client:  client,
		channel: channel,
	}
}

func (p *eventPublisher) Publish(ctx context.Context, event domain.TaskEvent) error {
	if event.ID == "" {
		return domain.ErrInvalidPayload
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}
	return nil
}
