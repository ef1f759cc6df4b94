package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/fastygo/tasklist/domain"
	"github.com/fastygo/tasklist/internal/infrastructure/buffer"
	"github.com/fastygo/tasklist/internal/metrics"
	"github.com/fastygo/tasklist/repository"
	"github.com/fastygo/tasklist/usecase"
)

// ConnectionHealth abstracts the connection monitor functionality.
type ConnectionHealth interface {
	PublisherOnline() bool
}

// OutboxConfig controls how frequently the outbox is drained.
type OutboxConfig struct {
	Interval   time.Duration
	BatchSize  int
	MaxRetries int
	Retention  time.Duration
}

// Outbox delivers task events, parking them in a local store while the publisher is unreachable.
type Outbox struct {
	store     *buffer.Store
	monitor   ConnectionHealth
	publisher repository.EventPublisher
	metrics   *metrics.Metrics
	logger    *zap.Logger
	cron      *cron.Cron
	cfg       OutboxConfig
}

func NewOutbox(
	store *buffer.Store,
	monitor ConnectionHealth,
	publisher repository.EventPublisher,
	m *metrics.Metrics,
	logger *zap.Logger,
	cfg OutboxConfig,
) *Outbox {
	if cfg.Interval < time.Second {
		cfg.Interval = 30 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 5
	}
	if cfg.Retention <= 0 {
		cfg.Retention = 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	o := &Outbox{
		store:     store,
		monitor:   monitor,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
		cfg:       cfg,
		cron:      cron.New(cron.WithSeconds()),
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	_, _ = o.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Interval)
		defer cancel()
		if err := o.Drain(ctx); err != nil {
			o.logger.Error("outbox drain failed", zap.Error(err))
		}
		if removed, err := o.store.Cleanup(time.Now().Add(-cfg.Retention)); err != nil {
			o.logger.Error("outbox cleanup failed", zap.Error(err))
		} else if removed > 0 {
			o.logger.Warn("expired events removed from outbox", zap.Int("count", removed))
		}
	})

	return o
}

// Start launches the cron scheduler.
func (o *Outbox) Start() {
	if o == nil || o.cron == nil {
		return
	}
	o.cron.Start()
	o.logger.Info("event outbox started", zap.Duration("interval", o.cfg.Interval))
}

// Stop waits for a running drain to finish or for ctx to expire.
func (o *Outbox) Stop(ctx context.Context) {
	if o == nil || o.cron == nil {
		return
	}
	stopCtx := o.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	o.logger.Info("event outbox stopped")
}

// PublishTaskEvent publishes immediately when the publisher is online and the outbox
// is empty. Otherwise the event queues behind the backlog so Drain keeps the order.
func (o *Outbox) PublishTaskEvent(ctx context.Context, event domain.TaskEvent) error {
	if o == nil || o.store == nil {
		return fmt.Errorf("event outbox not configured")
	}

	backlog, err := o.store.Size()
	if err != nil {
		backlog = -1
	}
	if backlog == 0 && (o.monitor == nil || o.monitor.PublisherOnline()) {
		err := o.publisher.Publish(ctx, event)
		if err == nil {
			o.metrics.ObserveEvent(string(event.Type), metrics.OutcomePublished)
			return nil
		}
		o.logger.Warn("event publish failed, buffering", zap.String("event_id", event.ID), zap.Error(err))
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := o.store.Enqueue(buffer.Item{
		ID:        event.ID,
		EventType: string(event.Type),
		TaskID:    event.TaskID,
		Data:      payload,
		Timestamp: event.OccurredAt,
	}); err != nil {
		o.metrics.ObserveEvent(string(event.Type), metrics.OutcomeFailed)
		return err
	}
	o.metrics.ObserveEvent(string(event.Type), metrics.OutcomeBuffered)
	return nil
}

// Drain delivers buffered events in order. It stops at the first failure so later
// events never overtake an earlier one.
func (o *Outbox) Drain(ctx context.Context) error {
	if o == nil || o.store == nil {
		return nil
	}
	if o.monitor != nil && !o.monitor.PublisherOnline() {
		o.logger.Debug("skipping outbox drain (publisher offline)")
		return nil
	}

	items, err := o.store.GetBatch(o.cfg.BatchSize)
	if err != nil {
		return err
	}

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return err
		}

		var event domain.TaskEvent
		if err := json.Unmarshal(item.Data, &event); err != nil {
			o.logger.Error("dropping undecodable outbox item", zap.String("item_id", item.ID), zap.Error(err))
			o.metrics.ObserveEvent(item.EventType, metrics.OutcomeDropped)
			if err := o.store.Remove(item); err != nil {
				return err
			}
			continue
		}

		if err := o.publisher.Publish(ctx, event); err != nil {
			item.Retries++
			if item.Retries >= o.cfg.MaxRetries {
				o.logger.Warn("dropping outbox item (max retries reached)",
					zap.String("item_id", item.ID),
					zap.Int("retries", item.Retries),
					zap.Error(err))
				o.metrics.ObserveEvent(item.EventType, metrics.OutcomeDropped)
				if err := o.store.Remove(item); err != nil {
					return err
				}
				continue
			}
			if err := o.store.Save(item); err != nil {
				o.logger.Error("failed to record outbox retry", zap.Error(err))
			}
			return fmt.Errorf("publish %s: %w", item.ID, err)
		}

		o.metrics.ObserveEvent(item.EventType, metrics.OutcomePublished)
		if err := o.store.Remove(item); err != nil {
			o.logger.Warn("failed to purge delivered outbox item", zap.Error(err))
		}
	}
	return nil
}

// Size returns the number of buffered events.
func (o *Outbox) Size() int {
	if o == nil || o.store == nil {
		return 0
	}
	size, err := o.store.Size()
	if err != nil {
		return 0
	}
	return size
}

var _ usecase.EventPublisher = (*Outbox)(nil)
