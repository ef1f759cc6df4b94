package main

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/fastygo/tasklist/api/handler"
	"github.com/fastygo/tasklist/internal/config"
	"github.com/fastygo/tasklist/internal/infrastructure/buffer"
	"github.com/fastygo/tasklist/internal/infrastructure/monitor"
	pgInfra "github.com/fastygo/tasklist/internal/infrastructure/postgres"
	redisInfra "github.com/fastygo/tasklist/internal/infrastructure/redis"
	sqliteInfra "github.com/fastygo/tasklist/internal/infrastructure/sqlite"
	"github.com/fastygo/tasklist/internal/metrics"
	"github.com/fastygo/tasklist/internal/middleware"
	"github.com/fastygo/tasklist/internal/router"
	"github.com/fastygo/tasklist/internal/services"
	"github.com/fastygo/tasklist/internal/services/lifecycle"
	"github.com/fastygo/tasklist/pkg/httpcontext"
	"github.com/fastygo/tasklist/repository"
	"github.com/fastygo/tasklist/repository/postgres"
	redisRepo "github.com/fastygo/tasklist/repository/redis"
	"github.com/fastygo/tasklist/repository/sqlite"
	"github.com/fastygo/tasklist/usecase"
	taskUC "github.com/fastygo/tasklist/usecase/task"
)

func (a *app) serve(parent context.Context) error {
	cfg, zapLogger := a.cfg, a.logger
	if parent == nil {
		parent = context.Background()
	}

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	appCtx, cancel := manager.Listen(parent)
	defer cancel()

	defer func() {
		if err := manager.Shutdown(context.Background()); err != nil {
			zapLogger.Error("graceful shutdown error", zap.Error(err))
		}
	}()

	if cfg.Migrations.Enabled {
		if err := a.migrate(); err != nil {
			zapLogger.Error("migrations failed", zap.Error(err))
			return err
		}
	}

	taskRepo, storePing, err := openStore(appCtx, cfg, manager, zapLogger)
	if err != nil {
		zapLogger.Error("store connection failed", zap.String("driver", cfg.Database.Driver), zap.Error(err))
		return err
	}

	m := metrics.New()

	var (
		events      usecase.EventPublisher
		redisClient *goredis.Client
		redisPing   monitor.PingFunc
		outbox      *buffer.Store
	)
	if cfg.Redis.Enabled {
		redisClient, err = redisInfra.NewClient(appCtx, cfg.Redis, zapLogger)
		if err != nil {
			zapLogger.Error("redis connection failed", zap.Error(err))
			return err
		}
		manager.Register("redis", func(ctx context.Context) error {
			return redisClient.Close()
		})
		redisPing = redisInfra.Ping(redisClient)

		outbox, err = buffer.Open(cfg.Outbox.Path, "outbox")
		if err != nil {
			zapLogger.Error("failed to open outbox store", zap.Error(err))
			return err
		}
		manager.Register("outbox_store", func(ctx context.Context) error {
			return outbox.Close()
		})
	}

	mon := monitor.New(storePing, redisPing, outbox, cfg.Monitor.Interval, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	if cfg.Redis.Enabled {
		eventOutbox := services.NewOutbox(
			outbox,
			mon,
			redisRepo.NewEventPublisher(redisClient, cfg.Redis.Channel),
			m,
			zapLogger,
			services.OutboxConfig{
				Interval:   cfg.Outbox.DrainInterval,
				BatchSize:  cfg.Outbox.BatchSize,
				MaxRetries: cfg.Outbox.MaxRetry,
				Retention:  time.Duration(cfg.Outbox.RetentionHours) * time.Hour,
			},
		)
		eventOutbox.Start()
		manager.Register("event_outbox", func(ctx context.Context) error {
			eventOutbox.Stop(ctx)
			return nil
		})
		events = eventOutbox
	}

	taskUseCase := taskUC.New(taskRepo, events, zapLogger)
	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	r := router.New(router.Handlers{
		Task:    apiHandler.NewTaskHandler(taskUseCase, ctxAdapter, zapLogger),
		Report:  apiHandler.NewReportHandler(taskUseCase, ctxAdapter, zapLogger),
		Health:  apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
		Metrics: m.Handler(),
	}, middleware.RateLimit(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst))

	server := &fasthttp.Server{
		Handler:      middleware.Access(zapLogger, m)(r.Handler),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	serveErr := make(chan error, 1)
	go func() {
		zapLogger.Info("server started",
			zap.String("address", cfg.Address()),
			zap.String("driver", cfg.Database.Driver),
			zap.Bool("events", cfg.Redis.Enabled))
		serveErr <- server.ListenAndServe(cfg.Address())
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.ShutdownWithContext(ctx)
	})

	select {
	case <-appCtx.Done():
		return nil
	case err := <-serveErr:
		zapLogger.Error("server crashed", zap.Error(err))
		return err
	}
}

// openStore connects the configured task store and registers its shutdown hook.
func openStore(ctx context.Context, cfg *config.Config, manager *lifecycle.Manager, logger *zap.Logger) (repository.TaskRepository, monitor.PingFunc, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		pool, err := pgInfra.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, nil, err
		}
		manager.Register("postgres", func(ctx context.Context) error {
			pool.Close()
			return nil
		})
		return postgres.NewTaskRepository(pool), pool.Ping, nil

	default:
		db, err := sqliteInfra.Open(ctx, cfg.Database.SQLitePath, logger)
		if err != nil {
			return nil, nil, err
		}
		manager.Register("sqlite", func(ctx context.Context) error {
			return db.Close()
		})
		return sqlite.NewTaskRepository(db), db.PingContext, nil
	}
}
