package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"guardDuty/internal/api"
	"guardDuty/internal/api/handlers/http/admin"
	"guardDuty/internal/api/handlers/http/guard"
	"guardDuty/internal/api/handlers/http/supervisor"
	"guardDuty/internal/api/handlers/http/system"
	"guardDuty/internal/clock"
	"guardDuty/internal/config"
	"guardDuty/internal/duty"
	"guardDuty/internal/position"
	"guardDuty/internal/redis"
	"guardDuty/internal/service"
	"guardDuty/internal/storage"
	"guardDuty/internal/storage/memory"
	"guardDuty/internal/storage/postgres"
	"guardDuty/internal/workers"
	"guardDuty/pkg/logger"
)

const webhookQueueKey = "webhooks:queue"

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Store      storage.Store
	Redis      *redis.Redis
	Feed       *position.Feed
	Duty       *duty.Manager
	Hub        *service.AlertHub
	Webhooks   *service.WebhookSender
	Ingest     *workers.PositionIngest
	MQTT       *position.MQTTSource
}

// InitComponents builds the application. The postgres driver runs with Redis
// for the alert stream, zone cache and webhook queue; the memory driver keeps
// everything in process and pages nobody.
func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	c := &Components{logger: logger}
	clk := clock.Real()

	var (
		events   service.AlertEventLog
		zones    duty.ZoneResolver
		webhooks service.WebhookQueue
		checks   = map[string]system.Pinger{}
	)

	switch cfg.Storage {
	case config.StorageMemory:
		logger.Warn("Using in-memory storage, nothing survives a restart")
		store := memory.New()
		c.Store = store
		events = memory.NewEventLog(int(cfg.Redis.StreamMaxLen))
		zones = store.Zones()

	default:
		logger.Info("Initializing Postgres")
		pg, err := postgres.NewPostgres(ctx, cfg, logger)
		if err != nil {
			logger.Error("Failed to init postgres", slog.Any("error", err))
			return nil, fmt.Errorf("failed to init postgres: %w", err)
		}
		c.Store = pg

		logger.Info("Initializing Redis")
		rdb, err := redis.NewRedis(ctx, cfg, logger)
		if err != nil {
			pg.Close()
			return nil, fmt.Errorf("failed to init redis: %w", err)
		}
		c.Redis = rdb
		checks["redis"] = rdb

		events = redis.NewAlertStream(rdb, cfg.Redis.AlertStream, cfg.Redis.StreamMaxLen)
		zones = service.NewCachedZones(pg.Zones(), redis.NewZoneCache(rdb, cfg.Redis.ZoneCacheTTL), logger)

		if !cfg.Webhook.Disabled && cfg.Webhook.URL != "" {
			queue := redis.NewWebhookQueue(rdb, webhookQueueKey)
			webhooks = queue
			c.Webhooks = service.NewWebhookSender(logger, cfg.Webhook, queue)
		}
	}
	checks["storage"] = c.Store

	alerts := service.NewAlertService(c.Store.Alerts(), events, webhooks, clk, logger)
	c.Hub = service.NewAlertHub(events, c.Store.Alerts(), logger)

	c.Feed = position.NewFeed(0, logger)
	c.Duty = duty.NewManager(duty.Deps{
		Guards:     c.Store.Guards(),
		Zones:      zones,
		Shifts:     c.Store.Shifts(),
		Attendance: c.Store.Attendance(),
		Positions:  c.Store.Positions(),
		Alerts:     alerts,
		Provider:   c.Feed,
		Publisher:  c.Feed,
		Clock:      clk,
		Config:     cfg.Duty,
		Logger:     logger,
	})

	adminSvc := service.NewAdminService(c.Store, c.Duty, clk, logger)
	svc := service.NewService(alerts, adminSvc, c.Hub)

	c.Ingest = workers.NewPositionIngest(c.Feed, clk, cfg.MQTT.Workers, logger)
	if cfg.MQTT.Enabled {
		logger.Info("Initializing MQTT")
		src, err := position.NewMQTTSource(cfg.MQTT, logger)
		if err != nil {
			c.ShutdownAll()
			return nil, fmt.Errorf("failed to init mqtt: %w", err)
		}
		if err := src.Subscribe(c.Ingest.Handle); err != nil {
			src.Close()
			c.ShutdownAll()
			return nil, err
		}
		c.MQTT = src
	}

	c.HttpServer = api.NewServer(ctx, cfg, logger, api.Handlers{
		Guard:      guard.NewHandler(logger, guard.ManagerSessions(c.Duty), clk),
		Supervisor: supervisor.NewHandler(logger, svc.Alerts, svc.Hub),
		Admin:      admin.NewHandler(logger, svc.Admin),
		System:     system.NewHandler(logger, checks),
	})
	logger.Info("Initialized server")

	return c, nil
}

// RunBackground starts the hub, the webhook sender and the position ingest
// workers. They stop with ctx.
func (c *Components) RunBackground(ctx context.Context, wg *sync.WaitGroup) {
	run := func(name string, f func(context.Context)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f(ctx)
			c.logger.Info("background worker stopped", slog.String("worker", name))
		}()
	}

	run("alert_hub", c.Hub.Run)
	run("position_ingest", c.Ingest.Run)
	if c.Webhooks != nil {
		run("webhook_sender", c.Webhooks.Run)
	}
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	if c.MQTT != nil {
		c.MQTT.Close()
	}
	if c.Duty != nil {
		c.Duty.Shutdown()
	}
	if c.Store != nil {
		c.Store.Close()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
