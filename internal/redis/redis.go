package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"guardDuty/internal/config"
)

const connectTimeout = 5 * time.Second

// Redis owns the client shared by the zone cache, the page queue and the
// alert stream.
type Redis struct {
	Client *redis.Client
}

func NewRedis(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Redis, error) {
	const op = "redis.NewRedis"

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Error("Failed to ping Redis", slog.String("addr", cfg.Redis.Addr), slog.Any("error", err))
		if cerr := rdb.Close(); cerr != nil {
			logger.Warn("Failed to close Redis client", slog.Any("error", cerr))
		}
		return nil, fmt.Errorf("%s: ping %s: %w", op, cfg.Redis.Addr, err)
	}
	logger.Info("Connected to Redis",
		slog.String("addr", cfg.Redis.Addr),
		slog.Int("db", cfg.Redis.DB),
		slog.String("alert_stream", cfg.Redis.AlertStream),
	)

	return &Redis{Client: rdb}, nil
}

// Ping backs the redis entry of the health check.
func (r *Redis) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	return r.Client.Close()
}
