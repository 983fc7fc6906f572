package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"guardDuty/internal/config"
	"guardDuty/pkg/e"
)

type Postgres struct {
	Pool *pgxpool.Pool

	zones      *ZoneRepo
	guards     *GuardRepo
	shifts     *ShiftRepo
	attendance *AttendanceRepo
	positions  *PositionRepo
	alerts     *AlertRepo
}

func NewPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Postgres, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.SSLMode,
	)

	logger.Info("Connecting to Postgres",
		slog.String("host", cfg.Postgres.Host),
		slog.Int("port", cfg.Postgres.Port),
		slog.String("database", cfg.Postgres.Database),
	)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("Failed to parse pgx config", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.ParseConfig", err)
	}
	if cfg.Postgres.MaxConns > 0 {
		poolCfg.MaxConns = cfg.Postgres.MaxConns
	}
	if cfg.Postgres.MinConns > 0 {
		poolCfg.MinConns = cfg.Postgres.MinConns
	}
	if cfg.Postgres.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.Postgres.MaxConnLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error("Failed to create pgx pool", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.NewWithConfig", err)
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Error("Failed to ping Postgres database", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Ping", err)
	}
	logger.Info("Connected to Postgres successfully")

	if cfg.Postgres.Migrate {
		if err := Migrate(ctx, pool); err != nil {
			logger.Error("Schema migration failed", slog.String("error", err.Error()))
			pool.Close()
			return nil, e.Wrap("storage.pg.NewPostgres.Migrate", err)
		}
		logger.Info("Schema is up to date")
	}

	return New(pool, logger), nil
}

// New builds the repositories over an existing pool.
func New(pool *pgxpool.Pool, logger *slog.Logger) *Postgres {
	return &Postgres{
		Pool:       pool,
		zones:      NewZoneRepo(pool, logger),
		guards:     NewGuardRepo(pool, logger),
		shifts:     NewShiftRepo(pool, logger),
		attendance: NewAttendanceRepo(pool, logger),
		positions:  NewPositionRepo(pool, logger),
		alerts:     NewAlertRepo(pool, logger),
	}
}
