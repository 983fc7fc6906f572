package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"guardDuty/internal/domain"
	"guardDuty/pkg/e"
)

type GuardRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewGuardRepo(pool *pgxpool.Pool, logger *slog.Logger) *GuardRepo {
	return &GuardRepo{pool: pool, logger: logger}
}

func (r *GuardRepo) CreateGuard(ctx context.Context, guard *domain.Guard) error {
	const op = "postgres.Guard.Create"

	const query = `
		INSERT INTO guards (id, name, zone_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	if guard.ID == uuid.Nil {
		guard.ID = uuid.New()
	}
	if guard.CreatedAt.IsZero() {
		guard.CreatedAt = time.Now().UTC()
	}

	if _, err := r.pool.Exec(ctx, query, guard.ID, guard.Name, guard.ZoneID, guard.CreatedAt); err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *GuardRepo) GetGuard(ctx context.Context, id uuid.UUID) (*domain.Guard, error) {
	const op = "postgres.Guard.Get"

	const query = `SELECT id, name, zone_id, created_at FROM guards WHERE id = $1`

	var g domain.Guard
	err := r.pool.QueryRow(ctx, query, id).Scan(&g.ID, &g.Name, &g.ZoneID, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return &g, nil
}

func (r *GuardRepo) ListGuards(ctx context.Context) ([]*domain.Guard, error) {
	const op = "postgres.Guard.List"

	rows, err := r.pool.Query(ctx, `SELECT id, name, zone_id, created_at FROM guards ORDER BY name`)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var guards []*domain.Guard
	for rows.Next() {
		var g domain.Guard
		if err := rows.Scan(&g.ID, &g.Name, &g.ZoneID, &g.CreatedAt); err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		guards = append(guards, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return guards, nil
}

func (r *GuardRepo) AssignZone(ctx context.Context, guardID, zoneID uuid.UUID) error {
	const op = "postgres.Guard.AssignZone"

	cmd, err := r.pool.Exec(ctx, `UPDATE guards SET zone_id = $2 WHERE id = $1`, guardID, zoneID)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("guard_id", guardID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}
