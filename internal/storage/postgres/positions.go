package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"guardDuty/internal/domain"
	"guardDuty/internal/geofence"
	"guardDuty/pkg/e"
)

type PositionRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPositionRepo(pool *pgxpool.Pool, logger *slog.Logger) *PositionRepo {
	return &PositionRepo{pool: pool, logger: logger}
}

func (r *PositionRepo) SavePosition(ctx context.Context, sample *domain.PositionSample) error {
	const op = "postgres.Position.Save"

	if sample == nil || sample.GuardID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if !geofence.ValidPoint(sample.Point) {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	if sample.ID == uuid.Nil {
		sample.ID = uuid.New()
	}
	if sample.CapturedAt.IsZero() {
		sample.CapturedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO position_samples (id, guard_id, point, accuracy_m, captured_at)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		sample.ID,
		sample.GuardID,
		sample.Point.Lng,
		sample.Point.Lat,
		sample.AccuracyM,
		sample.CapturedAt,
	)
	if err != nil {
		r.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("guard_id", sample.GuardID.String()),
		)
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// ListPositions returns the guard's samples captured at or after since, newest first.
func (r *PositionRepo) ListPositions(ctx context.Context, guardID uuid.UUID, since time.Time, limit int) ([]*domain.PositionSample, error) {
	const op = "postgres.Position.List"

	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	const query = `
		SELECT id, guard_id, ST_Y(point::geometry), ST_X(point::geometry), accuracy_m, captured_at
		FROM position_samples
		WHERE guard_id = $1 AND captured_at >= $2
		ORDER BY captured_at DESC
		LIMIT $3
	`

	rows, err := r.pool.Query(ctx, query, guardID, since, limit)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var samples []*domain.PositionSample
	for rows.Next() {
		var s domain.PositionSample
		if err := rows.Scan(&s.ID, &s.GuardID, &s.Point.Lat, &s.Point.Lng, &s.AccuracyM, &s.CapturedAt); err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		samples = append(samples, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return samples, nil
}
