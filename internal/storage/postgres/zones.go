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

type ZoneRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewZoneRepo(pool *pgxpool.Pool, logger *slog.Logger) *ZoneRepo {
	return &ZoneRepo{pool: pool, logger: logger}
}

const zoneColumns = `
	id,
	name,
	ST_Y(center::geometry) AS lat,
	ST_X(center::geometry) AS lng,
	radius_m,
	created_at`

func (r *ZoneRepo) CreateZone(ctx context.Context, zone *domain.GeofenceZone) error {
	const op = "postgres.Zone.Create"

	const query = `
		INSERT INTO geofence_zones (id, name, center, radius_m, created_at)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5, $6)
	`

	if zone.ID == uuid.Nil {
		zone.ID = uuid.New()
	}
	if zone.CreatedAt.IsZero() {
		zone.CreatedAt = time.Now().UTC()
	}

	_, err := r.pool.Exec(ctx, query,
		zone.ID,
		zone.Name,
		zone.Center.Lng,
		zone.Center.Lat,
		zone.RadiusM,
		zone.CreatedAt,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *ZoneRepo) GetZone(ctx context.Context, id uuid.UUID) (*domain.GeofenceZone, error) {
	const op = "postgres.Zone.Get"

	query := `SELECT` + zoneColumns + ` FROM geofence_zones WHERE id = $1`

	zone, err := scanZone(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return zone, nil
}

func (r *ZoneRepo) ListZones(ctx context.Context) ([]*domain.GeofenceZone, error) {
	const op = "postgres.Zone.List"

	query := `SELECT` + zoneColumns + ` FROM geofence_zones ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var zones []*domain.GeofenceZone
	for rows.Next() {
		zone, err := scanZone(rows)
		if err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return zones, nil
}

func scanZone(row pgx.Row) (*domain.GeofenceZone, error) {
	var z domain.GeofenceZone
	if err := row.Scan(&z.ID, &z.Name, &z.Center.Lat, &z.Center.Lng, &z.RadiusM, &z.CreatedAt); err != nil {
		return nil, err
	}
	return &z, nil
}
