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

type AlertRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAlertRepo(pool *pgxpool.Pool, logger *slog.Logger) *AlertRepo {
	return &AlertRepo{pool: pool, logger: logger}
}

const alertColumns = `
	a.id, a.guard_id, a.kind,
	ST_Y(a.point::geometry), ST_X(a.point::geometry),
	a.zone_id, a.distance_m, a.description, a.status,
	a.resolved_by, a.resolved_by_name, a.resolution_note, a.resolved_at, a.created_at`

const alertViewQuery = `SELECT` + alertColumns + `, g.name, COALESCE(z.name, '')
	FROM panic_alerts a
	JOIN guards g ON g.id = a.guard_id
	LEFT JOIN geofence_zones z ON z.id = COALESCE(a.zone_id, g.zone_id)`

func (r *AlertRepo) CreateAlert(ctx context.Context, alert *domain.PanicAlert) error {
	const op = "postgres.Alert.Create"

	if alert.ID == uuid.Nil {
		alert.ID = uuid.New()
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now().UTC()
	}
	alert.Status = domain.AlertOpen

	var lat, lng *float64
	if alert.Point != nil {
		lat, lng = &alert.Point.Lat, &alert.Point.Lng
	}

	const query = `
		INSERT INTO panic_alerts (id, guard_id, kind, point, zone_id, distance_m, description, status, created_at)
		VALUES (
			$1, $2, $3,
			CASE WHEN $4::float8 IS NULL THEN NULL ELSE ST_SetSRID(ST_MakePoint($4, $5), 4326) END,
			$6, $7, $8, $9, $10
		)
	`

	_, err := r.pool.Exec(ctx, query,
		alert.ID,
		alert.GuardID,
		alert.Kind,
		lng,
		lat,
		alert.ZoneID,
		alert.DistanceM,
		alert.Description,
		alert.Status,
		alert.CreatedAt,
	)
	if err != nil {
		r.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("guard_id", alert.GuardID.String()),
		)
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *AlertRepo) GetAlertView(ctx context.Context, id uuid.UUID) (*domain.AlertView, error) {
	const op = "postgres.Alert.GetView"

	view, err := scanAlertView(r.pool.QueryRow(ctx, alertViewQuery+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return view, nil
}

func (r *AlertRepo) ListOpenAlerts(ctx context.Context) ([]*domain.AlertView, error) {
	const op = "postgres.Alert.ListOpen"

	rows, err := r.pool.Query(ctx, alertViewQuery+` WHERE a.status = 'open' ORDER BY a.created_at DESC`)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var views []*domain.AlertView
	for rows.Next() {
		view, err := scanAlertView(rows)
		if err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return views, nil
}

// ResolveAlert is a single conditional update; of two concurrent resolvers
// exactly one sees a row.
func (r *AlertRepo) ResolveAlert(ctx context.Context, p domain.ResolveAlertParams) (*domain.PanicAlert, bool, error) {
	const op = "postgres.Alert.Resolve"

	const query = `
		UPDATE panic_alerts a
		SET status           = 'resolved',
		    resolved_by      = $2,
		    resolved_by_name = $3,
		    resolution_note  = $4,
		    resolved_at      = $5
		WHERE a.id = $1 AND a.status = 'open'
		RETURNING` + alertColumns

	alert, err := scanAlert(r.pool.QueryRow(ctx, query, p.AlertID, p.ResolverID, p.ResolverName, p.Note, p.At))
	if err == nil {
		return alert, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", p.AlertID.String()))
		return nil, false, e.WrapError(ctx, op, err)
	}

	// nothing updated: either resolved earlier or missing
	existing, err := scanAlert(r.pool.QueryRow(ctx, `SELECT`+alertColumns+` FROM panic_alerts a WHERE a.id = $1`, p.AlertID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, false, e.WrapError(ctx, op, err)
	}
	return existing, true, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func alertDest(a *domain.PanicAlert, lat, lng **float64) []any {
	return []any{
		&a.ID, &a.GuardID, &a.Kind,
		lat, lng,
		&a.ZoneID, &a.DistanceM, &a.Description, &a.Status,
		&a.ResolvedBy, &a.ResolverName, &a.ResolutionNote, &a.ResolvedAt, &a.CreatedAt,
	}
}

func finishAlert(a *domain.PanicAlert, lat, lng *float64) {
	if lat != nil && lng != nil {
		a.Point = &domain.GeoPoint{Lat: *lat, Lng: *lng}
	}
}

func scanAlert(row scanner) (*domain.PanicAlert, error) {
	var (
		a        domain.PanicAlert
		lat, lng *float64
	)
	if err := row.Scan(alertDest(&a, &lat, &lng)...); err != nil {
		return nil, err
	}
	finishAlert(&a, lat, lng)
	return &a, nil
}

func scanAlertView(row scanner) (*domain.AlertView, error) {
	var (
		a                   domain.PanicAlert
		lat, lng            *float64
		guardName, zoneName string
	)
	dest := append(alertDest(&a, &lat, &lng), &guardName, &zoneName)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	finishAlert(&a, lat, lng)
	view := a.View(guardName, zoneName)
	return &view, nil
}
