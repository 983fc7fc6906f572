package postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"guardDuty/internal/domain"
	"guardDuty/pkg/e"
)

type ShiftRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewShiftRepo(pool *pgxpool.Pool, logger *slog.Logger) *ShiftRepo {
	return &ShiftRepo{pool: pool, logger: logger}
}

func (r *ShiftRepo) CreateShift(ctx context.Context, shift *domain.ShiftDefinition) error {
	const op = "postgres.Shift.Create"

	const query = `
		INSERT INTO shift_definitions (code, name, start_minute, end_minute, grace_minutes, night_shift)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		shift.Code,
		shift.Name,
		int(shift.Start),
		int(shift.End),
		shift.GraceMinutes,
		shift.NightShift,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("code", shift.Code))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *ShiftRepo) ListShifts(ctx context.Context) ([]*domain.ShiftDefinition, error) {
	const op = "postgres.Shift.List"

	const query = `
		SELECT code, name, start_minute, end_minute, grace_minutes, night_shift
		FROM shift_definitions
		ORDER BY start_minute, code
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var shifts []*domain.ShiftDefinition
	for rows.Next() {
		var (
			s          domain.ShiftDefinition
			start, end int
		)
		if err := rows.Scan(&s.Code, &s.Name, &start, &end, &s.GraceMinutes, &s.NightShift); err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		s.Start, s.End = domain.ClockTime(start), domain.ClockTime(end)
		shifts = append(shifts, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return shifts, nil
}

// ActivateAssignment runs in one transaction; the partial unique index on
// active assignments turns a concurrent activation into a unique violation.
func (r *ShiftRepo) ActivateAssignment(ctx context.Context, a *domain.ShiftAssignment) error {
	const op = "postgres.Shift.ActivateAssignment"

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	a.Active = true

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error("begin tx failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`UPDATE shift_assignments SET active = false WHERE guard_id = $1 AND active`,
		a.GuardID,
	); err != nil {
		r.logger.Error("deactivate failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	const insert = `
		INSERT INTO shift_assignments (id, guard_id, shift_code, effective_from, effective_to, active, created_at)
		VALUES ($1, $2, $3, $4, $5, true, $6)
	`
	if _, err := tx.Exec(ctx, insert,
		a.ID,
		a.GuardID,
		a.ShiftCode,
		a.EffectiveFrom,
		a.EffectiveTo,
		a.CreatedAt,
	); err != nil {
		r.logger.Error("insert assignment failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("commit failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *ShiftRepo) GetActiveShift(ctx context.Context, guardID uuid.UUID, day time.Time) (*domain.ActiveShift, error) {
	const op = "postgres.Shift.GetActive"

	const query = `
		SELECT a.id, a.guard_id, a.shift_code, a.effective_from, a.effective_to, a.active, a.created_at,
		       s.code, s.name, s.start_minute, s.end_minute, s.grace_minutes, s.night_shift
		FROM shift_assignments a
		JOIN shift_definitions s ON s.code = a.shift_code
		WHERE a.guard_id = $1
		  AND a.active
		  AND a.effective_from <= $2::date
		  AND (a.effective_to IS NULL OR a.effective_to >= $2::date)
	`

	var (
		as         domain.ActiveShift
		start, end int
	)
	err := r.pool.QueryRow(ctx, query, guardID, day).Scan(
		&as.Assignment.ID,
		&as.Assignment.GuardID,
		&as.Assignment.ShiftCode,
		&as.Assignment.EffectiveFrom,
		&as.Assignment.EffectiveTo,
		&as.Assignment.Active,
		&as.Assignment.CreatedAt,
		&as.Shift.Code,
		&as.Shift.Name,
		&start,
		&end,
		&as.Shift.GraceMinutes,
		&as.Shift.NightShift,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	as.Shift.Start, as.Shift.End = domain.ClockTime(start), domain.ClockTime(end)
	return &as, nil
}
