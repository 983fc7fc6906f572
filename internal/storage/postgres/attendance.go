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

type AttendanceRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAttendanceRepo(pool *pgxpool.Pool, logger *slog.Logger) *AttendanceRepo {
	return &AttendanceRepo{pool: pool, logger: logger}
}

const attendanceColumns = `
	id, guard_id, work_date, check_in_at, check_in_zone_id,
	check_out_at, check_out_zone_id, total_hours, shift_validated`

func (r *AttendanceRepo) CreateAttendance(ctx context.Context, rec *domain.AttendanceRecord) error {
	const op = "postgres.Attendance.Create"

	const query = `
		INSERT INTO attendance (id, guard_id, work_date, check_in_at, check_in_zone_id, shift_validated)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	_, err := r.pool.Exec(ctx, query,
		rec.ID,
		rec.GuardID,
		rec.WorkDate,
		rec.CheckInAt,
		rec.CheckInZoneID,
		rec.ShiftValidated,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("guard_id", rec.GuardID.String()))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *AttendanceRepo) GetAttendance(ctx context.Context, guardID uuid.UUID, workDate time.Time) (*domain.AttendanceRecord, error) {
	const op = "postgres.Attendance.Get"

	query := `SELECT` + attendanceColumns + ` FROM attendance WHERE guard_id = $1 AND work_date = $2::date`

	rec, err := scanAttendance(r.pool.QueryRow(ctx, query, guardID, workDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return rec, nil
}

// GetOpenAttendance returns the newest record without a check-out.
func (r *AttendanceRepo) GetOpenAttendance(ctx context.Context, guardID uuid.UUID) (*domain.AttendanceRecord, error) {
	const op = "postgres.Attendance.GetOpen"

	query := `SELECT` + attendanceColumns + `
		FROM attendance
		WHERE guard_id = $1 AND check_out_at IS NULL
		ORDER BY work_date DESC
		LIMIT 1`

	rec, err := scanAttendance(r.pool.QueryRow(ctx, query, guardID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return rec, nil
}

func (r *AttendanceRepo) CloseAttendance(ctx context.Context, rec *domain.AttendanceRecord) error {
	const op = "postgres.Attendance.Close"

	const query = `
		UPDATE attendance
		SET check_out_at      = $2,
		    check_out_zone_id = $3,
		    total_hours       = $4
		WHERE id = $1 AND check_out_at IS NULL
	`

	cmd, err := r.pool.Exec(ctx, query, rec.ID, rec.CheckOutAt, rec.CheckOutZoneID, rec.TotalHours)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", rec.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func scanAttendance(row pgx.Row) (*domain.AttendanceRecord, error) {
	var rec domain.AttendanceRecord
	err := row.Scan(
		&rec.ID,
		&rec.GuardID,
		&rec.WorkDate,
		&rec.CheckInAt,
		&rec.CheckInZoneID,
		&rec.CheckOutAt,
		&rec.CheckOutZoneID,
		&rec.TotalHours,
		&rec.ShiftValidated,
	)
	if err != nil {
		return nil, err
	}
	rec.CheckInAt = rec.CheckInAt.UTC()
	if rec.CheckOutAt != nil {
		out := rec.CheckOutAt.UTC()
		rec.CheckOutAt = &out
	}
	return &rec, nil
}
