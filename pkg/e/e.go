package e

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func Wrap(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternal           = errors.New("internal error")
	ErrDeadline           = errors.New("deadline exceeded")
	ErrCanceled           = errors.New("context canceled")
	ErrUniqueViolation    = errors.New("unique violation")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrWebHookEmpty       = errors.New("webhook queue is empty")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
)

// Duty preconditions. They are expected outcomes of a guard action, not faults.
var (
	ErrOutOfRange         = errors.New("outside assigned geofence")
	ErrOutsideShiftWindow = errors.New("outside shift window")
	ErrNoAssignedZone     = errors.New("no assigned zone")
	ErrAlreadyOnDuty      = errors.New("already on duty")
	ErrNotOnDuty          = errors.New("not on duty")
	ErrShiftCompleted     = errors.New("attendance already completed for today")
	ErrHoldNotActive      = errors.New("no hold in progress")
)

// Position provider failures.
var (
	ErrPositionPermission  = errors.New("position permission denied")
	ErrPositionUnavailable = errors.New("position unavailable")
	ErrPositionTimeout     = errors.New("position timeout")
)

var codes = []struct {
	err  error
	code string
}{
	{ErrOutOfRange, "out_of_range"},
	{ErrOutsideShiftWindow, "outside_shift_window"},
	{ErrNoAssignedZone, "no_assigned_zone"},
	{ErrAlreadyOnDuty, "already_on_duty"},
	{ErrNotOnDuty, "not_on_duty"},
	{ErrShiftCompleted, "shift_completed"},
	{ErrHoldNotActive, "hold_not_active"},
	{ErrPositionPermission, "position_permission_denied"},
	{ErrPositionUnavailable, "position_unavailable"},
	{ErrPositionTimeout, "position_timeout"},
	{ErrInvalidCoordinates, "invalid_coordinates"},
	{ErrNotFound, "not_found"},
	{ErrInvalidInput, "invalid_input"},
	{ErrConflict, "conflict"},
	{ErrUniqueViolation, "conflict"},
	{ErrUnauthorized, "unauthorized"},
	{ErrForbidden, "forbidden"},
}

// Code returns the stable API code for err, "internal" when it is not a known failure.
func Code(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return "internal"
}

// IsPrecondition reports whether err is a duty precondition or position failure.
func IsPrecondition(err error) bool {
	for _, target := range []error{
		ErrOutOfRange, ErrOutsideShiftWindow, ErrNoAssignedZone, ErrAlreadyOnDuty,
		ErrNotOnDuty, ErrShiftCompleted, ErrHoldNotActive,
		ErrPositionPermission, ErrPositionUnavailable, ErrPositionTimeout,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func WrapError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrDeadline)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, ErrCanceled)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505", "23P01":
			return fmt.Errorf("%s: %w", op, ErrUniqueViolation)
		case "23503", "23514":
			return fmt.Errorf("%s: %w", op, ErrInvalidInput)
		default:
			return fmt.Errorf("%s: pg error %s: %w", op, pgErr.Code, ErrInternal)
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, ErrInternal)
}
