// Package storage declares the persistence contracts shared by the postgres
// and memory drivers.
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"guardDuty/internal/domain"
)

type ZoneRepository interface {
	CreateZone(ctx context.Context, zone *domain.GeofenceZone) error
	GetZone(ctx context.Context, id uuid.UUID) (*domain.GeofenceZone, error)
	ListZones(ctx context.Context) ([]*domain.GeofenceZone, error)
}

type GuardRepository interface {
	CreateGuard(ctx context.Context, guard *domain.Guard) error
	GetGuard(ctx context.Context, id uuid.UUID) (*domain.Guard, error)
	ListGuards(ctx context.Context) ([]*domain.Guard, error)
	AssignZone(ctx context.Context, guardID, zoneID uuid.UUID) error
}

type ShiftRepository interface {
	CreateShift(ctx context.Context, shift *domain.ShiftDefinition) error
	ListShifts(ctx context.Context) ([]*domain.ShiftDefinition, error)
	// ActivateAssignment deactivates the guard's current assignment and
	// inserts a, atomically.
	ActivateAssignment(ctx context.Context, a *domain.ShiftAssignment) error
	GetActiveShift(ctx context.Context, guardID uuid.UUID, day time.Time) (*domain.ActiveShift, error)
}

type AttendanceRepository interface {
	CreateAttendance(ctx context.Context, rec *domain.AttendanceRecord) error
	GetAttendance(ctx context.Context, guardID uuid.UUID, workDate time.Time) (*domain.AttendanceRecord, error)
	GetOpenAttendance(ctx context.Context, guardID uuid.UUID) (*domain.AttendanceRecord, error)
	// CloseAttendance sets the check-out fields of a still open record.
	CloseAttendance(ctx context.Context, rec *domain.AttendanceRecord) error
}

type PositionRepository interface {
	SavePosition(ctx context.Context, sample *domain.PositionSample) error
	ListPositions(ctx context.Context, guardID uuid.UUID, since time.Time, limit int) ([]*domain.PositionSample, error)
}

type AlertRepository interface {
	CreateAlert(ctx context.Context, alert *domain.PanicAlert) error
	GetAlertView(ctx context.Context, id uuid.UUID) (*domain.AlertView, error)
	ListOpenAlerts(ctx context.Context) ([]*domain.AlertView, error)
	// ResolveAlert transitions an open alert to resolved. An alert resolved
	// earlier is returned unchanged with alreadyResolved set.
	ResolveAlert(ctx context.Context, p domain.ResolveAlertParams) (alert *domain.PanicAlert, alreadyResolved bool, err error)
}

// Store is one storage driver.
type Store interface {
	Zones() ZoneRepository
	Guards() GuardRepository
	Shifts() ShiftRepository
	Attendance() AttendanceRepository
	Positions() PositionRepository
	Alerts() AlertRepository
	Ping(ctx context.Context) error
	Close()
}
