// Package duty runs per-guard duty sessions: attendance transitions, geofence
// compliance supervision, GPS heartbeats and the panic hold gesture.
package duty

import (
	"context"
	"time"

	"github.com/google/uuid"

	"guardDuty/internal/domain"
)

//go:generate mockgen -source=ports.go -destination=mocks/mock.go
type GuardRepository interface {
	GetGuard(ctx context.Context, id uuid.UUID) (*domain.Guard, error)
}

type ZoneResolver interface {
	GetZone(ctx context.Context, id uuid.UUID) (*domain.GeofenceZone, error)
}

type ShiftRepository interface {
	// GetActiveShift returns nil, nil when the guard has no active assignment on day.
	GetActiveShift(ctx context.Context, guardID uuid.UUID, day time.Time) (*domain.ActiveShift, error)
}

type AttendanceRepository interface {
	CreateAttendance(ctx context.Context, rec *domain.AttendanceRecord) error
	GetAttendance(ctx context.Context, guardID uuid.UUID, workDate time.Time) (*domain.AttendanceRecord, error)
	GetOpenAttendance(ctx context.Context, guardID uuid.UUID) (*domain.AttendanceRecord, error)
	CloseAttendance(ctx context.Context, rec *domain.AttendanceRecord) error
}

type PositionRepository interface {
	SavePosition(ctx context.Context, sample *domain.PositionSample) error
}

type AlertCreator interface {
	Create(ctx context.Context, params domain.CreateAlertParams) (*domain.PanicAlert, error)
}
