package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"guardDuty/internal/clock"
	"guardDuty/internal/domain"
	"guardDuty/internal/geofence"
	"guardDuty/internal/storage"
	"guardDuty/pkg/e"
)

// AdminService manages the reference data the duty engine reads: zones,
// guards, shift definitions and shift assignments.
type AdminService struct {
	zones    storage.ZoneRepository
	guards   storage.GuardRepository
	shifts   storage.ShiftRepository
	sessions SessionReloader
	clock    clock.Clock
	logger   *slog.Logger
}

func NewAdminService(store storage.Store, sessions SessionReloader, c clock.Clock, logger *slog.Logger) *AdminService {
	return &AdminService{
		zones:    store.Zones(),
		guards:   store.Guards(),
		shifts:   store.Shifts(),
		sessions: sessions,
		clock:    c,
		logger:   logger,
	}
}

func (s *AdminService) CreateZone(ctx context.Context, req domain.CreateZoneRequest) (*domain.GeofenceZone, error) {
	const op = "service.Admin.CreateZone"

	zone := &domain.GeofenceZone{
		ID:        uuid.New(),
		Name:      req.Name,
		Center:    domain.GeoPoint{Lat: req.Lat, Lng: req.Lng},
		RadiusM:   req.RadiusM,
		CreatedAt: s.now(),
	}
	if !geofence.ValidPoint(zone.Center) {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	if zone.RadiusM <= 0 {
		return nil, fmt.Errorf("%s: radius: %w", op, e.ErrInvalidInput)
	}

	if err := s.zones.CreateZone(ctx, zone); err != nil {
		return nil, err
	}
	s.logger.Info("zone created", slog.String("zone_id", zone.ID.String()), slog.Float64("radius_m", zone.RadiusM))
	return zone, nil
}

func (s *AdminService) GetZone(ctx context.Context, id uuid.UUID) (*domain.GeofenceZone, error) {
	return s.zones.GetZone(ctx, id)
}

func (s *AdminService) ListZones(ctx context.Context) ([]*domain.GeofenceZone, error) {
	return s.zones.ListZones(ctx)
}

func (s *AdminService) CreateGuard(ctx context.Context, req domain.CreateGuardRequest) (*domain.Guard, error) {
	guard := &domain.Guard{
		ID:        uuid.New(),
		Name:      req.Name,
		ZoneID:    req.ZoneID,
		CreatedAt: s.now(),
	}
	if err := s.guards.CreateGuard(ctx, guard); err != nil {
		return nil, err
	}
	s.logger.Info("guard created", slog.String("guard_id", guard.ID.String()))
	return guard, nil
}

func (s *AdminService) ListGuards(ctx context.Context) ([]*domain.Guard, error) {
	return s.guards.ListGuards(ctx)
}

// AssignZone changes the guard's zone. A guard on duty keeps the old zone
// until clock-out.
func (s *AdminService) AssignZone(ctx context.Context, guardID, zoneID uuid.UUID) error {
	if _, err := s.zones.GetZone(ctx, zoneID); err != nil {
		return err
	}
	if err := s.guards.AssignZone(ctx, guardID, zoneID); err != nil {
		return err
	}

	s.logger.Info("zone assigned", slog.String("guard_id", guardID.String()), slog.String("zone_id", zoneID.String()))
	if s.sessions != nil {
		s.sessions.Reload(guardID)
	}
	return nil
}

func (s *AdminService) CreateShift(ctx context.Context, req domain.CreateShiftRequest) (*domain.ShiftDefinition, error) {
	const op = "service.Admin.CreateShift"

	start, err := domain.ParseClockTime(req.Start)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", op, err, e.ErrInvalidInput)
	}
	end, err := domain.ParseClockTime(req.End)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", op, err, e.ErrInvalidInput)
	}
	if req.GraceMinutes < 0 {
		return nil, fmt.Errorf("%s: grace: %w", op, e.ErrInvalidInput)
	}

	shift := &domain.ShiftDefinition{
		Code:         req.Code,
		Name:         req.Name,
		Start:        start,
		End:          end,
		GraceMinutes: req.GraceMinutes,
		NightShift:   req.NightShift || end < start,
	}
	if err := s.shifts.CreateShift(ctx, shift); err != nil {
		return nil, err
	}
	s.logger.Info("shift created", slog.String("code", shift.Code), slog.Bool("night", shift.NightShift))
	return shift, nil
}

func (s *AdminService) ListShifts(ctx context.Context) ([]*domain.ShiftDefinition, error) {
	return s.shifts.ListShifts(ctx)
}

// ActivateAssignment makes the shift the guard's only active assignment.
func (s *AdminService) ActivateAssignment(ctx context.Context, req domain.ActivateAssignmentRequest) (*domain.ShiftAssignment, error) {
	const op = "service.Admin.ActivateAssignment"

	if req.EffectiveTo != nil && req.EffectiveTo.Before(req.EffectiveFrom) {
		return nil, fmt.Errorf("%s: effective range: %w", op, e.ErrInvalidInput)
	}
	if _, err := s.guards.GetGuard(ctx, req.GuardID); err != nil {
		return nil, err
	}

	a := &domain.ShiftAssignment{
		ID:            uuid.New(),
		GuardID:       req.GuardID,
		ShiftCode:     req.ShiftCode,
		EffectiveFrom: dateOnly(req.EffectiveFrom),
		Active:        true,
		CreatedAt:     s.now(),
	}
	if req.EffectiveTo != nil {
		to := dateOnly(*req.EffectiveTo)
		a.EffectiveTo = &to
	}

	if err := s.shifts.ActivateAssignment(ctx, a); err != nil {
		return nil, err
	}
	s.logger.Info("shift assignment activated",
		slog.String("guard_id", a.GuardID.String()),
		slog.String("shift", a.ShiftCode),
	)
	return a, nil
}

func (s *AdminService) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Microsecond)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
