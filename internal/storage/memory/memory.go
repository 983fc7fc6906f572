// Package memory is the in-process storage driver used for local runs and tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"guardDuty/internal/domain"
	"guardDuty/internal/geofence"
	"guardDuty/internal/storage"
	"guardDuty/pkg/e"
)

// Store keeps every table behind one lock, which gives the same atomicity as
// the conditional updates and transactions of the postgres driver.
type Store struct {
	mu          sync.RWMutex
	zones       map[uuid.UUID]domain.GeofenceZone
	guards      map[uuid.UUID]domain.Guard
	shifts      map[string]domain.ShiftDefinition
	assignments map[uuid.UUID]domain.ShiftAssignment
	attendance  map[uuid.UUID]domain.AttendanceRecord
	positions   []domain.PositionSample
	alerts      map[uuid.UUID]domain.PanicAlert
}

var _ storage.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		zones:       make(map[uuid.UUID]domain.GeofenceZone),
		guards:      make(map[uuid.UUID]domain.Guard),
		shifts:      make(map[string]domain.ShiftDefinition),
		assignments: make(map[uuid.UUID]domain.ShiftAssignment),
		attendance:  make(map[uuid.UUID]domain.AttendanceRecord),
		alerts:      make(map[uuid.UUID]domain.PanicAlert),
	}
}

func (s *Store) Zones() storage.ZoneRepository            { return s }
func (s *Store) Guards() storage.GuardRepository          { return s }
func (s *Store) Shifts() storage.ShiftRepository          { return s }
func (s *Store) Attendance() storage.AttendanceRepository { return s }
func (s *Store) Positions() storage.PositionRepository    { return s }
func (s *Store) Alerts() storage.AlertRepository          { return s }
func (s *Store) Ping(context.Context) error               { return nil }
func (s *Store) Close()                                   {}

func (s *Store) CreateZone(_ context.Context, zone *domain.GeofenceZone) error {
	if !geofence.ValidPoint(zone.Center) {
		return fmt.Errorf("memory.Zone.Create: %w", e.ErrInvalidCoordinates)
	}
	if zone.ID == uuid.Nil {
		zone.ID = uuid.New()
	}
	if zone.CreatedAt.IsZero() {
		zone.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.zones[zone.ID]; ok {
		return fmt.Errorf("memory.Zone.Create: %w", e.ErrUniqueViolation)
	}
	s.zones[zone.ID] = *zone
	return nil
}

func (s *Store) GetZone(_ context.Context, id uuid.UUID) (*domain.GeofenceZone, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	z, ok := s.zones[id]
	if !ok {
		return nil, fmt.Errorf("memory.Zone.Get: %w", e.ErrNotFound)
	}
	return &z, nil
}

func (s *Store) ListZones(context.Context) ([]*domain.GeofenceZone, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.GeofenceZone, 0, len(s.zones))
	for _, z := range s.zones {
		z := z
		out = append(out, &z)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) CreateGuard(_ context.Context, guard *domain.Guard) error {
	if guard.ID == uuid.Nil {
		guard.ID = uuid.New()
	}
	if guard.CreatedAt.IsZero() {
		guard.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if guard.ZoneID != nil {
		if _, ok := s.zones[*guard.ZoneID]; !ok {
			return fmt.Errorf("memory.Guard.Create: unknown zone: %w", e.ErrInvalidInput)
		}
	}
	if _, ok := s.guards[guard.ID]; ok {
		return fmt.Errorf("memory.Guard.Create: %w", e.ErrUniqueViolation)
	}
	s.guards[guard.ID] = *guard
	return nil
}

func (s *Store) GetGuard(_ context.Context, id uuid.UUID) (*domain.Guard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.guards[id]
	if !ok {
		return nil, fmt.Errorf("memory.Guard.Get: %w", e.ErrNotFound)
	}
	return &g, nil
}

func (s *Store) ListGuards(context.Context) ([]*domain.Guard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Guard, 0, len(s.guards))
	for _, g := range s.guards {
		g := g
		out = append(out, &g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) AssignZone(_ context.Context, guardID, zoneID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.guards[guardID]
	if !ok {
		return fmt.Errorf("memory.Guard.AssignZone: %w", e.ErrNotFound)
	}
	if _, ok := s.zones[zoneID]; !ok {
		return fmt.Errorf("memory.Guard.AssignZone: unknown zone: %w", e.ErrInvalidInput)
	}
	g.ZoneID = &zoneID
	s.guards[guardID] = g
	return nil
}
