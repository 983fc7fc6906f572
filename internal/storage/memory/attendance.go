package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"guardDuty/internal/domain"
	"guardDuty/internal/geofence"
	"guardDuty/pkg/e"
)

func (s *Store) CreateAttendance(_ context.Context, rec *domain.AttendanceRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	rec.WorkDate = dateOf(rec.WorkDate)

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, other := range s.attendance {
		if other.GuardID == rec.GuardID && other.WorkDate.Equal(rec.WorkDate) {
			return fmt.Errorf("memory.Attendance.Create: %w", e.ErrUniqueViolation)
		}
	}
	s.attendance[rec.ID] = *rec
	return nil
}

func (s *Store) GetAttendance(_ context.Context, guardID uuid.UUID, workDate time.Time) (*domain.AttendanceRecord, error) {
	workDate = dateOf(workDate)

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.attendance {
		if rec.GuardID == guardID && rec.WorkDate.Equal(workDate) {
			rec := rec
			return &rec, nil
		}
	}
	return nil, fmt.Errorf("memory.Attendance.Get: %w", e.ErrNotFound)
}

func (s *Store) GetOpenAttendance(_ context.Context, guardID uuid.UUID) (*domain.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found *domain.AttendanceRecord
	for _, rec := range s.attendance {
		if rec.GuardID != guardID || !rec.Open() {
			continue
		}
		if found == nil || rec.WorkDate.After(found.WorkDate) {
			rec := rec
			found = &rec
		}
	}
	if found == nil {
		return nil, fmt.Errorf("memory.Attendance.GetOpen: %w", e.ErrNotFound)
	}
	return found, nil
}

func (s *Store) CloseAttendance(_ context.Context, rec *domain.AttendanceRecord) error {
	const op = "memory.Attendance.Close"

	if rec.CheckOutAt == nil || !rec.CheckOutAt.After(rec.CheckInAt) {
		return fmt.Errorf("%s: check-out must follow check-in: %w", op, e.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.attendance[rec.ID]
	if !ok || !cur.Open() {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	cur.CheckOutAt = rec.CheckOutAt
	cur.CheckOutZoneID = rec.CheckOutZoneID
	cur.TotalHours = rec.TotalHours
	s.attendance[rec.ID] = cur
	return nil
}

func (s *Store) SavePosition(_ context.Context, sample *domain.PositionSample) error {
	if sample == nil || sample.GuardID == uuid.Nil {
		return fmt.Errorf("memory.Position.Save: %w", e.ErrInvalidInput)
	}
	if !geofence.ValidPoint(sample.Point) {
		return fmt.Errorf("memory.Position.Save: %w", e.ErrInvalidCoordinates)
	}
	if sample.ID == uuid.Nil {
		sample.ID = uuid.New()
	}

	s.mu.Lock()
	s.positions = append(s.positions, *sample)
	s.mu.Unlock()
	return nil
}

func (s *Store) ListPositions(_ context.Context, guardID uuid.UUID, since time.Time, limit int) ([]*domain.PositionSample, error) {
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	s.mu.RLock()
	var out []*domain.PositionSample
	for _, p := range s.positions {
		if p.GuardID == guardID && !p.CapturedAt.Before(since) {
			p := p
			out = append(out, &p)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CapturedAt.After(out[j].CapturedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
