package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"guardDuty/internal/domain"
	"guardDuty/pkg/e"
)

func (s *Store) CreateShift(_ context.Context, shift *domain.ShiftDefinition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.shifts[shift.Code]; ok {
		return fmt.Errorf("memory.Shift.Create: %w", e.ErrUniqueViolation)
	}
	s.shifts[shift.Code] = *shift
	return nil
}

func (s *Store) ListShifts(context.Context) ([]*domain.ShiftDefinition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.ShiftDefinition, 0, len(s.shifts))
	for _, sh := range s.shifts {
		sh := sh
		out = append(out, &sh)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].Code < out[j].Code
	})
	return out, nil
}

func (s *Store) ActivateAssignment(_ context.Context, a *domain.ShiftAssignment) error {
	const op = "memory.Shift.ActivateAssignment"

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	a.Active = true

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.guards[a.GuardID]; !ok {
		return fmt.Errorf("%s: unknown guard: %w", op, e.ErrInvalidInput)
	}
	if _, ok := s.shifts[a.ShiftCode]; !ok {
		return fmt.Errorf("%s: unknown shift: %w", op, e.ErrInvalidInput)
	}
	for id, prev := range s.assignments {
		if prev.GuardID == a.GuardID && prev.Active {
			prev.Active = false
			s.assignments[id] = prev
		}
	}
	s.assignments[a.ID] = *a
	return nil
}

func (s *Store) GetActiveShift(_ context.Context, guardID uuid.UUID, day time.Time) (*domain.ActiveShift, error) {
	day = dateOf(day)

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.assignments {
		if a.GuardID != guardID || !a.Active {
			continue
		}
		if day.Before(dateOf(a.EffectiveFrom)) {
			continue
		}
		if a.EffectiveTo != nil && day.After(dateOf(*a.EffectiveTo)) {
			continue
		}
		sh, ok := s.shifts[a.ShiftCode]
		if !ok {
			return nil, fmt.Errorf("memory.Shift.GetActive: %w", e.ErrInternal)
		}
		return &domain.ActiveShift{Assignment: a, Shift: sh}, nil
	}
	return nil, nil
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
