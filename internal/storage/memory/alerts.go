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

func (s *Store) CreateAlert(_ context.Context, alert *domain.PanicAlert) error {
	if alert.ID == uuid.Nil {
		alert.ID = uuid.New()
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now().UTC()
	}
	alert.Status = domain.AlertOpen

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.guards[alert.GuardID]; !ok {
		return fmt.Errorf("memory.Alert.Create: unknown guard: %w", e.ErrInvalidInput)
	}
	if _, ok := s.alerts[alert.ID]; ok {
		return fmt.Errorf("memory.Alert.Create: %w", e.ErrUniqueViolation)
	}
	s.alerts[alert.ID] = *alert
	return nil
}

func (s *Store) GetAlertView(_ context.Context, id uuid.UUID) (*domain.AlertView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.alerts[id]
	if !ok {
		return nil, fmt.Errorf("memory.Alert.GetView: %w", e.ErrNotFound)
	}
	view := s.viewLocked(a)
	return &view, nil
}

func (s *Store) ListOpenAlerts(context.Context) ([]*domain.AlertView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*domain.AlertView
	for _, a := range s.alerts {
		if a.Status != domain.AlertOpen {
			continue
		}
		view := s.viewLocked(a)
		out = append(out, &view)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) ResolveAlert(_ context.Context, p domain.ResolveAlertParams) (*domain.PanicAlert, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.alerts[p.AlertID]
	if !ok {
		return nil, false, fmt.Errorf("memory.Alert.Resolve: %w", e.ErrNotFound)
	}
	if a.Status == domain.AlertResolved {
		return &a, true, nil
	}

	resolver := p.ResolverID
	at := p.At
	a.Status = domain.AlertResolved
	a.ResolvedBy = &resolver
	a.ResolverName = p.ResolverName
	a.ResolutionNote = p.Note
	a.ResolvedAt = &at
	s.alerts[a.ID] = a
	return &a, false, nil
}

func (s *Store) viewLocked(a domain.PanicAlert) domain.AlertView {
	guard := s.guards[a.GuardID]
	zoneID := a.ZoneID
	if zoneID == nil {
		zoneID = guard.ZoneID
	}
	var zoneName string
	if zoneID != nil {
		zoneName = s.zones[*zoneID].Name
	}
	return a.View(guard.Name, zoneName)
}
