package duty

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"guardDuty/internal/domain"
	"guardDuty/pkg/e"
)

// Manager owns the live duty sessions, at most one per guard.
type Manager struct {
	deps Deps

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

func NewManager(deps Deps) *Manager {
	return &Manager{
		deps:     deps,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Session returns the guard's live session, opening one on first use. An
// open attendance record of today or yesterday resumes the duty.
func (m *Manager) Session(ctx context.Context, guardID uuid.UUID) (*Session, error) {
	m.mu.Lock()
	s, ok := m.sessions[guardID]
	m.mu.Unlock()
	if ok {
		return s, nil
	}
	return m.open(ctx, guardID, false)
}

// Open starts a fresh session for the guard, superseding an existing one.
func (m *Manager) Open(ctx context.Context, guardID uuid.UUID) (*Session, error) {
	return m.open(ctx, guardID, true)
}

func (m *Manager) open(ctx context.Context, guardID uuid.UUID, supersede bool) (*Session, error) {
	const op = "duty.Manager.open"

	guard, err := m.deps.Guards.GetGuard(ctx, guardID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	s := newSession(*guard, nil, m.deps)
	if guard.ZoneID != nil {
		zone, err := m.deps.Zones.GetZone(ctx, *guard.ZoneID)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		s.zone = zone
	}

	m.mu.Lock()
	prev, exists := m.sessions[guardID]
	if exists && !supersede {
		m.mu.Unlock()
		return prev, nil
	}
	m.sessions[guardID] = s
	m.mu.Unlock()

	if exists {
		prev.Close()
	}

	if err := s.restore(ctx); err != nil {
		m.drop(guardID, s)
		s.Close()
		return nil, e.Wrap(op, err)
	}

	m.deps.Logger.Debug("duty session opened", slog.String("guard_id", guardID.String()))
	return s, nil
}

// End closes the guard's session without touching attendance. Timers and the
// position subscription stop with it.
func (m *Manager) End(guardID uuid.UUID) bool {
	m.mu.Lock()
	s, ok := m.sessions[guardID]
	delete(m.sessions, guardID)
	m.mu.Unlock()

	if ok {
		s.Close()
	}
	return ok
}

// Reload drops an off-duty session so the next request picks up a new zone
// assignment. A guard on duty keeps the zone they clocked in against.
func (m *Manager) Reload(guardID uuid.UUID) {
	m.mu.Lock()
	s, ok := m.sessions[guardID]
	m.mu.Unlock()
	if !ok {
		return
	}
	if s.State() == domain.OnDuty {
		m.deps.Logger.Info("zone change deferred until clock-out", slog.String("guard_id", guardID.String()))
		return
	}
	if m.drop(guardID, s) {
		s.Close()
	}
}

// Shutdown closes every session.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[uuid.UUID]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
	m.deps.Logger.Info("duty sessions closed", slog.Int("count", len(sessions)))
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) drop(guardID uuid.UUID, s *Session) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sessions[guardID] != s {
		return false
	}
	delete(m.sessions, guardID)
	return true
}
