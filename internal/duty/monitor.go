package duty

import (
	"sync"
	"time"

	"guardDuty/internal/clock"
	"guardDuty/internal/domain"
)

// Monitor supervises geofence compliance during one duty session. Leaving the
// zone arms a warning and an escalation timer as a single set; coming back
// before they fire disarms both.
type Monitor struct {
	clock         clock.Clock
	warnAfter     time.Duration
	escalateAfter time.Duration
	onWarning     func(breachStart time.Time)
	onEscalate    func(breachStart time.Time)

	mu     sync.Mutex
	active bool
	state  domain.ComplianceState
	armed  *armedSet
	gen    uint64
	calls  sync.WaitGroup
}

// armedSet is the only place breach timers live; at most one exists.
type armedSet struct {
	gen         uint64
	breachStart time.Time
	warning     clock.Timer
	escalation  clock.Timer
}

func NewMonitor(c clock.Clock, warnAfter, escalateAfter time.Duration, onWarning, onEscalate func(time.Time)) *Monitor {
	return &Monitor{
		clock:         c,
		warnAfter:     warnAfter,
		escalateAfter: escalateAfter,
		onWarning:     onWarning,
		onEscalate:    onEscalate,
		state:         domain.Compliant,
	}
}

// Start activates supervision with the compliance known at clock-in.
func (m *Monitor) Start(inRange bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.disarmLocked()
	m.active = true
	m.state = domain.Compliant
	if !inRange {
		m.breachLocked()
	}
}

// Observe feeds one in/out-of-range reading. Readings that do not change the
// compliance state are no-ops.
func (m *Monitor) Observe(inRange bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.active {
		return
	}

	switch {
	case inRange && m.state == domain.Breaching:
		m.disarmLocked()
		m.state = domain.Compliant
	case !inRange && m.state == domain.Compliant:
		m.breachLocked()
	}
}

// Stop deactivates the monitor, cancels armed timers and waits for callbacks
// already running. It must not be called from a callback.
func (m *Monitor) Stop() {
	m.mu.Lock()
	m.active = false
	m.disarmLocked()
	m.state = domain.Compliant
	m.mu.Unlock()

	m.calls.Wait()
}

// State returns the compliance state and, while breaching, when it began.
func (m *Monitor) State() (domain.ComplianceState, *time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.armed == nil {
		return m.state, nil
	}
	start := m.armed.breachStart
	return m.state, &start
}

func (m *Monitor) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

func (m *Monitor) breachLocked() {
	m.disarmLocked()
	m.state = domain.Breaching
	m.gen++

	set := &armedSet{gen: m.gen, breachStart: m.clock.Now()}
	gen := set.gen
	set.warning = m.clock.AfterFunc(m.warnAfter, func() { m.fire(gen, m.onWarning) })
	set.escalation = m.clock.AfterFunc(m.escalateAfter, func() { m.fire(gen, m.onEscalate) })
	m.armed = set
}

func (m *Monitor) disarmLocked() {
	if m.armed == nil {
		return
	}
	m.armed.warning.Stop()
	m.armed.escalation.Stop()
	m.armed = nil
	// invalidates callbacks whose timer could not be stopped in time
	m.gen++
}

func (m *Monitor) fire(gen uint64, f func(time.Time)) {
	m.mu.Lock()
	if !m.active || m.armed == nil || m.armed.gen != gen || m.state != domain.Breaching {
		m.mu.Unlock()
		return
	}
	start := m.armed.breachStart
	m.calls.Add(1)
	m.mu.Unlock()

	defer m.calls.Done()
	if f != nil {
		f(start)
	}
}
