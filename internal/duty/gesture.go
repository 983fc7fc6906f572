package duty

import (
	"sync"
	"time"

	"guardDuty/internal/clock"
	"guardDuty/pkg/e"
)

// Gesture turns a sustained press into a single panic trigger. Progress grows
// linearly to 100 over the hold duration and is sampled for UI feedback.
type Gesture struct {
	clock       clock.Clock
	hold        time.Duration
	sampleEvery time.Duration
	onProgress  func(progress int)

	mu        sync.Mutex
	active    bool
	startedAt time.Time
	gen       uint64
	sampler   clock.Timer
}

func NewGesture(c clock.Clock, hold, sampleEvery time.Duration, onProgress func(int)) *Gesture {
	return &Gesture{
		clock:       c,
		hold:        hold,
		sampleEvery: sampleEvery,
		onProgress:  onProgress,
	}
}

// StartHold begins tracking a hold, restarting one already in progress.
func (g *Gesture) StartHold() {
	g.mu.Lock()
	g.resetLocked()
	g.active = true
	g.startedAt = g.clock.Now()
	gen := g.gen
	g.sampler = g.clock.AfterFunc(g.sampleEvery, func() { g.sample(gen) })
	g.mu.Unlock()

	g.notify(0)
}

// EndHold finishes the hold and reports whether it lasted long enough to trigger.
func (g *Gesture) EndHold() (bool, error) {
	g.mu.Lock()
	if !g.active {
		g.mu.Unlock()
		return false, e.ErrHoldNotActive
	}
	elapsed := g.clock.Now().Sub(g.startedAt)
	g.resetLocked()
	g.mu.Unlock()

	g.notify(0)
	return elapsed >= g.hold, nil
}

// CancelHold aborts tracking without evaluating the duration.
func (g *Gesture) CancelHold() {
	g.mu.Lock()
	wasActive := g.active
	g.resetLocked()
	g.mu.Unlock()

	if wasActive {
		g.notify(0)
	}
}

// Progress returns 0..100, 0 when no hold is tracked.
func (g *Gesture) Progress() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.progressLocked()
}

func (g *Gesture) Active() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}

func (g *Gesture) progressLocked() int {
	if !g.active {
		return 0
	}
	elapsed := g.clock.Now().Sub(g.startedAt)
	if elapsed >= g.hold {
		return 100
	}
	return int(elapsed * 100 / g.hold)
}

func (g *Gesture) sample(gen uint64) {
	g.mu.Lock()
	if !g.active || g.gen != gen {
		g.mu.Unlock()
		return
	}
	p := g.progressLocked()
	if p < 100 {
		g.sampler = g.clock.AfterFunc(g.sampleEvery, func() { g.sample(gen) })
	} else {
		g.sampler = nil
	}
	g.mu.Unlock()

	g.notify(p)
}

func (g *Gesture) resetLocked() {
	if g.sampler != nil {
		g.sampler.Stop()
		g.sampler = nil
	}
	g.active = false
	g.gen++
}

func (g *Gesture) notify(p int) {
	if g.onProgress != nil {
		g.onProgress(p)
	}
}
