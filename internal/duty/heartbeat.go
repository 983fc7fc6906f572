package duty

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"guardDuty/internal/clock"
	"guardDuty/internal/domain"
)

// Heartbeat persists the guard's latest position on a fixed interval while on
// duty. Failed or skipped writes are logged and otherwise ignored.
type Heartbeat struct {
	clock        clock.Clock
	interval     time.Duration
	guardID      uuid.UUID
	latest       func() *domain.PositionFix
	repo         PositionRepository
	writeTimeout time.Duration
	logger       *slog.Logger

	mu      sync.Mutex
	running bool
	gen     uint64
	timer   clock.Timer
}

func NewHeartbeat(
	c clock.Clock,
	interval time.Duration,
	guardID uuid.UUID,
	latest func() *domain.PositionFix,
	repo PositionRepository,
	logger *slog.Logger,
) *Heartbeat {
	return &Heartbeat{
		clock:        c,
		interval:     interval,
		guardID:      guardID,
		latest:       latest,
		repo:         repo,
		writeTimeout: 10 * time.Second,
		logger:       logger,
	}
}

// Start records one sample immediately and schedules the rest.
func (h *Heartbeat) Start() {
	h.mu.Lock()
	if h.running {
		h.mu.Unlock()
		return
	}
	h.running = true
	h.gen++
	gen := h.gen
	h.mu.Unlock()

	h.beat(gen)
}

// Stop cancels future writes. A write already in progress completes.
func (h *Heartbeat) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.running = false
	h.gen++
	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
}

func (h *Heartbeat) Running() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.running
}

func (h *Heartbeat) beat(gen uint64) {
	h.mu.Lock()
	if !h.running || h.gen != gen {
		h.mu.Unlock()
		return
	}
	h.timer = h.clock.AfterFunc(h.interval, func() { h.beat(gen) })
	h.mu.Unlock()

	h.record()
}

func (h *Heartbeat) record() {
	const op = "duty.Heartbeat.record"

	fix := h.latest()
	if fix == nil {
		h.logger.Debug("heartbeat skipped, no position yet", slog.String("op", op))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.writeTimeout)
	defer cancel()

	sample := &domain.PositionSample{
		ID:         uuid.New(),
		GuardID:    h.guardID,
		Point:      fix.Point,
		AccuracyM:  fix.AccuracyM,
		CapturedAt: h.clock.Now(),
	}
	if err := h.repo.SavePosition(ctx, sample); err != nil {
		h.logger.Warn("heartbeat sample lost", slog.String("op", op), slog.Any("error", err))
		return
	}
	h.logger.Debug("heartbeat recorded",
		slog.Float64("lat", fix.Point.Lat),
		slog.Float64("lng", fix.Point.Lng),
	)
}
