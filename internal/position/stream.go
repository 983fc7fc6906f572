package position

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"guardDuty/internal/domain"
	"guardDuty/internal/geofence"
	"guardDuty/pkg/e"
)

// Handler receives accepted fixes in arrival order on the stream goroutine.
// It must not block and must not call Stop.
type Handler func(fix domain.PositionFix)

// Stream owns one guard's subscription to a Provider.
type Stream struct {
	provider Provider
	guardID  uuid.UUID
	logger   *slog.Logger

	mu      sync.RWMutex
	latest  *domain.PositionFix
	lastErr error
	cancel  context.CancelFunc
	done    chan struct{}

	// seq counts processed updates; notify is closed and replaced on each one
	seq    uint64
	notify chan struct{}
}

func NewStream(provider Provider, guardID uuid.UUID, logger *slog.Logger) *Stream {
	return &Stream{
		provider: provider,
		guardID:  guardID,
		logger:   logger.With(slog.String("guard_id", guardID.String())),
		notify:   make(chan struct{}),
	}
}

// Start subscribes and begins delivering fixes to handle. Starting a running
// stream is a no-op.
func (s *Stream) Start(ctx context.Context, handle Handler) error {
	const op = "position.Stream.Start"

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return nil
	}

	sub, err := s.provider.Subscribe(ctx, s.guardID)
	if err != nil {
		return e.Wrap(op, err)
	}

	// the stream outlives the request that started it
	runCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(runCtx, sub, handle, s.done)

	s.logger.Debug("position stream started")
	return nil
}

// Stop unsubscribes and waits for the consumer goroutine to exit.
func (s *Stream) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	s.logger.Debug("position stream stopped")
}

func (s *Stream) Running() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cancel != nil
}

// Latest returns the newest accepted fix and the sticky provider error, if any.
func (s *Stream) Latest() (*domain.PositionFix, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest == nil {
		return nil, s.lastErr
	}
	fix := *s.latest
	return &fix, s.lastErr
}

// Current returns a fix usable for establishing presence at now. A permission
// failure blocks until a fresh fix arrives; a missing or stale fix is reported
// as unavailable or timed out.
func (s *Stream) Current(now time.Time, maxAge time.Duration) (*domain.PositionFix, error) {
	fix, lastErr := s.Latest()
	if errors.Is(lastErr, e.ErrPositionPermission) {
		return nil, lastErr
	}
	if fix == nil {
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, e.ErrPositionUnavailable
	}
	if maxAge > 0 && now.Sub(fix.At) > maxAge {
		return nil, fmt.Errorf("last fix %s old: %w", now.Sub(fix.At).Round(time.Second), e.ErrPositionTimeout)
	}
	return fix, nil
}

// Seq returns the number of provider updates processed so far.
func (s *Stream) Seq() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq
}

// Await blocks until an update beyond after has been processed, handler
// included, or ctx ends.
func (s *Stream) Await(ctx context.Context, after uint64) error {
	for {
		s.mu.RLock()
		seq, notify := s.seq, s.notify
		s.mu.RUnlock()

		if seq > after {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-notify:
		}
	}
}

func (s *Stream) run(ctx context.Context, sub Subscription, handle Handler, done chan struct{}) {
	defer close(done)
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case u, ok := <-sub.Updates():
			if !ok {
				return
			}
			if fix, accepted := s.apply(u); accepted && handle != nil {
				handle(fix)
			}
			s.processed()
		}
	}
}

func (s *Stream) processed() {
	s.mu.Lock()
	s.seq++
	close(s.notify)
	s.notify = make(chan struct{})
	s.mu.Unlock()
}

func (s *Stream) apply(u domain.PositionUpdate) (domain.PositionFix, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.Err != nil {
		s.lastErr = u.Err
		s.logger.Warn("position provider error", slog.Any("error", u.Err))
		return domain.PositionFix{}, false
	}
	if u.Fix == nil {
		return domain.PositionFix{}, false
	}

	fix := *u.Fix
	if !geofence.ValidPoint(fix.Point) {
		s.logger.Warn("dropping invalid fix",
			slog.Float64("lat", fix.Point.Lat),
			slog.Float64("lng", fix.Point.Lng),
		)
		return domain.PositionFix{}, false
	}
	if s.latest != nil && (fix.At.Before(s.latest.At) || (fix.At.Equal(s.latest.At) && fix.Point == s.latest.Point)) {
		s.logger.Debug("dropping stale or duplicate fix", slog.Time("at", fix.At))
		return domain.PositionFix{}, false
	}

	s.latest = &fix
	s.lastErr = nil
	return fix, true
}
