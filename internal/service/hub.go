package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"guardDuty/internal/domain"
	"guardDuty/pkg/e"
)

const (
	hubReadBlock = 5 * time.Second
	hubBatch     = 100
	replayLimit  = 1000
)

// AlertHub tails the alert event log and fans every event out to the
// connected supervisors. Each event is re-read from storage so subscribers
// always get the current alert state.
type AlertHub struct {
	events AlertEventLog
	repo   AlertRepository
	logger *slog.Logger

	mu     sync.Mutex
	subs   map[*Subscription]struct{}
	lastID string
}

// Subscription is one supervisor's live feed. C is closed when the hub drops
// the subscriber, either on Close or because it fell behind.
type Subscription struct {
	C    <-chan domain.AlertNotification
	ch   chan domain.AlertNotification
	once sync.Once
}

func NewAlertHub(events AlertEventLog, repo AlertRepository, logger *slog.Logger) *AlertHub {
	return &AlertHub{
		events: events,
		repo:   repo,
		logger: logger,
		subs:   make(map[*Subscription]struct{}),
		lastID: "0",
	}
}

// Run tails the log until ctx is done. It starts from the beginning of the
// retained log so nothing appended before the first read is skipped; events
// seen with nobody subscribed are only counted.
func (h *AlertHub) Run(ctx context.Context) {
	h.logger.Info("alert hub started")
	defer h.logger.Info("alert hub stopped")

	for {
		if ctx.Err() != nil {
			h.closeAll()
			return
		}

		h.mu.Lock()
		after := h.lastID
		h.mu.Unlock()

		batch, err := h.events.Read(ctx, after, hubBatch, hubReadBlock)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				continue
			}
			h.logger.Error("read alert events failed", slog.Any("error", err))
			sleep(ctx, time.Second)
			continue
		}

		for _, ev := range batch {
			h.dispatch(ctx, ev)
		}
	}
}

func (h *AlertHub) dispatch(ctx context.Context, ev domain.AlertEvent) {
	h.mu.Lock()
	h.lastID = ev.ID
	idle := len(h.subs) == 0
	h.mu.Unlock()
	if idle {
		return
	}

	n, err := h.notification(ctx, ev)
	if err != nil {
		h.logger.Error("load alert for event failed",
			slog.String("event_id", ev.ID),
			slog.String("alert_id", ev.AlertID.String()),
			slog.Any("error", err),
		)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subs {
		select {
		case sub.ch <- n:
		default:
			h.logger.Warn("dropping slow alert subscriber", slog.String("event_id", ev.ID))
			h.removeLocked(sub)
		}
	}
}

func (h *AlertHub) notification(ctx context.Context, ev domain.AlertEvent) (domain.AlertNotification, error) {
	view, err := h.repo.GetAlertView(ctx, ev.AlertID)
	if err != nil {
		return domain.AlertNotification{}, err
	}
	return domain.AlertNotification{EventID: ev.ID, Type: ev.Type, Alert: *view}, nil
}

// Subscribe registers a new live subscriber with room for buffer pending
// notifications.
func (h *AlertHub) Subscribe(buffer int) *Subscription {
	if buffer <= 0 {
		buffer = 16
	}
	ch := make(chan domain.AlertNotification, buffer)
	sub := &Subscription{C: ch, ch: ch}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	n := len(h.subs)
	h.mu.Unlock()

	h.logger.Debug("alert subscriber added", slog.Int("subscribers", n))
	return sub
}

func (h *AlertHub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(sub)
}

func (h *AlertHub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

func (h *AlertHub) removeLocked(sub *Subscription) {
	if _, ok := h.subs[sub]; !ok {
		return
	}
	delete(h.subs, sub)
	sub.once.Do(func() { close(sub.ch) })
}

func (h *AlertHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subs {
		h.removeLocked(sub)
	}
}

// Replay returns the notifications of every retained event after afterID,
// oldest first, capped at replayLimit.
func (h *AlertHub) Replay(ctx context.Context, afterID string) ([]domain.AlertNotification, error) {
	const op = "service.AlertHub.Replay"

	if _, _, ok := parseEventID(afterID); !ok {
		return nil, e.Wrap(op, e.ErrInvalidInput)
	}

	var out []domain.AlertNotification
	for len(out) < replayLimit {
		batch, err := h.events.Read(ctx, afterID, hubBatch, 0)
		if err != nil {
			return out, e.Wrap(op, err)
		}
		if len(batch) == 0 {
			break
		}
		for _, ev := range batch {
			afterID = ev.ID
			n, err := h.notification(ctx, ev)
			if err != nil {
				if errors.Is(err, e.ErrNotFound) {
					continue
				}
				return out, e.Wrap(op, err)
			}
			out = append(out, n)
		}
	}
	return out, nil
}

// EventAfter reports whether event id a was appended after b. Both use the
// "<ms>-<seq>" stream id shape; an unparsable b sorts first.
func EventAfter(a, b string) bool {
	am, as, ok := parseEventID(a)
	if !ok {
		return false
	}
	bm, bs, ok := parseEventID(b)
	if !ok {
		return true
	}
	if am != bm {
		return am > bm
	}
	return as > bs
}

func parseEventID(id string) (uint64, uint64, bool) {
	msPart, seqPart, found := strings.Cut(id, "-")
	ms, err := strconv.ParseUint(msPart, 10, 64)
	if err != nil {
		return 0, 0, false
	}
	if !found {
		return ms, 0, true
	}
	seq, err := strconv.ParseUint(seqPart, 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return ms, seq, true
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
