package memory

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"guardDuty/internal/domain"
	"guardDuty/pkg/e"
)

// EventLog is an in-process stand-in for the Redis alert stream. IDs use the
// same "<n>-0" shape so resume tokens work identically.
type EventLog struct {
	mu     sync.Mutex
	events []domain.AlertEvent
	seq    uint64
	maxLen int
	notify chan struct{}
}

func NewEventLog(maxLen int) *EventLog {
	if maxLen <= 0 {
		maxLen = 10000
	}
	return &EventLog{maxLen: maxLen, notify: make(chan struct{})}
}

func (l *EventLog) Append(_ context.Context, ev domain.AlertEvent) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	ev.ID = fmt.Sprintf("%d-0", l.seq)
	l.events = append(l.events, ev)
	if len(l.events) > l.maxLen {
		l.events = l.events[len(l.events)-l.maxLen:]
	}

	close(l.notify)
	l.notify = make(chan struct{})
	return ev.ID, nil
}

// Read returns up to count events after afterID, waiting up to block for one
// to arrive. afterID "$" means events appended from now on.
func (l *EventLog) Read(ctx context.Context, afterID string, count int64, block time.Duration) ([]domain.AlertEvent, error) {
	l.mu.Lock()
	after, err := l.resolveLocked(afterID)
	l.mu.Unlock()
	if err != nil {
		return nil, err
	}

	var timeout <-chan time.Time
	if block > 0 {
		t := time.NewTimer(block)
		defer t.Stop()
		timeout = t.C
	}

	for {
		l.mu.Lock()
		out := l.collectLocked(after, count)
		notify := l.notify
		l.mu.Unlock()

		if len(out) > 0 || block <= 0 {
			return out, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timeout:
			return nil, nil
		case <-notify:
		}
	}
}

func (l *EventLog) resolveLocked(id string) (uint64, error) {
	switch id {
	case "$":
		return l.seq, nil
	case "", "0":
		return 0, nil
	}
	n, err := strconv.ParseUint(strings.SplitN(id, "-", 2)[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("memory.EventLog: bad id %q: %w", id, e.ErrInvalidInput)
	}
	return n, nil
}

func (l *EventLog) collectLocked(after uint64, count int64) []domain.AlertEvent {
	var out []domain.AlertEvent
	for _, ev := range l.events {
		n, _ := strconv.ParseUint(strings.SplitN(ev.ID, "-", 2)[0], 10, 64)
		if n <= after {
			continue
		}
		out = append(out, ev)
		if count > 0 && int64(len(out)) >= count {
			break
		}
	}
	return out
}
