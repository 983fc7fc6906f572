package position

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"guardDuty/internal/domain"
)

// Feed is the in-process Provider. Ingest paths (HTTP, MQTT) publish into it
// and every duty session subscribes to its guard. The last update per guard is
// replayed to new subscribers.
type Feed struct {
	mu     sync.Mutex
	subs   map[uuid.UUID]map[*feedSub]struct{}
	latest map[uuid.UUID]domain.PositionUpdate
	buffer int
	logger *slog.Logger
}

var _ Provider = (*Feed)(nil)

func NewFeed(buffer int, logger *slog.Logger) *Feed {
	if buffer <= 0 {
		buffer = 64
	}
	return &Feed{
		subs:   make(map[uuid.UUID]map[*feedSub]struct{}),
		latest: make(map[uuid.UUID]domain.PositionUpdate),
		buffer: buffer,
		logger: logger,
	}
}

func (f *Feed) Subscribe(_ context.Context, guardID uuid.UUID) (Subscription, error) {
	sub := &feedSub{
		feed:    f,
		guardID: guardID,
		ch:      make(chan domain.PositionUpdate, f.buffer),
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.subs[guardID] == nil {
		f.subs[guardID] = make(map[*feedSub]struct{})
	}
	f.subs[guardID][sub] = struct{}{}

	if u, ok := f.latest[guardID]; ok {
		sub.ch <- u
	}
	return sub, nil
}

func (f *Feed) Publish(guardID uuid.UUID, u domain.PositionUpdate) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.latest[guardID] = u

	for sub := range f.subs[guardID] {
		select {
		case sub.ch <- u:
		default:
			// subscriber is behind: drop its oldest update, newer positions matter more
			select {
			case <-sub.ch:
			default:
			}
			select {
			case sub.ch <- u:
			default:
			}
			f.logger.Warn("position subscriber lagging", slog.String("guard_id", guardID.String()))
		}
	}
}

// Forget drops the replay state of a guard.
func (f *Feed) Forget(guardID uuid.UUID) {
	f.mu.Lock()
	delete(f.latest, guardID)
	f.mu.Unlock()
}

func (f *Feed) unsubscribe(sub *feedSub) {
	f.mu.Lock()
	defer f.mu.Unlock()

	subs := f.subs[sub.guardID]
	if _, ok := subs[sub]; !ok {
		return
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(f.subs, sub.guardID)
	}
	close(sub.ch)
}

type feedSub struct {
	feed    *Feed
	guardID uuid.UUID
	ch      chan domain.PositionUpdate
}

func (s *feedSub) Updates() <-chan domain.PositionUpdate { return s.ch }

func (s *feedSub) Close() { s.feed.unsubscribe(s) }
