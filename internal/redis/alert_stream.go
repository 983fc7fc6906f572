package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"guardDuty/internal/domain"
	"guardDuty/pkg/e"
)

// AlertStream is the durable alert event log, one Redis Stream entry per
// create or resolve. Entry ids double as SSE resume tokens.
type AlertStream struct {
	client *goredis.Client
	key    string
	maxLen int64
}

func NewAlertStream(r *Redis, key string, maxLen int64) *AlertStream {
	return &AlertStream{client: r.Client, key: key, maxLen: maxLen}
}

func (s *AlertStream) Append(ctx context.Context, ev domain.AlertEvent) (string, error) {
	const op = "redis.AlertStream.Append"

	args := &goredis.XAddArgs{
		Stream: s.key,
		Values: map[string]interface{}{
			"type":     string(ev.Type),
			"alert_id": ev.AlertID.String(),
			"at":       ev.At.UTC().Format(time.RFC3339Nano),
		},
	}
	if s.maxLen > 0 {
		args.MaxLen = s.maxLen
		args.Approx = true
	}

	id, err := s.client.XAdd(ctx, args).Result()
	if err != nil {
		return "", e.Wrap(op, err)
	}
	return id, nil
}

// Read returns up to count entries after afterID ("$" for new ones only),
// blocking up to block. A timeout yields no events and no error.
func (s *AlertStream) Read(ctx context.Context, afterID string, count int64, block time.Duration) ([]domain.AlertEvent, error) {
	const op = "redis.AlertStream.Read"

	if afterID == "" {
		afterID = "0"
	}

	args := &goredis.XReadArgs{
		Streams: []string{s.key, afterID},
		Count:   count,
		Block:   block,
	}
	if block <= 0 {
		// go-redis treats a negative Block as "do not block"
		args.Block = -1
	}

	streams, err := s.client.XRead(ctx, args).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, e.Wrap(op, err)
	}

	var out []domain.AlertEvent
	for _, st := range streams {
		for _, msg := range st.Messages {
			ev, err := decodeEvent(msg)
			if err != nil {
				return out, e.Wrap(op, err)
			}
			out = append(out, ev)
		}
	}
	return out, nil
}

func decodeEvent(msg goredis.XMessage) (domain.AlertEvent, error) {
	ev := domain.AlertEvent{ID: msg.ID}

	typ, _ := msg.Values["type"].(string)
	ev.Type = domain.AlertEventType(typ)

	rawID, _ := msg.Values["alert_id"].(string)
	id, err := uuid.Parse(rawID)
	if err != nil {
		return ev, fmt.Errorf("entry %s: alert_id %q: %w", msg.ID, rawID, e.ErrInvalidInput)
	}
	ev.AlertID = id

	if rawAt, ok := msg.Values["at"].(string); ok {
		if at, err := time.Parse(time.RFC3339Nano, rawAt); err == nil {
			ev.At = at
		}
	}
	return ev, nil
}
