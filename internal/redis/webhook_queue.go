package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"guardDuty/internal/domain"
	"guardDuty/pkg/e"
)

// WebhookQueue is a Redis list of pending alert pages: LPUSH in, BRPOP out.
type WebhookQueue struct {
	client *redis.Client
	key    string
}

func NewWebhookQueue(r *Redis, key string) *WebhookQueue {
	return &WebhookQueue{client: r.Client, key: key}
}

// Enqueue adds the page of one new alert.
func (q *WebhookQueue) Enqueue(ctx context.Context, payload domain.WebhookPayload) error {
	const op = "redis.WebhookQueue.Enqueue"

	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := q.client.LPush(ctx, q.key, b).Err(); err != nil {
		return fmt.Errorf("%s: alert %s: %w", op, payload.AlertID, err)
	}
	return nil
}

// BRPop waits up to timeout for the oldest page. An empty queue yields
// e.ErrWebHookEmpty; an unreadable entry is consumed and reported as
// e.ErrInvalidInput.
func (q *WebhookQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.WebhookPayload, error) {
	const op = "redis.WebhookQueue.BRPop"
	var p domain.WebhookPayload

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return p, e.ErrWebHookEmpty
		}
		return p, fmt.Errorf("%s: %w", op, err)
	}
	if len(res) < 2 {
		return p, e.ErrWebHookEmpty
	}
	if err := json.Unmarshal([]byte(res[1]), &p); err != nil {
		return p, fmt.Errorf("%s: malformed page %v: %w", op, err, e.ErrInvalidInput)
	}
	return p, nil
}
