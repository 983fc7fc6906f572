package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"guardDuty/internal/domain"
)

// ZoneCache keeps zone lookups of session opens off the database.
type ZoneCache struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

func NewZoneCache(r *Redis, ttl time.Duration) *ZoneCache {
	return &ZoneCache{
		client: r.Client,
		prefix: "zones:",
		ttl:    ttl,
	}
}

// Get returns nil, nil on a cache miss.
func (c *ZoneCache) Get(ctx context.Context, id uuid.UUID) (*domain.GeofenceZone, error) {
	data, err := c.client.Get(ctx, c.prefix+id.String()).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var zone domain.GeofenceZone
	if err := json.Unmarshal(data, &zone); err != nil {
		return nil, err
	}
	return &zone, nil
}

func (c *ZoneCache) Set(ctx context.Context, zone *domain.GeofenceZone) error {
	b, err := json.Marshal(zone)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.prefix+zone.ID.String(), b, c.ttl).Err()
}
