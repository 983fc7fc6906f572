package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"guardDuty/internal/domain"
)

type ZoneSource interface {
	GetZone(ctx context.Context, id uuid.UUID) (*domain.GeofenceZone, error)
}

// CachedZones serves zone lookups from the cache, falling back to storage.
// Cache failures only cost a database round trip.
type CachedZones struct {
	source ZoneSource
	cache  ZoneCache
	logger *slog.Logger
}

func NewCachedZones(source ZoneSource, cache ZoneCache, logger *slog.Logger) *CachedZones {
	return &CachedZones{source: source, cache: cache, logger: logger}
}

func (z *CachedZones) GetZone(ctx context.Context, id uuid.UUID) (*domain.GeofenceZone, error) {
	if z.cache == nil {
		return z.source.GetZone(ctx, id)
	}

	zone, err := z.cache.Get(ctx, id)
	if err != nil {
		z.logger.Warn("zone cache get failed", slog.String("zone_id", id.String()), slog.Any("error", err))
	}
	if zone != nil {
		return zone, nil
	}

	zone, err = z.source.GetZone(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := z.cache.Set(ctx, zone); err != nil {
		z.logger.Warn("zone cache set failed", slog.String("zone_id", id.String()), slog.Any("error", err))
	}
	return zone, nil
}
