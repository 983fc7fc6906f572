// Package workers runs the background consumers that feed the duty engine.
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"guardDuty/internal/clock"
	"guardDuty/internal/domain"
	"guardDuty/internal/geofence"
	"guardDuty/internal/position"
	"guardDuty/pkg/e"
)

const maxClockSkew = time.Minute

type Publisher interface {
	Publish(guardID uuid.UUID, u domain.PositionUpdate)
}

type ingestJob struct {
	topic   string
	payload []byte
}

// devicePayload is what devices send on guards/{id}/position: either a fix
// or an error reason.
type devicePayload struct {
	Lat       *float64   `json:"lat"`
	Lng       *float64   `json:"lng"`
	AccuracyM float64    `json:"accuracy_m"`
	At        *time.Time `json:"at"`
	Error     string     `json:"error"`
}

// PositionIngest decodes device reports and publishes them to the position
// feed. Reports are sharded by guard so one guard's reports stay in order.
type PositionIngest struct {
	feed   Publisher
	clock  clock.Clock
	logger *slog.Logger
	shards []chan ingestJob
}

func NewPositionIngest(feed Publisher, c clock.Clock, poolSize int, logger *slog.Logger) *PositionIngest {
	if poolSize <= 0 {
		poolSize = 1
	}
	shards := make([]chan ingestJob, poolSize)
	for i := range shards {
		shards[i] = make(chan ingestJob, 100)
	}
	return &PositionIngest{
		feed:   feed,
		clock:  c,
		logger: logger,
		shards: shards,
	}
}

// Handle is the MQTT message callback. It never blocks: a full shard drops
// the report, the next one supersedes it anyway.
func (w *PositionIngest) Handle(topic string, payload []byte) {
	guardID, err := guardFromTopic(topic)
	if err != nil {
		w.logger.Warn("unexpected position topic", slog.String("topic", topic))
		return
	}

	select {
	case w.shards[w.shardOf(guardID)] <- ingestJob{topic: topic, payload: payload}:
	default:
		w.logger.Warn("position ingest shard full, report dropped", slog.String("guard_id", guardID.String()))
	}
}

func (w *PositionIngest) Run(ctx context.Context) {
	var wg sync.WaitGroup

	for _, jobs := range w.shards {
		wg.Add(1)
		go func(jobs <-chan ingestJob) {
			defer wg.Done()
			w.worker(ctx, jobs)
		}(jobs)
	}
	w.logger.Info("position ingest started", slog.Int("workers", len(w.shards)))
	wg.Wait()
	w.logger.Info("position ingest stopped")
}

func (w *PositionIngest) worker(ctx context.Context, jobs <-chan ingestJob) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-jobs:
			w.processJob(job)
		}
	}
}

func (w *PositionIngest) processJob(job ingestJob) {
	guardID, err := guardFromTopic(job.topic)
	if err != nil {
		return
	}

	u, err := w.decode(job.payload)
	if err != nil {
		w.logger.Warn("bad position report",
			slog.String("guard_id", guardID.String()),
			slog.Any("error", err),
		)
		return
	}
	w.feed.Publish(guardID, u)
}

func (w *PositionIngest) decode(payload []byte) (domain.PositionUpdate, error) {
	var p devicePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return domain.PositionUpdate{}, fmt.Errorf("decode: %v: %w", err, e.ErrInvalidInput)
	}

	if p.Error != "" {
		return position.ErrorUpdate(p.Error)
	}
	if p.Lat == nil || p.Lng == nil {
		return domain.PositionUpdate{}, fmt.Errorf("missing coordinates: %w", e.ErrInvalidInput)
	}

	fix := &domain.PositionFix{
		Point:     domain.GeoPoint{Lat: *p.Lat, Lng: *p.Lng},
		AccuracyM: p.AccuracyM,
	}
	if !geofence.ValidPoint(fix.Point) {
		return domain.PositionUpdate{}, e.ErrInvalidCoordinates
	}

	now := w.clock.Now()
	fix.At = now
	if p.At != nil && !p.At.After(now.Add(maxClockSkew)) {
		fix.At = *p.At
	}
	return domain.PositionUpdate{Fix: fix}, nil
}

func (w *PositionIngest) shardOf(guardID uuid.UUID) int {
	h := fnv.New32a()
	_, _ = h.Write(guardID[:])
	return int(h.Sum32() % uint32(len(w.shards)))
}

// guardFromTopic extracts the guard id from ".../{id}/position".
func guardFromTopic(topic string) (uuid.UUID, error) {
	parts := strings.Split(topic, "/")
	if len(parts) < 2 || parts[len(parts)-1] != "position" {
		return uuid.Nil, e.ErrInvalidInput
	}
	return uuid.Parse(parts[len(parts)-2])
}
