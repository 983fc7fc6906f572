package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"guardDuty/internal/clock"
	"guardDuty/internal/domain"
	"guardDuty/internal/geofence"
	"guardDuty/pkg/e"
)

// AlertService creates and resolves panic alerts and publishes every state
// change to the event log.
type AlertService struct {
	repo     AlertRepository
	events   AlertEventLog
	webhooks WebhookQueue
	clock    clock.Clock
	logger   *slog.Logger
}

// NewAlertService accepts a nil webhooks queue when paging is disabled.
func NewAlertService(repo AlertRepository, events AlertEventLog, webhooks WebhookQueue, c clock.Clock, logger *slog.Logger) *AlertService {
	return &AlertService{
		repo:     repo,
		events:   events,
		webhooks: webhooks,
		clock:    c,
		logger:   logger,
	}
}

// Create stores a new alert. Every call creates a distinct alert; the guard
// identity must come from the authenticated session, never from the payload.
func (s *AlertService) Create(ctx context.Context, params domain.CreateAlertParams) (*domain.PanicAlert, error) {
	const op = "service.Alert.Create"

	if params.GuardID == uuid.Nil || !params.Kind.Valid() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if params.Point != nil && !geofence.ValidPoint(*params.Point) {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	alert := &domain.PanicAlert{
		ID:          uuid.New(),
		GuardID:     params.GuardID,
		Kind:        params.Kind,
		Point:       params.Point,
		ZoneID:      params.ZoneID,
		DistanceM:   params.DistanceM,
		Description: params.Description,
		Status:      domain.AlertOpen,
		CreatedAt:   s.clock.Now().UTC().Truncate(time.Microsecond),
	}
	if err := s.repo.CreateAlert(ctx, alert); err != nil {
		return nil, err
	}

	s.logger.Warn("alert created",
		slog.String("alert_id", alert.ID.String()),
		slog.String("guard_id", alert.GuardID.String()),
		slog.String("kind", string(alert.Kind)),
	)

	s.publish(ctx, domain.AlertCreated, alert.ID)
	s.page(ctx, alert)

	return alert, nil
}

// Resolve closes an open alert. Resolving an already resolved alert succeeds
// without changing it and without a new event.
func (s *AlertService) Resolve(ctx context.Context, p domain.ResolveAlertParams) (domain.ResolveResult, error) {
	const op = "service.Alert.Resolve"

	if p.AlertID == uuid.Nil || p.ResolverID == uuid.Nil {
		return domain.ResolveResult{}, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if p.At.IsZero() {
		p.At = s.clock.Now().UTC().Truncate(time.Microsecond)
	}

	alert, already, err := s.repo.ResolveAlert(ctx, p)
	if err != nil {
		return domain.ResolveResult{}, err
	}

	if already {
		s.logger.Info("alert already resolved",
			slog.String("alert_id", p.AlertID.String()),
			slog.String("resolver_id", p.ResolverID.String()),
		)
		return domain.ResolveResult{Alert: alert, AlreadyResolved: true}, nil
	}

	s.logger.Info("alert resolved",
		slog.String("alert_id", p.AlertID.String()),
		slog.String("resolver_id", p.ResolverID.String()),
	)
	s.publish(ctx, domain.AlertResolvedType, alert.ID)

	return domain.ResolveResult{Alert: alert}, nil
}

func (s *AlertService) ListOpen(ctx context.Context) ([]*domain.AlertView, error) {
	return s.repo.ListOpenAlerts(ctx)
}

func (s *AlertService) Get(ctx context.Context, id uuid.UUID) (*domain.AlertView, error) {
	return s.repo.GetAlertView(ctx, id)
}

// publish failures leave the alert stored; supervisors still see it in the
// open list.
func (s *AlertService) publish(ctx context.Context, typ domain.AlertEventType, alertID uuid.UUID) {
	id, err := s.events.Append(ctx, domain.AlertEvent{Type: typ, AlertID: alertID, At: s.clock.Now().UTC()})
	if err != nil {
		s.logger.Error("alert event not published",
			slog.String("alert_id", alertID.String()),
			slog.String("type", string(typ)),
			slog.Any("error", err),
		)
		return
	}
	s.logger.Debug("alert event published", slog.String("event_id", id), slog.String("type", string(typ)))
}

func (s *AlertService) page(ctx context.Context, alert *domain.PanicAlert) {
	if s.webhooks == nil {
		return
	}

	payload := domain.WebhookPayload{
		AlertID:   alert.ID,
		GuardID:   alert.GuardID.String(),
		Kind:      alert.Kind,
		CreatedAt: alert.CreatedAt,
	}
	if alert.Point != nil {
		lat, lng := alert.Point.Lat, alert.Point.Lng
		payload.Lat, payload.Lng = &lat, &lng
	}
	if view, err := s.repo.GetAlertView(ctx, alert.ID); err == nil {
		payload.GuardName = view.GuardName
		payload.ZoneName = view.ZoneName
	}

	if err := s.webhooks.Enqueue(ctx, payload); err != nil {
		s.logger.Error("enqueue webhook failed", slog.String("alert_id", alert.ID.String()), slog.Any("error", err))
		return
	}
	s.logger.Info("webhook enqueued", slog.String("alert_id", alert.ID.String()))
}
