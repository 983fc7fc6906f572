// Package service holds the alert distribution use cases and the admin
// catalogue behind the HTTP API.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"guardDuty/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type AlertRepository interface {
	CreateAlert(ctx context.Context, alert *domain.PanicAlert) error
	GetAlertView(ctx context.Context, id uuid.UUID) (*domain.AlertView, error)
	ListOpenAlerts(ctx context.Context) ([]*domain.AlertView, error)
	ResolveAlert(ctx context.Context, p domain.ResolveAlertParams) (*domain.PanicAlert, bool, error)
}

// AlertEventLog is the durable, ordered log of alert events. Read returns
// entries after afterID ("$" for new entries only) and may block.
type AlertEventLog interface {
	Append(ctx context.Context, ev domain.AlertEvent) (string, error)
	Read(ctx context.Context, afterID string, count int64, block time.Duration) ([]domain.AlertEvent, error)
}

type WebhookQueue interface {
	Enqueue(ctx context.Context, payload domain.WebhookPayload) error
}

type WebhookSource interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.WebhookPayload, error)
}

type ZoneCache interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.GeofenceZone, error)
	Set(ctx context.Context, zone *domain.GeofenceZone) error
}

// SessionReloader lets admin changes reach live duty sessions.
type SessionReloader interface {
	Reload(guardID uuid.UUID)
}

type Service struct {
	Alerts *AlertService
	Admin  *AdminService
	Hub    *AlertHub
}

func NewService(alerts *AlertService, admin *AdminService, hub *AlertHub) *Service {
	return &Service{
		Alerts: alerts,
		Admin:  admin,
		Hub:    hub,
	}
}
