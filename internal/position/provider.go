// Package position turns device position reports into per-guard streams.
package position

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"guardDuty/internal/domain"
	"guardDuty/pkg/e"
)

//go:generate mockgen -source=provider.go -destination=mocks/mock.go
type Provider interface {
	Subscribe(ctx context.Context, guardID uuid.UUID) (Subscription, error)
}

type Subscription interface {
	Updates() <-chan domain.PositionUpdate
	Close()
}

// ErrorUpdate maps a device-reported failure reason onto a provider update.
func ErrorUpdate(reason string) (domain.PositionUpdate, error) {
	switch reason {
	case "permission_denied":
		return domain.PositionUpdate{Err: e.ErrPositionPermission}, nil
	case "unavailable":
		return domain.PositionUpdate{Err: e.ErrPositionUnavailable}, nil
	case "timeout":
		return domain.PositionUpdate{Err: e.ErrPositionTimeout}, nil
	default:
		return domain.PositionUpdate{}, fmt.Errorf("position error reason %q: %w", reason, e.ErrInvalidInput)
	}
}
