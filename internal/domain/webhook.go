package domain

import (
	"time"

	"github.com/google/uuid"
)

// WebhookPayload is pushed to the external paging endpoint for every new alert.
type WebhookPayload struct {
	AlertID   uuid.UUID `json:"alert_id"`
	GuardID   string    `json:"guard_id"`
	GuardName string    `json:"guard_name"`
	Kind      AlertKind `json:"kind"`
	Lat       *float64  `json:"lat,omitempty"`
	Lng       *float64  `json:"lng,omitempty"`
	ZoneName  string    `json:"zone_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
