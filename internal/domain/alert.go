package domain

import (
	"time"

	"github.com/google/uuid"
)

type AlertKind string

const (
	AlertManual              AlertKind = "manual"
	AlertInactivity          AlertKind = "inactivity"
	AlertGeofenceBreach      AlertKind = "geofence_breach"
	AlertChecklistIncomplete AlertKind = "checklist_incomplete"
	AlertRoutine             AlertKind = "routine"
)

func (k AlertKind) Valid() bool {
	switch k {
	case AlertManual, AlertInactivity, AlertGeofenceBreach, AlertChecklistIncomplete, AlertRoutine:
		return true
	}
	return false
}

type AlertStatus string

const (
	AlertOpen     AlertStatus = "open"
	AlertResolved AlertStatus = "resolved"
)

type PanicAlert struct {
	ID             uuid.UUID   `json:"id"`
	GuardID        uuid.UUID   `json:"guard_id"`
	Kind           AlertKind   `json:"kind"`
	Point          *GeoPoint   `json:"point,omitempty"`
	ZoneID         *uuid.UUID  `json:"zone_id,omitempty"`
	DistanceM      *float64    `json:"distance_m,omitempty"`
	Description    string      `json:"description"`
	Status         AlertStatus `json:"status"`
	ResolvedBy     *uuid.UUID  `json:"resolved_by,omitempty"`
	ResolverName   string      `json:"-"`
	ResolutionNote string      `json:"resolution_note,omitempty"`
	ResolvedAt     *time.Time  `json:"resolved_at,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}

// AlertView is an alert joined with the display data supervisors need.
type AlertView struct {
	PanicAlert
	GuardName    string `json:"guard_name"`
	ZoneName     string `json:"zone_name,omitempty"`
	ResolverName string `json:"resolver_name,omitempty"`
}

// View joins the alert with the guard and zone display names.
func (a PanicAlert) View(guardName, zoneName string) AlertView {
	return AlertView{
		PanicAlert:   a,
		GuardName:    guardName,
		ZoneName:     zoneName,
		ResolverName: a.ResolverName,
	}
}

type CreateAlertParams struct {
	GuardID     uuid.UUID
	Kind        AlertKind
	Point       *GeoPoint
	ZoneID      *uuid.UUID
	DistanceM   *float64
	Description string
}

// ResolveAlertParams identifies the resolving supervisor from the server-side identity.
type ResolveAlertParams struct {
	AlertID      uuid.UUID
	ResolverID   uuid.UUID
	ResolverName string
	Note         string
	At           time.Time
}

type AlertEventType string

const (
	AlertCreated      AlertEventType = "alert.created"
	AlertResolvedType AlertEventType = "alert.resolved"
)

// AlertEvent is what travels over the event channel: identity only, receivers re-read the alert.
type AlertEvent struct {
	ID      string         `json:"-"`
	Type    AlertEventType `json:"type"`
	AlertID uuid.UUID      `json:"alert_id"`
	At      time.Time      `json:"at"`
}

// AlertNotification is delivered to supervisor subscribers.
type AlertNotification struct {
	EventID string         `json:"event_id"`
	Type    AlertEventType `json:"type"`
	Alert   AlertView      `json:"alert"`
}

type ResolveResult struct {
	Alert           *PanicAlert `json:"alert"`
	AlreadyResolved bool        `json:"already_resolved"`
}
