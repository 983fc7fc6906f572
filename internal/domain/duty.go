package domain

import (
	"time"

	"github.com/google/uuid"
)

type DutyState string

const (
	OffDuty DutyState = "off_duty"
	OnDuty  DutyState = "on_duty"
)

type ComplianceState string

const (
	Compliant ComplianceState = "compliant"
	Breaching ComplianceState = "breaching"
)

// Advisory is a local notice for the guard, never an alert.
type Advisory struct {
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

type DutyStatus struct {
	GuardID       uuid.UUID         `json:"guard_id"`
	State         DutyState         `json:"state"`
	Zone          *GeofenceZone     `json:"zone,omitempty"`
	Position      *PositionFix      `json:"position,omitempty"`
	InRange       *bool             `json:"in_range,omitempty"`
	DistanceM     *float64          `json:"distance_m,omitempty"`
	PositionError string            `json:"position_error,omitempty"`
	Compliance    ComplianceState   `json:"compliance,omitempty"`
	BreachStart   *time.Time        `json:"breach_start,omitempty"`
	Attendance    *AttendanceRecord `json:"attendance,omitempty"`
	Advisories    []Advisory        `json:"advisories,omitempty"`
	HoldProgress  int               `json:"hold_progress"`
}

type ClockInResult struct {
	Record         *AttendanceRecord `json:"record"`
	DistanceM      float64           `json:"distance_m"`
	ShiftValidated bool              `json:"shift_validated"`
}
