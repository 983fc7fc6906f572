package domain

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceRecord struct {
	ID             uuid.UUID  `json:"id"`
	GuardID        uuid.UUID  `json:"guard_id"`
	WorkDate       time.Time  `json:"work_date"`
	CheckInAt      time.Time  `json:"check_in_at"`
	CheckInZoneID  uuid.UUID  `json:"check_in_zone_id"`
	CheckOutAt     *time.Time `json:"check_out_at,omitempty"`
	CheckOutZoneID *uuid.UUID `json:"check_out_zone_id,omitempty"`
	TotalHours     *float64   `json:"total_hours,omitempty"`
	ShiftValidated bool       `json:"shift_validated"`
}

func (r *AttendanceRecord) Open() bool {
	return r != nil && r.CheckOutAt == nil
}

type PositionSample struct {
	ID         uuid.UUID `json:"id"`
	GuardID    uuid.UUID `json:"guard_id"`
	Point      GeoPoint  `json:"point"`
	AccuracyM  float64   `json:"accuracy_m"`
	CapturedAt time.Time `json:"captured_at"`
}

// PositionFix is one reading from a guard device.
type PositionFix struct {
	Point     GeoPoint  `json:"point"`
	AccuracyM float64   `json:"accuracy_m"`
	At        time.Time `json:"at"`
}

// PositionUpdate carries either a fix or a provider failure.
type PositionUpdate struct {
	Fix *PositionFix
	Err error
}
