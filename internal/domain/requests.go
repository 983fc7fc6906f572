package domain

import (
	"time"

	"github.com/google/uuid"
)

type CreateZoneRequest struct {
	Name    string  `json:"name" validate:"required,max=120"`
	Lat     float64 `json:"lat" validate:"lat"`
	Lng     float64 `json:"lng" validate:"lng"`
	RadiusM float64 `json:"radius_m" validate:"required,radius_m"`
}

type CreateGuardRequest struct {
	Name   string     `json:"name" validate:"required,max=120"`
	ZoneID *uuid.UUID `json:"zone_id"`
}

type AssignZoneRequest struct {
	ZoneID uuid.UUID `json:"zone_id" validate:"required"`
}

type CreateShiftRequest struct {
	Code         string `json:"code" validate:"required,max=32"`
	Name         string `json:"name" validate:"required,max=120"`
	Start        string `json:"start" validate:"required,clock"`
	End          string `json:"end" validate:"required,clock"`
	GraceMinutes int    `json:"grace_minutes" validate:"min=0,max=240"`
	NightShift   bool   `json:"night_shift"`
}

type ActivateAssignmentRequest struct {
	GuardID       uuid.UUID  `json:"guard_id" validate:"required"`
	ShiftCode     string     `json:"shift_code" validate:"required"`
	EffectiveFrom time.Time  `json:"effective_from" validate:"required"`
	EffectiveTo   *time.Time `json:"effective_to"`
}

type PositionReport struct {
	Lat       float64    `json:"lat" validate:"lat"`
	Lng       float64    `json:"lng" validate:"lng"`
	AccuracyM float64    `json:"accuracy_m" validate:"min=0"`
	At        *time.Time `json:"at"`
}

type PositionErrorReport struct {
	Reason string `json:"reason" validate:"required,oneof=permission_denied unavailable timeout"`
}

type TriggerAlertRequest struct {
	Kind        AlertKind `json:"kind" validate:"required,alert_kind"`
	Description string    `json:"description" validate:"max=2000"`
}

type ResolveAlertRequest struct {
	Note string `json:"note" validate:"max=2000"`
}
