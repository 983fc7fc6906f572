// Package shiftwindow decides whether a guard may clock in at a given instant.
package shiftwindow

import (
	"time"

	"guardDuty/internal/domain"
)

const minutesPerDay = 24 * 60

// Decision is the outcome of an admission check. Validated is false when no
// shift governed the check and admission was granted by default.
type Decision struct {
	Allowed      bool
	Validated    bool
	ShiftStart   domain.ClockTime
	ShiftEnd     domain.ClockTime
	GraceMinutes int
}

// Err returns a *domain.ShiftWindowError for a rejected decision.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return &domain.ShiftWindowError{
		ShiftStart:   d.ShiftStart,
		ShiftEnd:     d.ShiftEnd,
		GraceMinutes: d.GraceMinutes,
	}
}

// AdmissionAllowed checks now, taken in its own location, against shift.
// A nil shift means the guard has no active assignment.
func AdmissionAllowed(shift *domain.ShiftDefinition, now time.Time) Decision {
	if shift == nil {
		return Decision{Allowed: true}
	}

	d := Decision{
		Validated:    true,
		ShiftStart:   shift.Start,
		ShiftEnd:     shift.End,
		GraceMinutes: shift.GraceMinutes,
	}

	nowMin := int(domain.ClockTimeOf(now))
	earliest := int(shift.Start) - shift.GraceMinutes
	latest := int(shift.End)

	wraps := shift.Wraps()
	if earliest < 0 {
		// grace reaches into the previous day
		earliest += minutesPerDay
		wraps = true
	}

	if wraps {
		d.Allowed = nowMin >= earliest || nowMin <= latest
	} else {
		d.Allowed = earliest <= nowMin && nowMin <= latest
	}
	return d
}
