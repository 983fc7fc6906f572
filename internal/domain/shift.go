package domain

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"guardDuty/pkg/e"
)

// ClockTime is a time of day in minutes after midnight.
type ClockTime int

const minutesPerDay = 24 * 60

func ParseClockTime(s string) (ClockTime, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("clock time %q: want HH:MM", s)
	}
	h, err := strconv.Atoi(s[:2])
	if err != nil {
		return 0, fmt.Errorf("clock time %q: %w", s, err)
	}
	m, err := strconv.Atoi(s[3:])
	if err != nil {
		return 0, fmt.Errorf("clock time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock time %q: out of range", s)
	}
	return ClockTime(h*60 + m), nil
}

func MustClockTime(s string) ClockTime {
	c, err := ParseClockTime(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ClockTimeOf returns the minutes of day of t in t's location.
func ClockTimeOf(t time.Time) ClockTime {
	return ClockTime(t.Hour()*60 + t.Minute())
}

func (c ClockTime) String() string {
	m := int(c) % minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func (c ClockTime) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ClockTime) UnmarshalText(b []byte) error {
	v, err := ParseClockTime(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

type ShiftDefinition struct {
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	Start        ClockTime `json:"start"`
	End          ClockTime `json:"end"`
	GraceMinutes int       `json:"grace_minutes"`
	NightShift   bool      `json:"night_shift"`
}

// Wraps reports whether the shift crosses midnight.
func (s ShiftDefinition) Wraps() bool {
	return s.NightShift || s.End < s.Start
}

type ShiftAssignment struct {
	ID            uuid.UUID  `json:"id"`
	GuardID       uuid.UUID  `json:"guard_id"`
	ShiftCode     string     `json:"shift_code"`
	EffectiveFrom time.Time  `json:"effective_from"`
	EffectiveTo   *time.Time `json:"effective_to,omitempty"`
	Active        bool       `json:"active"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ActiveShift is the shift definition currently governing a guard's clock-in.
type ActiveShift struct {
	Assignment ShiftAssignment
	Shift      ShiftDefinition
}

// ShiftWindowError is returned when clock-in is attempted outside the admission window.
type ShiftWindowError struct {
	ShiftStart   ClockTime
	ShiftEnd     ClockTime
	GraceMinutes int
}

func (w *ShiftWindowError) Error() string {
	return fmt.Sprintf("outside shift window: shift %s-%s, clock-in opens %d minutes before start",
		w.ShiftStart, w.ShiftEnd, w.GraceMinutes)
}

func (w *ShiftWindowError) Unwrap() error { return e.ErrOutsideShiftWindow }
