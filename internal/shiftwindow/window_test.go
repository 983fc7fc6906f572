package shiftwindow_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guardDuty/internal/domain"
	"guardDuty/internal/shiftwindow"
	"guardDuty/pkg/e"
)

func at(hhmm string) time.Time {
	c := domain.MustClockTime(hhmm)
	return time.Date(2025, 12, 23, int(c)/60, int(c)%60, 30, 0, time.UTC)
}

func TestAdmissionAllowed_DayShift(t *testing.T) {
	t.Parallel()

	shift := &domain.ShiftDefinition{
		Code:         "D",
		Start:        domain.MustClockTime("08:00"),
		End:          domain.MustClockTime("20:00"),
		GraceMinutes: 15,
	}

	cases := map[string]bool{
		"07:44": false,
		"07:45": true,
		"12:00": true,
		"20:00": true,
		"20:01": false,
		"00:00": false,
	}
	for hhmm, want := range cases {
		d := shiftwindow.AdmissionAllowed(shift, at(hhmm))
		assert.Equal(t, want, d.Allowed, "at %s", hhmm)
		assert.True(t, d.Validated)
	}
}

func TestAdmissionAllowed_NightShift(t *testing.T) {
	t.Parallel()

	shift := &domain.ShiftDefinition{
		Code:         "N",
		Start:        domain.MustClockTime("20:00"),
		End:          domain.MustClockTime("06:00"),
		GraceMinutes: 15,
		NightShift:   true,
	}

	cases := map[string]bool{
		"19:44": false,
		"19:45": true,
		"23:00": true,
		"00:00": true,
		"06:00": true,
		"06:01": false,
		"12:00": false,
	}
	for hhmm, want := range cases {
		d := shiftwindow.AdmissionAllowed(shift, at(hhmm))
		assert.Equal(t, want, d.Allowed, "at %s", hhmm)
	}
}

func TestAdmissionAllowed_WrapInferredWithoutFlag(t *testing.T) {
	t.Parallel()

	shift := &domain.ShiftDefinition{
		Start:        domain.MustClockTime("22:00"),
		End:          domain.MustClockTime("04:00"),
		GraceMinutes: 0,
	}

	assert.True(t, shiftwindow.AdmissionAllowed(shift, at("02:00")).Allowed)
	assert.False(t, shiftwindow.AdmissionAllowed(shift, at("21:59")).Allowed)
}

func TestAdmissionAllowed_GraceCrossesMidnight(t *testing.T) {
	t.Parallel()

	shift := &domain.ShiftDefinition{
		Start:        domain.MustClockTime("00:10"),
		End:          domain.MustClockTime("08:00"),
		GraceMinutes: 30,
	}

	assert.True(t, shiftwindow.AdmissionAllowed(shift, at("23:40")).Allowed)
	assert.False(t, shiftwindow.AdmissionAllowed(shift, at("23:39")).Allowed)
	assert.True(t, shiftwindow.AdmissionAllowed(shift, at("08:00")).Allowed)
	assert.False(t, shiftwindow.AdmissionAllowed(shift, at("08:01")).Allowed)
}

func TestAdmissionAllowed_NoShiftIsUnvalidated(t *testing.T) {
	t.Parallel()

	for _, hhmm := range []string{"00:00", "03:17", "23:59"} {
		d := shiftwindow.AdmissionAllowed(nil, at(hhmm))
		assert.True(t, d.Allowed)
		assert.False(t, d.Validated)
		assert.NoError(t, d.Err())
	}
}

func TestDecision_ErrCarriesWindow(t *testing.T) {
	t.Parallel()

	shift := &domain.ShiftDefinition{
		Start:        domain.MustClockTime("08:00"),
		End:          domain.MustClockTime("20:00"),
		GraceMinutes: 15,
	}

	err := shiftwindow.AdmissionAllowed(shift, at("07:00")).Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, e.ErrOutsideShiftWindow))

	var werr *domain.ShiftWindowError
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, "08:00", werr.ShiftStart.String())
	assert.Equal(t, "20:00", werr.ShiftEnd.String())
	assert.Equal(t, 15, werr.GraceMinutes)
}

func TestAdmissionAllowed_UsesLocationOfNow(t *testing.T) {
	t.Parallel()

	shift := &domain.ShiftDefinition{
		Start: domain.MustClockTime("08:00"),
		End:   domain.MustClockTime("20:00"),
	}
	loc := time.FixedZone("UTC+3", 3*60*60)

	// 06:00 UTC is 09:00 at the facility.
	now := time.Date(2025, 12, 23, 6, 0, 0, 0, time.UTC)
	assert.False(t, shiftwindow.AdmissionAllowed(shift, now).Allowed)
	assert.True(t, shiftwindow.AdmissionAllowed(shift, now.In(loc)).Allowed)
}
