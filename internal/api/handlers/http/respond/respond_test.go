package respond_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guardDuty/internal/api/handlers/http/respond"
	"guardDuty/internal/domain"
	"guardDuty/pkg/e"
)

func TestError(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil))

	cases := []struct {
		name     string
		err      error
		status   int
		code     string
		contains string
	}{
		{"out of range", fmt.Errorf("clock-in: 180 m from zone: %w", e.ErrOutOfRange), http.StatusUnprocessableEntity, "out_of_range", "180 m"},
		{"already on duty", e.ErrAlreadyOnDuty, http.StatusConflict, "already_on_duty", ""},
		{"not on duty", e.ErrNotOnDuty, http.StatusConflict, "not_on_duty", ""},
		{"position denied", e.ErrPositionPermission, http.StatusUnprocessableEntity, "position_permission_denied", ""},
		{"missing", fmt.Errorf("x: %w", e.ErrNotFound), http.StatusNotFound, "not_found", ""},
		{"bad input", e.ErrInvalidInput, http.StatusBadRequest, "invalid_input", ""},
		{"internal", errors.New("pool exhausted"), http.StatusInternalServerError, "internal", "internal error"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			respond.Error(rr, logger, httptest.NewRequest(http.MethodPost, "/x", nil), tc.err)

			assert.Equal(t, tc.status, rr.Code)
			var body respond.ErrorBody
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body.Code)
			if tc.contains != "" {
				assert.Contains(t, body.Error, tc.contains)
			}
			assert.NotContains(t, body.Error, "pool exhausted")
		})
	}
}

func TestError_ShiftWindowDetails(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("clock-in: %w", &domain.ShiftWindowError{
		ShiftStart:   domain.MustClockTime("22:00"),
		ShiftEnd:     domain.MustClockTime("06:00"),
		GraceMinutes: 15,
	})

	rr := httptest.NewRecorder()
	respond.Error(rr, slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil)), httptest.NewRequest(http.MethodPost, "/", nil), err)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	var body respond.ErrorBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "outside_shift_window", body.Code)
	assert.Equal(t, "22:00", body.ShiftStart)
	assert.Equal(t, "06:00", body.ShiftEnd)
	require.NotNil(t, body.GraceMinutes)
	assert.Equal(t, 15, *body.GraceMinutes)
}
