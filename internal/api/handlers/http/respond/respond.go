// Package respond renders JSON bodies and maps domain errors onto HTTP
// statuses for every handler package.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"guardDuty/internal/domain"
	"guardDuty/pkg/e"
)

// ErrorBody is the JSON shape of every failed request.
type ErrorBody struct {
	Error        string `json:"error"`
	Code         string `json:"code,omitempty"`
	ShiftStart   string `json:"shift_start,omitempty"`
	ShiftEnd     string `json:"shift_end,omitempty"`
	GraceMinutes *int   `json:"grace_minutes,omitempty"`
}

func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func Message(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, ErrorBody{Error: msg})
}

// Error writes err and logs it at a level matching its class. Internal
// failures never leak their message.
func Error(w http.ResponseWriter, l *slog.Logger, r *http.Request, err error) {
	status := Status(err)
	body := ErrorBody{Error: err.Error(), Code: e.Code(err)}

	var win *domain.ShiftWindowError
	if errors.As(err, &win) {
		grace := win.GraceMinutes
		body.ShiftStart = win.ShiftStart.String()
		body.ShiftEnd = win.ShiftEnd.String()
		body.GraceMinutes = &grace
	}

	attrs := []any{
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.Any("error", err),
	}
	switch {
	case status >= http.StatusInternalServerError:
		l.Error("handler error", attrs...)
		body = ErrorBody{Error: "internal error", Code: "internal"}
		if status == http.StatusGatewayTimeout {
			body = ErrorBody{Error: "timeout", Code: "timeout"}
		}
	case e.IsPrecondition(err):
		l.Info("precondition failed", attrs...)
	default:
		l.Warn("request rejected", attrs...)
	}

	JSON(w, status, body)
}

func Status(err error) int {
	switch {
	case errors.Is(err, e.ErrOutOfRange),
		errors.Is(err, e.ErrOutsideShiftWindow),
		errors.Is(err, e.ErrNoAssignedZone),
		errors.Is(err, e.ErrPositionPermission),
		errors.Is(err, e.ErrPositionUnavailable),
		errors.Is(err, e.ErrPositionTimeout):
		return http.StatusUnprocessableEntity
	case errors.Is(err, e.ErrAlreadyOnDuty),
		errors.Is(err, e.ErrNotOnDuty),
		errors.Is(err, e.ErrShiftCompleted),
		errors.Is(err, e.ErrHoldNotActive),
		errors.Is(err, e.ErrConflict),
		errors.Is(err, e.ErrUniqueViolation):
		return http.StatusConflict
	case errors.Is(err, e.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, e.ErrInvalidInput), errors.Is(err, e.ErrInvalidCoordinates):
		return http.StatusBadRequest
	case errors.Is(err, e.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, e.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, e.ErrDeadline):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
