// Package guard serves the duty endpoints a guard device calls. The guard is
// always the authenticated caller; request bodies never name one.
package guard

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"guardDuty/internal/clock"
	"guardDuty/internal/domain"
	"guardDuty/internal/duty"
	"guardDuty/internal/geofence"
	"guardDuty/internal/middleware"
	"guardDuty/internal/position"
	"guardDuty/pkg/e"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Sessions interface {
	Session(ctx context.Context, guardID uuid.UUID) (DutySession, error)
	End(guardID uuid.UUID) bool
}

type DutySession interface {
	ClockIn(ctx context.Context) (*domain.ClockInResult, error)
	ClockOut(ctx context.Context) (*domain.AttendanceRecord, error)
	Status(ctx context.Context) (domain.DutyStatus, error)
	ReportPosition(ctx context.Context, u domain.PositionUpdate) (domain.DutyStatus, error)
	TriggerAlert(ctx context.Context, kind domain.AlertKind, description string) (*domain.PanicAlert, error)
	StartHold()
	EndHold(ctx context.Context) (bool, *domain.PanicAlert, error)
	CancelHold()
	HoldProgress() int
	WatchHold(ctx context.Context) <-chan int
}

type Handler struct {
	logger   *slog.Logger
	Sessions Sessions
	clock    clock.Clock
}

func NewHandler(logger *slog.Logger, sessions Sessions, c clock.Clock) *Handler {
	return &Handler{
		logger:   logger,
		Sessions: sessions,
		clock:    c,
	}
}

// ManagerSessions exposes a duty.Manager through Sessions.
func ManagerSessions(m *duty.Manager) Sessions {
	return managerSessions{m: m}
}

type managerSessions struct {
	m *duty.Manager
}

func (s managerSessions) Session(ctx context.Context, guardID uuid.UUID) (DutySession, error) {
	sess, err := s.m.Session(ctx, guardID)
	if err != nil {
		return nil, err
	}
	return sess, nil
}

func (s managerSessions) End(guardID uuid.UUID) bool {
	return s.m.End(guardID)
}

func (h *Handler) ClockIn(w http.ResponseWriter, r *http.Request) {
	sess, l, ok := h.session(w, r)
	if !ok {
		return
	}

	res, err := sess.ClockIn(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("clocked in",
		slog.Float64("distance_m", res.DistanceM),
		slog.Bool("shift_validated", res.ShiftValidated),
	)
	h.writeJSON(w, http.StatusCreated, res)
}

func (h *Handler) ClockOut(w http.ResponseWriter, r *http.Request) {
	sess, l, ok := h.session(w, r)
	if !ok {
		return
	}

	rec, err := sess.ClockOut(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("clocked out", slog.String("attendance_id", rec.ID.String()))
	h.writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	sess, _, ok := h.session(w, r)
	if !ok {
		return
	}

	st, err := sess.Status(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, st)
}

// ReportPosition accepts a fix from the device. Timestamps in the future are
// replaced by the receipt time.
func (h *Handler) ReportPosition(w http.ResponseWriter, r *http.Request, req domain.PositionReport) {
	point := domain.GeoPoint{Lat: req.Lat, Lng: req.Lng}
	if !geofence.ValidPoint(point) {
		h.handleError(w, r, e.ErrInvalidCoordinates)
		return
	}

	now := h.clock.Now()
	at := now
	if req.At != nil && !req.At.After(now) {
		at = *req.At
	}

	h.report(w, r, domain.PositionUpdate{Fix: &domain.PositionFix{Point: point, AccuracyM: req.AccuracyM, At: at}})
}

func (h *Handler) ReportPositionError(w http.ResponseWriter, r *http.Request, req domain.PositionErrorReport) {
	u, err := position.ErrorUpdate(req.Reason)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.report(w, r, u)
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request, u domain.PositionUpdate) {
	sess, _, ok := h.session(w, r)
	if !ok {
		return
	}

	st, err := sess.ReportPosition(r.Context(), u)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, st)
}

func (h *Handler) TriggerAlert(w http.ResponseWriter, r *http.Request, req domain.TriggerAlertRequest) {
	sess, l, ok := h.session(w, r)
	if !ok {
		return
	}

	alert, err := sess.TriggerAlert(r.Context(), req.Kind, req.Description)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Warn("alert triggered", slog.String("alert_id", alert.ID.String()), slog.String("kind", string(alert.Kind)))
	h.writeJSON(w, http.StatusCreated, alert)
}

func (h *Handler) HoldStart(w http.ResponseWriter, r *http.Request) {
	sess, _, ok := h.session(w, r)
	if !ok {
		return
	}
	sess.StartHold()
	h.writeJSON(w, http.StatusAccepted, holdResponse{Progress: sess.HoldProgress()})
}

func (h *Handler) HoldEnd(w http.ResponseWriter, r *http.Request) {
	sess, l, ok := h.session(w, r)
	if !ok {
		return
	}

	triggered, alert, err := sess.EndHold(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if !triggered {
		h.writeJSON(w, http.StatusOK, holdResponse{Triggered: false})
		return
	}

	l.Warn("panic hold triggered", slog.String("alert_id", alert.ID.String()))
	h.writeJSON(w, http.StatusCreated, holdResponse{Triggered: true, Progress: 100, Alert: alert})
}

func (h *Handler) HoldCancel(w http.ResponseWriter, r *http.Request) {
	sess, _, ok := h.session(w, r)
	if !ok {
		return
	}
	sess.CancelHold()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HoldProgress(w http.ResponseWriter, r *http.Request) {
	sess, _, ok := h.session(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, holdResponse{Progress: sess.HoldProgress()})
}

// HoldStream pushes hold progress as server-sent events until the client
// goes away.
func (h *Handler) HoldStream(w http.ResponseWriter, r *http.Request) {
	sess, _, ok := h.session(w, r)
	if !ok {
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "streaming unsupported"})
		return
	}

	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for p := range sess.WatchHold(r.Context()) {
		if _, err := fmt.Fprintf(w, "event: progress\ndata: %d\n\n", p); err != nil {
			return
		}
		flusher.Flush()
	}
}

func (h *Handler) EndSession(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing token"})
		return
	}

	ended := h.Sessions.End(id.UserID)
	h.log(r).Info("duty session ended", slog.String("guard_id", id.UserID.String()), slog.Bool("was_open", ended))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (DutySession, *slog.Logger, bool) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing token"})
		return nil, nil, false
	}

	l := h.log(r).With(slog.String("guard_id", id.UserID.String()))
	sess, err := h.Sessions.Session(r.Context(), id.UserID)
	if err != nil {
		h.handleError(w, r, err)
		return nil, nil, false
	}
	return sess, l, true
}

type holdResponse struct {
	Triggered bool               `json:"triggered"`
	Progress  int                `json:"progress"`
	Alert     *domain.PanicAlert `json:"alert,omitempty"`
}
