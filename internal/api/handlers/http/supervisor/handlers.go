// Package supervisor serves the alert board: the open list, details, a live
// event stream and resolution.
package supervisor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"guardDuty/internal/domain"
	"guardDuty/internal/middleware"
	"guardDuty/internal/service"
)

const (
	subscriberBuffer = 64
	keepAlive        = 15 * time.Second
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Alerts interface {
	ListOpen(ctx context.Context) ([]*domain.AlertView, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.AlertView, error)
	Resolve(ctx context.Context, p domain.ResolveAlertParams) (domain.ResolveResult, error)
}

type AlertFeed interface {
	Subscribe(buffer int) *service.Subscription
	Unsubscribe(sub *service.Subscription)
	Replay(ctx context.Context, afterID string) ([]domain.AlertNotification, error)
}

type Handler struct {
	logger *slog.Logger
	Alerts Alerts
	Feed   AlertFeed
}

func NewHandler(logger *slog.Logger, alerts Alerts, feed AlertFeed) *Handler {
	return &Handler{
		logger: logger,
		Alerts: alerts,
		Feed:   feed,
	}
}

func (h *Handler) ListOpen(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.Alerts.ListOpen(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if alerts == nil {
		alerts = []*domain.AlertView{}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"alerts": alerts,
		"total":  len(alerts),
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.alertID(w, r)
	if !ok {
		return
	}

	alert, err := h.Alerts.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, alert)
}

// Resolve closes the alert on behalf of the calling supervisor. A repeated
// resolve answers 200 with already_resolved set.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request, req domain.ResolveAlertRequest) {
	l := h.log(r)

	id, ok := h.alertID(w, r)
	if !ok {
		return
	}
	caller, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing token"})
		return
	}

	res, err := h.Alerts.Resolve(r.Context(), domain.ResolveAlertParams{
		AlertID:      id,
		ResolverID:   caller.UserID,
		ResolverName: caller.Name,
		Note:         req.Note,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("alert resolve",
		slog.String("alert_id", id.String()),
		slog.String("resolver_id", caller.UserID.String()),
		slog.Bool("already_resolved", res.AlreadyResolved),
	)
	h.writeJSON(w, http.StatusOK, res)
}

// Stream is the live alert list as server-sent events. A fresh client gets
// a snapshot of the open alerts first; a reconnecting client sends
// Last-Event-ID and gets every event it missed instead. When the client
// falls behind the stream ends and the client resumes from its last id.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "streaming unsupported"})
		return
	}

	// streams outlive the server write timeout
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	lastID := r.Header.Get("Last-Event-ID")
	if lastID == "" {
		lastID = r.URL.Query().Get("last_event_id")
	}

	sub := h.Feed.Subscribe(subscriberBuffer)
	defer h.Feed.Unsubscribe(sub)

	var (
		missed   []domain.AlertNotification
		snapshot []*domain.AlertView
		err      error
	)
	if lastID != "" {
		missed, err = h.Feed.Replay(r.Context(), lastID)
	} else {
		snapshot, err = h.Alerts.ListOpen(r.Context())
	}
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	if lastID == "" {
		if snapshot == nil {
			snapshot = []*domain.AlertView{}
		}
		if err := writeEvent(w, "", "snapshot", snapshot); err != nil {
			return
		}
	}
	for _, n := range missed {
		if err := writeEvent(w, n.EventID, string(n.Type), n.Alert); err != nil {
			return
		}
		lastID = n.EventID
	}
	flusher.Flush()

	l.Debug("alert stream opened", slog.Int("replayed", len(missed)))

	ticker := time.NewTicker(keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case n, ok := <-sub.C:
			if !ok {
				l.Info("alert stream closed by hub", slog.String("last_event_id", lastID))
				return
			}
			if lastID != "" && !service.EventAfter(n.EventID, lastID) {
				continue
			}
			if err := writeEvent(w, n.EventID, string(n.Type), n.Alert); err != nil {
				return
			}
			lastID = n.EventID
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, id, event string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if id != "" {
		if _, err := fmt.Fprintf(w, "id: %s\n", id); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	return err
}

func (h *Handler) alertID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
