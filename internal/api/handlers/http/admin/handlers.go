package admin

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"guardDuty/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Catalogue interface {
	CreateZone(ctx context.Context, req domain.CreateZoneRequest) (*domain.GeofenceZone, error)
	GetZone(ctx context.Context, id uuid.UUID) (*domain.GeofenceZone, error)
	ListZones(ctx context.Context) ([]*domain.GeofenceZone, error)
	CreateGuard(ctx context.Context, req domain.CreateGuardRequest) (*domain.Guard, error)
	ListGuards(ctx context.Context) ([]*domain.Guard, error)
	AssignZone(ctx context.Context, guardID, zoneID uuid.UUID) error
	CreateShift(ctx context.Context, req domain.CreateShiftRequest) (*domain.ShiftDefinition, error)
	ListShifts(ctx context.Context) ([]*domain.ShiftDefinition, error)
	ActivateAssignment(ctx context.Context, req domain.ActivateAssignmentRequest) (*domain.ShiftAssignment, error)
}

type Handler struct {
	logger    *slog.Logger
	Catalogue Catalogue
}

func NewHandler(logger *slog.Logger, catalogue Catalogue) *Handler {
	return &Handler{
		logger:    logger,
		Catalogue: catalogue,
	}
}

func (h *Handler) ZoneCreate(w http.ResponseWriter, r *http.Request, req domain.CreateZoneRequest) {
	l := h.log(r)
	l.Info("creating zone",
		slog.String("name", req.Name),
		slog.Float64("lat", req.Lat),
		slog.Float64("lng", req.Lng),
		slog.Float64("radius_m", req.RadiusM),
	)

	zone, err := h.Catalogue.CreateZone(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("zone created", slog.String("id", zone.ID.String()))
	h.writeJSON(w, http.StatusCreated, zone)
}

func (h *Handler) ZoneList(w http.ResponseWriter, r *http.Request) {
	zones, err := h.Catalogue.ListZones(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if zones == nil {
		zones = []*domain.GeofenceZone{}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"zones": zones, "total": len(zones)})
}

func (h *Handler) ZoneGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	zone, err := h.Catalogue.GetZone(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, zone)
}

func (h *Handler) GuardCreate(w http.ResponseWriter, r *http.Request, req domain.CreateGuardRequest) {
	guard, err := h.Catalogue.CreateGuard(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("guard created", slog.String("id", guard.ID.String()))
	h.writeJSON(w, http.StatusCreated, guard)
}

func (h *Handler) GuardList(w http.ResponseWriter, r *http.Request) {
	guards, err := h.Catalogue.ListGuards(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if guards == nil {
		guards = []*domain.Guard{}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"guards": guards, "total": len(guards)})
}

func (h *Handler) GuardAssignZone(w http.ResponseWriter, r *http.Request, req domain.AssignZoneRequest) {
	guardID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.Catalogue.AssignZone(r.Context(), guardID, req.ZoneID); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ShiftCreate(w http.ResponseWriter, r *http.Request, req domain.CreateShiftRequest) {
	shift, err := h.Catalogue.CreateShift(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("shift created", slog.String("code", shift.Code))
	h.writeJSON(w, http.StatusCreated, shift)
}

func (h *Handler) ShiftList(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.Catalogue.ListShifts(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if shifts == nil {
		shifts = []*domain.ShiftDefinition{}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"shifts": shifts, "total": len(shifts)})
}

func (h *Handler) AssignmentActivate(w http.ResponseWriter, r *http.Request, req domain.ActivateAssignmentRequest) {
	a, err := h.Catalogue.ActivateAssignment(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("assignment activated",
		slog.String("guard_id", a.GuardID.String()),
		slog.String("shift", a.ShiftCode),
	)
	h.writeJSON(w, http.StatusCreated, a)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, key string) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, key)
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
