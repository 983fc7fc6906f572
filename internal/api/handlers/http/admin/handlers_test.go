package admin_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"guardDuty/internal/api/handlers/http/admin"
	mock_admin "guardDuty/internal/api/handlers/http/admin/mocks"
	"guardDuty/internal/domain"
	"guardDuty/internal/middleware"
	"guardDuty/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func TestZoneCreate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockCatalogue(ctrl)
	h := admin.NewHandler(newTestLogger(), svc)

	reqBody := `{"name":"Dock","lat":55.75,"lng":37.61,"radius_m":150}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/zones", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	wantReq := domain.CreateZoneRequest{Name: "Dock", Lat: 55.75, Lng: 37.61, RadiusM: 150}
	zone := &domain.GeofenceZone{ID: uuid.New(), Name: "Dock", Center: domain.GeoPoint{Lat: 55.75, Lng: 37.61}, RadiusM: 150}

	svc.EXPECT().CreateZone(gomock.Any(), wantReq).Return(zone, nil).Times(1)

	middleware.Bind(h.ZoneCreate).ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.GeofenceZone](t, rr)
	if got.ID != zone.ID {
		t.Fatalf("unexpected id: got=%s want=%s", got.ID, zone.ID)
	}
}

func TestZoneCreate_Invalid_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockCatalogue(ctrl)
	h := admin.NewHandler(newTestLogger(), svc)

	for _, body := range []string{
		`{"name":"Dock","lat":55.75,"lng":37.61`,
		`{"name":"Dock","lat":155.75,"lng":37.61,"radius_m":150}`,
		`{"name":"Dock","lat":55.75,"lng":37.61,"radius_m":1}`,
		`{"lat":55.75,"lng":37.61,"radius_m":150}`,
	} {
		rr := httptest.NewRecorder()
		middleware.Bind(h.ZoneCreate).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body)))
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected %d got %d", body, http.StatusBadRequest, rr.Code)
		}
	}
}

func TestZoneGet_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockCatalogue(ctrl)
	h := admin.NewHandler(newTestLogger(), svc)

	id := uuid.New()
	svc.EXPECT().GetZone(gomock.Any(), id).Return(nil, e.ErrNotFound).Times(1)

	req := addChiURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/admin/zones/"+id.String(), nil), "id", id.String())
	rr := httptest.NewRecorder()
	h.ZoneGet(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d", http.StatusNotFound, rr.Code)
	}
}

func TestZoneGet_InvalidID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := admin.NewHandler(newTestLogger(), mock_admin.NewMockCatalogue(ctrl))

	req := addChiURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", "bad")
	rr := httptest.NewRecorder()
	h.ZoneGet(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestZoneList_Empty(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockCatalogue(ctrl)
	h := admin.NewHandler(newTestLogger(), svc)
	svc.EXPECT().ListZones(gomock.Any()).Return(nil, nil).Times(1)

	rr := httptest.NewRecorder()
	h.ZoneList(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	got := decodeJSON[map[string]any](t, rr)
	if zones, ok := got["zones"].([]any); !ok || len(zones) != 0 {
		t.Fatalf("expected empty list, got %v", got["zones"])
	}
}

func TestGuardAssignZone(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockCatalogue(ctrl)
	h := admin.NewHandler(newTestLogger(), svc)

	guardID, zoneID := uuid.New(), uuid.New()
	svc.EXPECT().AssignZone(gomock.Any(), guardID, zoneID).Return(nil).Times(1)

	body := `{"zone_id":"` + zoneID.String() + `"}`
	req := addChiURLParam(httptest.NewRequest(http.MethodPut, "/", bytes.NewBufferString(body)), "id", guardID.String())
	rr := httptest.NewRecorder()
	middleware.Bind(h.GuardAssignZone).ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
}

func TestShiftCreate_Conflict_409(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockCatalogue(ctrl)
	h := admin.NewHandler(newTestLogger(), svc)

	svc.EXPECT().CreateShift(gomock.Any(), gomock.Any()).Return(nil, e.ErrUniqueViolation).Times(1)

	body := `{"code":"N","name":"Night","start":"22:00","end":"06:00","grace_minutes":15}`
	rr := httptest.NewRecorder()
	middleware.Bind(h.ShiftCreate).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body)))

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected %d got %d", http.StatusConflict, rr.Code)
	}
}

func TestShiftCreate_BadClock_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := admin.NewHandler(newTestLogger(), mock_admin.NewMockCatalogue(ctrl))

	body := `{"code":"N","name":"Night","start":"22h","end":"06:00"}`
	rr := httptest.NewRecorder()
	middleware.Bind(h.ShiftCreate).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body)))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestAssignmentActivate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockCatalogue(ctrl)
	h := admin.NewHandler(newTestLogger(), svc)

	guardID := uuid.New()
	svc.EXPECT().ActivateAssignment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req domain.ActivateAssignmentRequest) (*domain.ShiftAssignment, error) {
			if req.GuardID != guardID || req.ShiftCode != "D" {
				t.Fatalf("unexpected request %+v", req)
			}
			return &domain.ShiftAssignment{ID: uuid.New(), GuardID: guardID, ShiftCode: "D", Active: true}, nil
		}).Times(1)

	body := `{"guard_id":"` + guardID.String() + `","shift_code":"D","effective_from":"2025-12-01T00:00:00Z"}`
	rr := httptest.NewRecorder()
	middleware.Bind(h.AssignmentActivate).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body)))

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	if got := decodeJSON[domain.ShiftAssignment](t, rr); !got.Active {
		t.Fatalf("assignment not active")
	}
}

func TestGuardCreate_InternalError_500(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockCatalogue(ctrl)
	h := admin.NewHandler(newTestLogger(), svc)

	svc.EXPECT().CreateGuard(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down")).Times(1)

	rr := httptest.NewRecorder()
	middleware.Bind(h.GuardCreate).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name":"Olga"}`)))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d", http.StatusInternalServerError, rr.Code)
	}
	if got := decodeJSON[map[string]string](t, rr); got["error"] != "internal error" {
		t.Fatalf("internal details leaked: %v", got)
	}
}
