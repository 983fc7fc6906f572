package guard_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"guardDuty/internal/api/handlers/http/guard"
	mock_guard "guardDuty/internal/api/handlers/http/guard/mocks"
	"guardDuty/internal/api/handlers/http/respond"
	"guardDuty/internal/domain"
	"guardDuty/internal/middleware"
	"guardDuty/internal/testfixtures"
	"guardDuty/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

type fixture struct {
	h       *guard.Handler
	sess    *mock_guard.MockDutySession
	guardID uuid.UUID
	clock   *testfixtures.Clock
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	sessions := mock_guard.NewMockSessions(ctrl)
	sess := mock_guard.NewMockDutySession(ctrl)
	guardID := uuid.New()
	clk := testfixtures.NewClock(time.Time{})

	sessions.EXPECT().Session(gomock.Any(), guardID).Return(sess, nil).AnyTimes()

	return fixture{
		h:       guard.NewHandler(newTestLogger(), sessions, clk),
		sess:    sess,
		guardID: guardID,
		clock:   clk,
	}
}

func (f fixture) request(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req.WithContext(middleware.WithIdentity(req.Context(), middleware.Identity{
		UserID: f.guardID,
		Name:   "Olga",
		Role:   middleware.RoleGuard,
	}))
}

func TestClockIn_Created(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	want := &domain.ClockInResult{
		Record:         &domain.AttendanceRecord{ID: uuid.New(), GuardID: f.guardID},
		DistanceM:      12.5,
		ShiftValidated: true,
	}
	f.sess.EXPECT().ClockIn(gomock.Any()).Return(want, nil).Times(1)

	rr := httptest.NewRecorder()
	f.h.ClockIn(rr, f.request(http.MethodPost, "/api/v1/duty/clock-in", ""))

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.ClockInResult](t, rr)
	if got.Record.ID != want.Record.ID || got.DistanceM != 12.5 || !got.ShiftValidated {
		t.Fatalf("unexpected response %+v", got)
	}
}

func TestClockIn_Preconditions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"out of range", fmt.Errorf("412 m from Dock: %w", e.ErrOutOfRange), http.StatusUnprocessableEntity, "out_of_range"},
		{"no zone", e.ErrNoAssignedZone, http.StatusUnprocessableEntity, "no_assigned_zone"},
		{"already on duty", e.ErrAlreadyOnDuty, http.StatusConflict, "already_on_duty"},
		{"timeout", e.ErrPositionTimeout, http.StatusUnprocessableEntity, "position_timeout"},
		{"shift window", &domain.ShiftWindowError{ShiftStart: 480, ShiftEnd: 1200, GraceMinutes: 15}, http.StatusUnprocessableEntity, "outside_shift_window"},
		{"storage", fmt.Errorf("insert: %w", e.ErrInternal), http.StatusInternalServerError, "internal"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			f.sess.EXPECT().ClockIn(gomock.Any()).Return(nil, tc.err).Times(1)

			rr := httptest.NewRecorder()
			f.h.ClockIn(rr, f.request(http.MethodPost, "/", ""))

			if rr.Code != tc.status {
				t.Fatalf("expected %d got %d body=%s", tc.status, rr.Code, rr.Body.String())
			}
			if got := decodeJSON[respond.ErrorBody](t, rr); got.Code != tc.code {
				t.Fatalf("code = %q, want %q", got.Code, tc.code)
			}
		})
	}
}

func TestClockOut_NotOnDuty(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.sess.EXPECT().ClockOut(gomock.Any()).Return(nil, e.ErrNotOnDuty).Times(1)

	rr := httptest.NewRecorder()
	f.h.ClockOut(rr, f.request(http.MethodPost, "/", ""))

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected %d got %d", http.StatusConflict, rr.Code)
	}
}

func TestHandlers_RequireIdentity(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	h := guard.NewHandler(newTestLogger(), mock_guard.NewMockSessions(ctrl), testfixtures.NewClock(time.Time{}))

	rr := httptest.NewRecorder()
	h.Status(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestReportPosition(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	past := f.clock.Now().Add(-10 * time.Second)

	f.sess.EXPECT().ReportPosition(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u domain.PositionUpdate) (domain.DutyStatus, error) {
			if u.Fix == nil || u.Fix.Point.Lat != 55.75 || !u.Fix.At.Equal(past) {
				t.Fatalf("unexpected update %+v", u.Fix)
			}
			return domain.DutyStatus{GuardID: f.guardID, State: domain.OffDuty, Position: u.Fix}, nil
		}).Times(1)

	body := fmt.Sprintf(`{"lat":55.75,"lng":37.61,"accuracy_m":5,"at":%q}`, past.Format(time.RFC3339Nano))
	rr := httptest.NewRecorder()
	middleware.Bind(f.h.ReportPosition).ServeHTTP(rr, f.request(http.MethodPost, "/api/v1/position", body))

	if rr.Code != http.StatusAccepted {
		t.Fatalf("expected %d got %d body=%s", http.StatusAccepted, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.DutyStatus](t, rr)
	if got.Position == nil || got.State != domain.OffDuty {
		t.Fatalf("unexpected status %+v", got)
	}
}

func TestReportPosition_FutureTimestampUsesReceiptTime(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	future := f.clock.Now().Add(time.Hour)

	f.sess.EXPECT().ReportPosition(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u domain.PositionUpdate) (domain.DutyStatus, error) {
			if !u.Fix.At.Equal(f.clock.Now()) {
				t.Fatalf("at = %v, want %v", u.Fix.At, f.clock.Now())
			}
			return domain.DutyStatus{}, nil
		}).Times(1)

	body := fmt.Sprintf(`{"lat":1,"lng":1,"at":%q}`, future.Format(time.RFC3339Nano))
	rr := httptest.NewRecorder()
	middleware.Bind(f.h.ReportPosition).ServeHTTP(rr, f.request(http.MethodPost, "/", body))

	if rr.Code != http.StatusAccepted {
		t.Fatalf("expected %d got %d body=%s", http.StatusAccepted, rr.Code, rr.Body.String())
	}
}

func TestReportPosition_InvalidCoordinates(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.sess.EXPECT().ReportPosition(gomock.Any(), gomock.Any()).Times(0)

	rr := httptest.NewRecorder()
	middleware.Bind(f.h.ReportPosition).ServeHTTP(rr, f.request(http.MethodPost, "/", `{"lat":123,"lng":0}`))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestReportPositionError(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.sess.EXPECT().ReportPosition(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u domain.PositionUpdate) (domain.DutyStatus, error) {
			if u.Err != e.ErrPositionPermission {
				t.Fatalf("err = %v", u.Err)
			}
			return domain.DutyStatus{PositionError: "position_permission_denied"}, nil
		}).Times(1)

	rr := httptest.NewRecorder()
	middleware.Bind(f.h.ReportPositionError).ServeHTTP(rr, f.request(http.MethodPost, "/", `{"reason":"permission_denied"}`))

	if rr.Code != http.StatusAccepted {
		t.Fatalf("expected %d got %d body=%s", http.StatusAccepted, rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	middleware.Bind(f.h.ReportPositionError).ServeHTTP(rr, f.request(http.MethodPost, "/", `{"reason":"bored"}`))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestTriggerAlert(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	alert := &domain.PanicAlert{ID: uuid.New(), GuardID: f.guardID, Kind: domain.AlertInactivity, Status: domain.AlertOpen}
	f.sess.EXPECT().TriggerAlert(gomock.Any(), domain.AlertInactivity, "no patrol").Return(alert, nil).Times(1)

	body := fmt.Sprintf(`{"kind":"inactivity","description":"no patrol","guard_id":%q}`, uuid.NewString())
	rr := httptest.NewRecorder()
	middleware.Bind(f.h.TriggerAlert).ServeHTTP(rr, f.request(http.MethodPost, "/api/v1/alerts", body))

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.PanicAlert](t, rr)
	if got.GuardID != f.guardID {
		t.Fatalf("alert must belong to the caller, got %s", got.GuardID)
	}
}

func TestHold(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	alert := &domain.PanicAlert{ID: uuid.New(), GuardID: f.guardID, Kind: domain.AlertManual}

	gomock.InOrder(
		f.sess.EXPECT().StartHold().Times(1),
		f.sess.EXPECT().HoldProgress().Return(0).Times(1),
		f.sess.EXPECT().HoldProgress().Return(40).Times(1),
		f.sess.EXPECT().EndHold(gomock.Any()).Return(true, alert, nil).Times(1),
	)

	rr := httptest.NewRecorder()
	f.h.HoldStart(rr, f.request(http.MethodPost, "/", ""))
	if rr.Code != http.StatusAccepted {
		t.Fatalf("start: %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	f.h.HoldProgress(rr, f.request(http.MethodGet, "/", ""))
	if got := decodeJSON[map[string]any](t, rr); got["progress"] != float64(40) {
		t.Fatalf("progress = %v", got["progress"])
	}

	rr = httptest.NewRecorder()
	f.h.HoldEnd(rr, f.request(http.MethodPost, "/", ""))
	if rr.Code != http.StatusCreated {
		t.Fatalf("end: %d body=%s", rr.Code, rr.Body.String())
	}
	got := decodeJSON[map[string]any](t, rr)
	if got["triggered"] != true {
		t.Fatalf("expected trigger, got %v", got)
	}
}

func TestHoldEnd_ShortPressAndNoHold(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	gomock.InOrder(
		f.sess.EXPECT().EndHold(gomock.Any()).Return(false, nil, nil).Times(1),
		f.sess.EXPECT().EndHold(gomock.Any()).Return(false, nil, e.ErrHoldNotActive).Times(1),
	)

	rr := httptest.NewRecorder()
	f.h.HoldEnd(rr, f.request(http.MethodPost, "/", ""))
	if rr.Code != http.StatusOK {
		t.Fatalf("short press: %d", rr.Code)
	}
	if got := decodeJSON[map[string]any](t, rr); got["triggered"] != false {
		t.Fatalf("unexpected %v", got)
	}

	rr = httptest.NewRecorder()
	f.h.HoldEnd(rr, f.request(http.MethodPost, "/", ""))
	if rr.Code != http.StatusConflict {
		t.Fatalf("no hold: %d", rr.Code)
	}
}

func TestHoldStream(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ch := make(chan int, 3)
	ch <- 10
	ch <- 50
	ch <- 100
	close(ch)
	f.sess.EXPECT().WatchHold(gomock.Any()).Return((<-chan int)(ch)).Times(1)

	rr := httptest.NewRecorder()
	f.h.HoldStream(rr, f.request(http.MethodGet, "/", ""))

	if ct := rr.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("content type %q", ct)
	}
	if !strings.Contains(rr.Body.String(), "data: 50\n\n") || !strings.Contains(rr.Body.String(), "data: 100\n\n") {
		t.Fatalf("unexpected stream %q", rr.Body.String())
	}
}

func TestEndSession(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	sessions := mock_guard.NewMockSessions(ctrl)
	h := guard.NewHandler(newTestLogger(), sessions, testfixtures.NewClock(time.Time{}))
	guardID := uuid.New()

	sessions.EXPECT().End(guardID).Return(true).Times(1)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req = req.WithContext(middleware.WithIdentity(req.Context(), middleware.Identity{UserID: guardID, Role: middleware.RoleGuard}))
	rr := httptest.NewRecorder()
	h.EndSession(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d", http.StatusNoContent, rr.Code)
	}
}
