package duty_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"guardDuty/internal/config"
	"guardDuty/internal/domain"
	"guardDuty/internal/duty"
	mock_duty "guardDuty/internal/duty/mocks"
	"guardDuty/internal/position"
	"guardDuty/internal/testfixtures"
	"guardDuty/pkg/e"
)

var (
	zoneCenter = domain.GeoPoint{Lat: 55.7558, Lng: 37.6173}
	// roughly 1.1 km north of the zone center
	farAway = domain.GeoPoint{Lat: 55.7658, Lng: 37.6173}
)

type fixture struct {
	clk        *testfixtures.Clock
	feed       *position.Feed
	guards     *mock_duty.MockGuardRepository
	zones      *mock_duty.MockZoneResolver
	shifts     *mock_duty.MockShiftRepository
	attendance *mock_duty.MockAttendanceRepository
	positions  *mock_duty.MockPositionRepository
	alerts     *mock_duty.MockAlertCreator
	mgr        *duty.Manager
	guard      domain.Guard
	zone       domain.GeofenceZone
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	clk := testfixtures.NewClock(time.Time{})
	logger := newTestLogger()

	zone := domain.GeofenceZone{ID: uuid.New(), Name: "North Gate", Center: zoneCenter, RadiusM: 50}
	zoneID := zone.ID
	f := &fixture{
		clk:        clk,
		feed:       position.NewFeed(16, logger),
		guards:     mock_duty.NewMockGuardRepository(ctrl),
		zones:      mock_duty.NewMockZoneResolver(ctrl),
		shifts:     mock_duty.NewMockShiftRepository(ctrl),
		attendance: mock_duty.NewMockAttendanceRepository(ctrl),
		positions:  mock_duty.NewMockPositionRepository(ctrl),
		alerts:     mock_duty.NewMockAlertCreator(ctrl),
		guard:      domain.Guard{ID: uuid.New(), Name: "Ivan", ZoneID: &zoneID},
		zone:       zone,
	}

	f.mgr = duty.NewManager(duty.Deps{
		Guards:     f.guards,
		Zones:      f.zones,
		Shifts:     f.shifts,
		Attendance: f.attendance,
		Positions:  f.positions,
		Alerts:     f.alerts,
		Provider:   f.feed,
		Publisher:  f.feed,
		Clock:      clk,
		Config: config.DutyConfig{
			Location:          time.UTC,
			WarningAfter:      2 * time.Minute,
			EscalateAfter:     5 * time.Minute,
			HeartbeatInterval: 5 * time.Minute,
			HoldDuration:      3 * time.Second,
			HoldSampleEvery:   50 * time.Millisecond,
			PositionMaxAge:    2 * time.Minute,
			AlertTimeout:      time.Second,
		},
		Logger: logger,
	})
	t.Cleanup(f.mgr.Shutdown)

	f.positions.EXPECT().SavePosition(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return f
}

// open expects the lookups of a fresh session with no open attendance.
func (f *fixture) open(t *testing.T) *duty.Session {
	t.Helper()

	f.guards.EXPECT().GetGuard(gomock.Any(), f.guard.ID).Return(&f.guard, nil)
	if f.guard.ZoneID != nil {
		f.zones.EXPECT().GetZone(gomock.Any(), f.zone.ID).Return(&f.zone, nil)
	}
	f.attendance.EXPECT().GetOpenAttendance(gomock.Any(), f.guard.ID).Return(nil, e.ErrNotFound)

	s, err := f.mgr.Session(context.Background(), f.guard.ID)
	if err != nil {
		t.Fatalf("open session: %v", err)
	}
	return s
}

func (f *fixture) report(t *testing.T, s *duty.Session, p domain.GeoPoint) domain.DutyStatus {
	t.Helper()
	st, err := s.ReportPosition(context.Background(), domain.PositionUpdate{
		Fix: &domain.PositionFix{Point: p, AccuracyM: 5, At: f.clk.Now()},
	})
	if err != nil {
		t.Fatalf("report position: %v", err)
	}
	return st
}

func dayShift() *domain.ActiveShift {
	return &domain.ActiveShift{
		Assignment: domain.ShiftAssignment{ID: uuid.New(), ShiftCode: "DAY", Active: true},
		Shift: domain.ShiftDefinition{
			Code:         "DAY",
			Name:         "Day",
			Start:        domain.MustClockTime("08:00"),
			End:          domain.MustClockTime("20:00"),
			GraceMinutes: 15,
		},
	}
}

// expectClockIn sets up a successful attendance creation under shift.
func (f *fixture) expectClockIn(shift *domain.ActiveShift) {
	f.shifts.EXPECT().GetActiveShift(gomock.Any(), f.guard.ID, gomock.Any()).Return(shift, nil)
	f.attendance.EXPECT().GetAttendance(gomock.Any(), f.guard.ID, gomock.Any()).Return(nil, e.ErrNotFound)
	f.attendance.EXPECT().CreateAttendance(gomock.Any(), gomock.Any()).Return(nil)
}

func (f *fixture) clockIn(t *testing.T, s *duty.Session) *domain.ClockInResult {
	t.Helper()
	f.report(t, s, zoneCenter)
	f.expectClockIn(dayShift())
	res, err := s.ClockIn(context.Background())
	if err != nil {
		t.Fatalf("clock in: %v", err)
	}
	return res
}

func TestSession_ClockInAndOut(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	s := f.open(t)

	res := f.clockIn(t, s)
	if !res.ShiftValidated || res.DistanceM > 1 {
		t.Fatalf("unexpected clock-in result: %+v", res)
	}
	if !res.Record.WorkDate.Equal(time.Date(2025, 12, 23, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("work date = %s", res.Record.WorkDate)
	}

	st, err := s.Status(context.Background())
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if st.State != domain.OnDuty || st.Compliance != domain.Compliant || st.InRange == nil || !*st.InRange {
		t.Fatalf("unexpected status: %+v", st)
	}

	if _, err := s.ClockIn(context.Background()); !errors.Is(err, e.ErrAlreadyOnDuty) {
		t.Fatalf("expected ErrAlreadyOnDuty, got %v", err)
	}

	f.clk.Advance(90 * time.Minute)

	var closed *domain.AttendanceRecord
	f.attendance.EXPECT().CloseAttendance(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *domain.AttendanceRecord) error {
			closed = rec
			return nil
		})

	rec, err := s.ClockOut(context.Background())
	if err != nil {
		t.Fatalf("clock out: %v", err)
	}
	if closed == nil || closed.ID != res.Record.ID {
		t.Fatalf("closed the wrong record: %+v", closed)
	}
	if rec.TotalHours == nil || *rec.TotalHours != 1.5 {
		t.Fatalf("total hours = %v", rec.TotalHours)
	}
	if !rec.CheckOutAt.After(rec.CheckInAt) {
		t.Fatalf("check-out must follow check-in")
	}
	if f.clk.Pending() != 0 {
		t.Fatalf("timers leaked after clock-out: %d", f.clk.Pending())
	}
	if _, err := s.ClockOut(context.Background()); !errors.Is(err, e.ErrNotOnDuty) {
		t.Fatalf("expected ErrNotOnDuty, got %v", err)
	}
}

func TestSession_BriefExcursionRaisesNothing(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	s := f.open(t)
	f.clockIn(t, s)

	st := f.report(t, s, farAway)
	if st.Compliance != domain.Breaching || st.BreachStart == nil {
		t.Fatalf("expected breach, got %+v", st)
	}

	f.clk.Advance(time.Minute)
	st = f.report(t, s, zoneCenter)
	if st.Compliance != domain.Compliant {
		t.Fatalf("expected compliance after return, got %s", st.Compliance)
	}

	// any alert call would fail the mock controller
	f.clk.Advance(6 * time.Minute)

	if adv := s.Advisories(); len(adv) != 0 {
		t.Fatalf("unexpected advisories: %+v", adv)
	}
}

func TestSession_SustainedBreachEscalatesOncePerBreach(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	s := f.open(t)
	f.clockIn(t, s)

	var (
		mu     sync.Mutex
		params []domain.CreateAlertParams
	)
	f.alerts.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p domain.CreateAlertParams) (*domain.PanicAlert, error) {
			mu.Lock()
			params = append(params, p)
			mu.Unlock()
			return &domain.PanicAlert{ID: uuid.New(), GuardID: p.GuardID, Kind: p.Kind}, nil
		}).
		Times(2)

	f.report(t, s, farAway)
	f.clk.Advance(2 * time.Minute)
	if adv := s.Advisories(); len(adv) != 1 {
		t.Fatalf("expected one warning, got %+v", adv)
	}

	f.clk.Advance(3 * time.Minute)
	f.clk.Advance(20 * time.Minute)

	mu.Lock()
	if len(params) != 1 {
		mu.Unlock()
		t.Fatalf("expected one alert for the first breach, got %d", len(params))
	}
	first := params[0]
	mu.Unlock()

	if first.Kind != domain.AlertGeofenceBreach || first.GuardID != f.guard.ID {
		t.Fatalf("unexpected alert params: %+v", first)
	}
	if first.Point == nil || *first.Point != farAway || first.ZoneID == nil || *first.ZoneID != f.zone.ID {
		t.Fatalf("alert must carry the last known position and zone: %+v", first)
	}
	if first.DistanceM == nil || *first.DistanceM < 1000 {
		t.Fatalf("unexpected distance: %v", first.DistanceM)
	}

	f.report(t, s, zoneCenter)
	f.clk.Advance(time.Minute)
	f.report(t, s, farAway)
	f.clk.Advance(5 * time.Minute)

	mu.Lock()
	defer mu.Unlock()
	if len(params) != 2 {
		t.Fatalf("expected a second alert for the second breach, got %d", len(params))
	}
}

func TestSession_EscalationFailureBecomesAdvisory(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	s := f.open(t)
	f.clockIn(t, s)

	f.alerts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down")).Times(1)

	f.report(t, s, farAway)
	f.clk.Advance(10 * time.Minute)

	if adv := s.Advisories(); len(adv) != 2 {
		t.Fatalf("expected warning and failure advisories, got %+v", adv)
	}
}

func TestSession_ClockOutWhileOutOfRange(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	s := f.open(t)
	f.clockIn(t, s)

	f.report(t, s, farAway)
	f.clk.Advance(time.Minute)

	f.attendance.EXPECT().CloseAttendance(gomock.Any(), gomock.Any()).Return(nil)
	if _, err := s.ClockOut(context.Background()); err != nil {
		t.Fatalf("clock out must not depend on geofence: %v", err)
	}

	f.clk.Advance(10 * time.Minute)
	if f.clk.Pending() != 0 {
		t.Fatalf("timers leaked after clock-out: %d", f.clk.Pending())
	}
}

func TestSession_ClockInWithoutShiftIsUnvalidated(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	s := f.open(t)
	f.report(t, s, zoneCenter)
	f.expectClockIn(nil)

	res, err := s.ClockIn(context.Background())
	if err != nil {
		t.Fatalf("clock in: %v", err)
	}
	if res.ShiftValidated || res.Record.ShiftValidated {
		t.Fatalf("expected unvalidated attendance")
	}
}

func TestSession_ClockInPreconditions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		prepare func(t *testing.T, f *fixture, s *duty.Session)
		noZone  bool
		want    error
	}{
		{
			name:    "no position yet",
			prepare: func(t *testing.T, f *fixture, s *duty.Session) {},
			want:    e.ErrPositionUnavailable,
		},
		{
			name: "permission denied",
			prepare: func(t *testing.T, f *fixture, s *duty.Session) {
				if _, err := s.ReportPosition(context.Background(), domain.PositionUpdate{Err: e.ErrPositionPermission}); err != nil {
					t.Fatalf("report: %v", err)
				}
			},
			want: e.ErrPositionPermission,
		},
		{
			name: "stale fix",
			prepare: func(t *testing.T, f *fixture, s *duty.Session) {
				f.report(t, s, zoneCenter)
				f.clk.Advance(3 * time.Minute)
			},
			want: e.ErrPositionTimeout,
		},
		{
			name: "out of range",
			prepare: func(t *testing.T, f *fixture, s *duty.Session) {
				f.report(t, s, farAway)
			},
			want: e.ErrOutOfRange,
		},
		{
			name: "outside shift window",
			prepare: func(t *testing.T, f *fixture, s *duty.Session) {
				f.report(t, s, zoneCenter)
				night := dayShift()
				night.Shift.Start = domain.MustClockTime("20:00")
				night.Shift.End = domain.MustClockTime("08:00")
				f.shifts.EXPECT().GetActiveShift(gomock.Any(), f.guard.ID, gomock.Any()).Return(night, nil)
			},
			want: e.ErrOutsideShiftWindow,
		},
		{
			name: "already completed today",
			prepare: func(t *testing.T, f *fixture, s *duty.Session) {
				f.report(t, s, zoneCenter)
				out := f.clk.Now().Add(-time.Hour)
				f.shifts.EXPECT().GetActiveShift(gomock.Any(), f.guard.ID, gomock.Any()).Return(dayShift(), nil)
				f.attendance.EXPECT().GetAttendance(gomock.Any(), f.guard.ID, gomock.Any()).
					Return(&domain.AttendanceRecord{ID: uuid.New(), CheckOutAt: &out}, nil)
			},
			want: e.ErrShiftCompleted,
		},
		{
			name:    "no assigned zone",
			prepare: func(t *testing.T, f *fixture, s *duty.Session) {},
			noZone:  true,
			want:    e.ErrNoAssignedZone,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			if tc.noZone {
				f.guard.ZoneID = nil
			}
			s := f.open(t)
			tc.prepare(t, f, s)

			_, err := s.ClockIn(context.Background())
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if s.State() != domain.OffDuty {
				t.Fatalf("failed clock-in must leave the guard off duty")
			}
		})
	}
}

func TestSession_PanicHold(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	s := f.open(t)
	f.report(t, s, zoneCenter)

	s.StartHold()
	f.clk.Advance(2900 * time.Millisecond)
	triggered, alert, err := s.EndHold(context.Background())
	if err != nil || triggered || alert != nil {
		t.Fatalf("short hold must not trigger: %v %v %v", triggered, alert, err)
	}

	f.alerts.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p domain.CreateAlertParams) (*domain.PanicAlert, error) {
			if p.Kind != domain.AlertManual || p.Point == nil || *p.Point != zoneCenter {
				t.Errorf("unexpected alert params: %+v", p)
			}
			return &domain.PanicAlert{ID: uuid.New(), Kind: p.Kind}, nil
		})

	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	progress := s.WatchHold(watchCtx)
	s.StartHold()
	f.clk.Advance(3100 * time.Millisecond)

	var last int
	for len(progress) > 0 {
		last = <-progress
	}
	if last != 100 {
		t.Fatalf("expected progress to reach 100, got %d", last)
	}

	triggered, alert, err = s.EndHold(context.Background())
	if err != nil || !triggered || alert == nil {
		t.Fatalf("full hold must trigger: %v %v %v", triggered, alert, err)
	}

	if _, _, err := s.EndHold(context.Background()); !errors.Is(err, e.ErrHoldNotActive) {
		t.Fatalf("expected ErrHoldNotActive, got %v", err)
	}
}

func TestManager_RestoresOpenAttendance(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	checkIn := f.clk.Now().Add(-2 * time.Hour)
	open := &domain.AttendanceRecord{
		ID:            uuid.New(),
		GuardID:       f.guard.ID,
		WorkDate:      time.Date(2025, 12, 23, 0, 0, 0, 0, time.UTC),
		CheckInAt:     checkIn,
		CheckInZoneID: f.zone.ID,
	}

	f.guards.EXPECT().GetGuard(gomock.Any(), f.guard.ID).Return(&f.guard, nil)
	f.zones.EXPECT().GetZone(gomock.Any(), f.zone.ID).Return(&f.zone, nil)
	f.attendance.EXPECT().GetOpenAttendance(gomock.Any(), f.guard.ID).Return(open, nil)

	s, err := f.mgr.Session(context.Background(), f.guard.ID)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if s.State() != domain.OnDuty {
		t.Fatalf("expected restored duty")
	}

	again, err := f.mgr.Session(context.Background(), f.guard.ID)
	if err != nil || again != s {
		t.Fatalf("expected the same session, got %v", err)
	}

	if !f.mgr.End(f.guard.ID) {
		t.Fatalf("expected session to end")
	}
	if f.clk.Pending() != 0 || f.mgr.Len() != 0 {
		t.Fatalf("session end leaked timers=%d sessions=%d", f.clk.Pending(), f.mgr.Len())
	}
}

func TestManager_IgnoresStaleOpenAttendance(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.guards.EXPECT().GetGuard(gomock.Any(), f.guard.ID).Return(&f.guard, nil)
	f.zones.EXPECT().GetZone(gomock.Any(), f.zone.ID).Return(&f.zone, nil)
	f.attendance.EXPECT().GetOpenAttendance(gomock.Any(), f.guard.ID).Return(&domain.AttendanceRecord{
		ID:        uuid.New(),
		GuardID:   f.guard.ID,
		WorkDate:  time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC),
		CheckInAt: time.Date(2025, 12, 20, 8, 0, 0, 0, time.UTC),
	}, nil)

	s, err := f.mgr.Session(context.Background(), f.guard.ID)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if s.State() != domain.OffDuty {
		t.Fatalf("an open record older than yesterday must not put the guard on duty")
	}
}

func TestManager_RestoreOutsideZoneStartsBreach(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.feed.Publish(f.guard.ID, domain.PositionUpdate{
		Fix: &domain.PositionFix{Point: farAway, AccuracyM: 5, At: f.clk.Now()},
	})

	f.guards.EXPECT().GetGuard(gomock.Any(), f.guard.ID).Return(&f.guard, nil)
	f.zones.EXPECT().GetZone(gomock.Any(), f.zone.ID).Return(&f.zone, nil)
	f.attendance.EXPECT().GetOpenAttendance(gomock.Any(), f.guard.ID).Return(&domain.AttendanceRecord{
		ID:            uuid.New(),
		GuardID:       f.guard.ID,
		WorkDate:      time.Date(2025, 12, 23, 0, 0, 0, 0, time.UTC),
		CheckInAt:     f.clk.Now().Add(-time.Hour),
		CheckInZoneID: f.zone.ID,
	}, nil)

	s, err := f.mgr.Session(context.Background(), f.guard.ID)
	if err != nil {
		t.Fatalf("session: %v", err)
	}

	st, err := s.Status(context.Background())
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if st.State != domain.OnDuty || st.Compliance != domain.Breaching || st.BreachStart == nil {
		t.Fatalf("expected restored session to be breaching, got %+v", st)
	}
}

func TestSession_MoveWithSameTimestampStartsBreach(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	s := f.open(t)
	f.clockIn(t, s)

	// same clock reading as the clock-in fix, different point
	st := f.report(t, s, farAway)
	if st.Compliance != domain.Breaching || st.InRange == nil || *st.InRange {
		t.Fatalf("expected breach from a moved fix, got %+v", st)
	}
}
