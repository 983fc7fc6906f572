//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"guardDuty/internal/domain"
	"guardDuty/pkg/e"
)

var (
	testPool *pgxpool.Pool
	testPG   *Postgres
	tc       testcontainers.Container
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgis/postgis:16-3.4-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	// twice: the schema must be re-runnable
	for i := 0; i < 2; i++ {
		if err := Migrate(ctx, testPool); err != nil {
			fmt.Println("Migrate:", err)
			testPool.Close()
			_ = tc.Terminate(ctx)
			os.Exit(1)
		}
	}

	testPG = New(testPool, slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError})))

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `
		TRUNCATE TABLE panic_alerts, position_samples, attendance, shift_assignments,
			shift_definitions, guards, geofence_zones
	`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

// seedGuard creates a zone and a guard assigned to it.
func seedGuard(t *testing.T) (*domain.Guard, *domain.GeofenceZone) {
	t.Helper()
	ctx := context.Background()

	zone := &domain.GeofenceZone{Name: "North Gate", Center: domain.GeoPoint{Lat: 55.7558, Lng: 37.6173}, RadiusM: 50}
	if err := testPG.Zones().CreateZone(ctx, zone); err != nil {
		t.Fatalf("CreateZone: %v", err)
	}
	guard := &domain.Guard{Name: "Ivan", ZoneID: &zone.ID}
	if err := testPG.Guards().CreateGuard(ctx, guard); err != nil {
		t.Fatalf("CreateGuard: %v", err)
	}
	return guard, zone
}

func TestZoneRepo_RoundTripsCenter(t *testing.T) {
	truncateAll(t)
	_, zone := seedGuard(t)

	got, err := testPG.Zones().GetZone(context.Background(), zone.ID)
	if err != nil {
		t.Fatalf("GetZone: %v", err)
	}
	if got.Center != zone.Center || got.RadiusM != 50 || got.Name != "North Gate" {
		t.Fatalf("zone mismatch: %+v", got)
	}

	if _, err := testPG.Zones().GetZone(context.Background(), uuid.New()); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestShiftRepo_ActivationKeepsOneActive(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	guard, _ := seedGuard(t)

	for _, s := range []*domain.ShiftDefinition{
		{Code: "DAY", Name: "Day", Start: domain.MustClockTime("08:00"), End: domain.MustClockTime("20:00"), GraceMinutes: 15},
		{Code: "NIGHT", Name: "Night", Start: domain.MustClockTime("20:00"), End: domain.MustClockTime("08:00"), NightShift: true},
	} {
		if err := testPG.Shifts().CreateShift(ctx, s); err != nil {
			t.Fatalf("CreateShift: %v", err)
		}
	}

	day := time.Date(2025, 12, 23, 0, 0, 0, 0, time.UTC)
	if got, err := testPG.Shifts().GetActiveShift(ctx, guard.ID, day); err != nil || got != nil {
		t.Fatalf("expected no active shift, got %+v %v", got, err)
	}

	for _, code := range []string{"DAY", "NIGHT"} {
		a := &domain.ShiftAssignment{GuardID: guard.ID, ShiftCode: code, EffectiveFrom: day.AddDate(0, 0, -1)}
		if err := testPG.Shifts().ActivateAssignment(ctx, a); err != nil {
			t.Fatalf("ActivateAssignment %s: %v", code, err)
		}
	}

	var active int
	if err := testPool.QueryRow(ctx, `SELECT count(*) FROM shift_assignments WHERE guard_id = $1 AND active`, guard.ID).Scan(&active); err != nil {
		t.Fatalf("count: %v", err)
	}
	if active != 1 {
		t.Fatalf("expected one active assignment, got %d", active)
	}

	got, err := testPG.Shifts().GetActiveShift(ctx, guard.ID, day)
	if err != nil || got == nil {
		t.Fatalf("GetActiveShift: %+v %v", got, err)
	}
	if got.Shift.Code != "NIGHT" || !got.Shift.Wraps() || got.Shift.Start != domain.MustClockTime("20:00") {
		t.Fatalf("unexpected active shift: %+v", got.Shift)
	}

	if got, err := testPG.Shifts().GetActiveShift(ctx, guard.ID, day.AddDate(0, 0, -5)); err != nil || got != nil {
		t.Fatalf("assignment must not apply before effective_from: %+v %v", got, err)
	}
}

func TestAttendanceRepo_Lifecycle(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	guard, zone := seedGuard(t)
	repo := testPG.Attendance()

	checkIn := time.Date(2025, 12, 23, 8, 0, 0, 0, time.UTC)
	rec := &domain.AttendanceRecord{
		GuardID:        guard.ID,
		WorkDate:       time.Date(2025, 12, 23, 0, 0, 0, 0, time.UTC),
		CheckInAt:      checkIn,
		CheckInZoneID:  zone.ID,
		ShiftValidated: true,
	}
	if err := repo.CreateAttendance(ctx, rec); err != nil {
		t.Fatalf("CreateAttendance: %v", err)
	}

	dup := *rec
	dup.ID = uuid.Nil
	if err := repo.CreateAttendance(ctx, &dup); !errors.Is(err, e.ErrUniqueViolation) {
		t.Fatalf("expected unique violation for the same work date, got %v", err)
	}

	open, err := repo.GetOpenAttendance(ctx, guard.ID)
	if err != nil || open.ID != rec.ID || !open.Open() {
		t.Fatalf("GetOpenAttendance: %+v %v", open, err)
	}

	bad := *open
	early := checkIn
	bad.CheckOutAt = &early
	bad.CheckOutZoneID = &zone.ID
	if err := repo.CloseAttendance(ctx, &bad); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("check-out at check-in must violate the check constraint, got %v", err)
	}

	out := checkIn.Add(90 * time.Minute)
	hours := 1.5
	closed := *open
	closed.CheckOutAt, closed.CheckOutZoneID, closed.TotalHours = &out, &zone.ID, &hours
	if err := repo.CloseAttendance(ctx, &closed); err != nil {
		t.Fatalf("CloseAttendance: %v", err)
	}
	if err := repo.CloseAttendance(ctx, &closed); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("closing twice must report not found, got %v", err)
	}

	got, err := repo.GetAttendance(ctx, guard.ID, rec.WorkDate)
	if err != nil {
		t.Fatalf("GetAttendance: %v", err)
	}
	if got.Open() || got.TotalHours == nil || *got.TotalHours != 1.5 || !got.CheckOutAt.Equal(out) {
		t.Fatalf("unexpected closed record: %+v", got)
	}
	if _, err := repo.GetOpenAttendance(ctx, guard.ID); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected no open record, got %v", err)
	}
}

func TestPositionRepo_SaveAndList(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	guard, zone := seedGuard(t)

	base := time.Date(2025, 12, 23, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		s := &domain.PositionSample{GuardID: guard.ID, Point: zone.Center, AccuracyM: 5, CapturedAt: base.Add(time.Duration(i) * 5 * time.Minute)}
		if err := testPG.Positions().SavePosition(ctx, s); err != nil {
			t.Fatalf("SavePosition: %v", err)
		}
	}

	got, err := testPG.Positions().ListPositions(ctx, guard.ID, base.Add(time.Minute), 10)
	if err != nil {
		t.Fatalf("ListPositions: %v", err)
	}
	if len(got) != 2 || got[0].CapturedAt.Before(got[1].CapturedAt) || got[0].Point != zone.Center {
		t.Fatalf("unexpected samples: %+v", got)
	}

	invalid := &domain.PositionSample{GuardID: guard.ID, Point: domain.GeoPoint{Lat: 91}}
	if err := testPG.Positions().SavePosition(ctx, invalid); !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("expected invalid coordinates, got %v", err)
	}
}

func TestAlertRepo_ConcurrentResolveSucceedsOnce(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	guard, zone := seedGuard(t)

	dist := 120.5
	alert := &domain.PanicAlert{
		GuardID:     guard.ID,
		Kind:        domain.AlertGeofenceBreach,
		Point:       &domain.GeoPoint{Lat: 55.7568, Lng: 37.6173},
		ZoneID:      &zone.ID,
		DistanceM:   &dist,
		Description: "outside",
	}
	if err := testPG.Alerts().CreateAlert(ctx, alert); err != nil {
		t.Fatalf("CreateAlert: %v", err)
	}
	manual := &domain.PanicAlert{GuardID: guard.ID, Kind: domain.AlertManual}
	if err := testPG.Alerts().CreateAlert(ctx, manual); err != nil {
		t.Fatalf("CreateAlert without point: %v", err)
	}
	manualView, err := testPG.Alerts().GetAlertView(ctx, manual.ID)
	if err != nil {
		t.Fatalf("GetAlertView without zone: %v", err)
	}
	if manualView.ZoneName != "North Gate" {
		t.Fatalf("expected assigned zone name, got %q", manualView.ZoneName)
	}

	open, err := testPG.Alerts().ListOpenAlerts(ctx)
	if err != nil || len(open) != 2 {
		t.Fatalf("ListOpenAlerts: %d %v", len(open), err)
	}

	const resolvers = 8
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		fresh  int
		repeat int
	)
	for i := 0; i < resolvers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, already, err := testPG.Alerts().ResolveAlert(ctx, domain.ResolveAlertParams{
				AlertID:      alert.ID,
				ResolverID:   uuid.New(),
				ResolverName: fmt.Sprintf("supervisor-%d", i),
				Note:         "handled",
				At:           time.Now().UTC(),
			})
			if err != nil {
				t.Errorf("ResolveAlert: %v", err)
				return
			}
			mu.Lock()
			if already {
				repeat++
			} else {
				fresh++
			}
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	if fresh != 1 || repeat != resolvers-1 {
		t.Fatalf("expected exactly one transition, fresh=%d repeat=%d", fresh, repeat)
	}

	view, err := testPG.Alerts().GetAlertView(ctx, alert.ID)
	if err != nil {
		t.Fatalf("GetAlertView: %v", err)
	}
	if view.Status != domain.AlertResolved || view.ResolverName == "" || view.GuardName != "Ivan" || view.ZoneName != "North Gate" {
		t.Fatalf("unexpected view: %+v", view)
	}
	if view.Point == nil || *view.Point != *alert.Point {
		t.Fatalf("point mismatch: %+v", view.Point)
	}

	if _, _, err := testPG.Alerts().ResolveAlert(ctx, domain.ResolveAlertParams{AlertID: uuid.New(), At: time.Now()}); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
