package duty

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"guardDuty/internal/clock"
	"guardDuty/internal/config"
	"guardDuty/internal/domain"
	"guardDuty/internal/geofence"
	"guardDuty/internal/position"
	"guardDuty/internal/shiftwindow"
	"guardDuty/pkg/e"
)

const (
	maxAdvisories = 20
	// how long a freshly started stream may take to deliver the replayed fix
	streamSettle = 250 * time.Millisecond
	reportWait   = 2 * time.Second
)

// Publisher accepts position updates on behalf of a guard.
type Publisher interface {
	Publish(guardID uuid.UUID, u domain.PositionUpdate)
}

// Deps are the collaborators shared by all sessions.
type Deps struct {
	Guards     GuardRepository
	Zones      ZoneResolver
	Shifts     ShiftRepository
	Attendance AttendanceRepository
	Positions  PositionRepository
	Alerts     AlertCreator
	Provider   position.Provider
	Publisher  Publisher
	Clock      clock.Clock
	Config     config.DutyConfig
	Logger     *slog.Logger
}

// Session is the duty context of one guard. All timers and the position
// subscription of the guard are owned here and die with it.
type Session struct {
	guard  domain.Guard
	zone   *domain.GeofenceZone
	deps   Deps
	loc    *time.Location
	logger *slog.Logger

	stream    *position.Stream
	monitor   *Monitor
	heartbeat *Heartbeat
	gesture   *Gesture

	mu     sync.Mutex
	state  domain.DutyState
	record *domain.AttendanceRecord
	closed bool

	evalMu   sync.RWMutex
	lastEval *geofence.Result

	advMu      sync.Mutex
	advisories []domain.Advisory

	watchMu  sync.Mutex
	watchers map[chan int]struct{}
}

func newSession(guard domain.Guard, zone *domain.GeofenceZone, deps Deps) *Session {
	loc := deps.Config.Location
	if loc == nil {
		loc = time.UTC
	}

	s := &Session{
		guard:    guard,
		zone:     zone,
		deps:     deps,
		loc:      loc,
		logger:   deps.Logger.With(slog.String("guard_id", guard.ID.String())),
		state:    domain.OffDuty,
		watchers: make(map[chan int]struct{}),
	}

	s.stream = position.NewStream(deps.Provider, guard.ID, deps.Logger)
	s.monitor = NewMonitor(deps.Clock, deps.Config.WarningAfter, deps.Config.EscalateAfter, s.onWarning, s.onEscalate)
	s.heartbeat = NewHeartbeat(deps.Clock, deps.Config.HeartbeatInterval, guard.ID, s.latestFix, deps.Positions, s.logger)
	s.gesture = NewGesture(deps.Clock, deps.Config.HoldDuration, deps.Config.HoldSampleEvery, s.broadcastProgress)

	return s
}

func (s *Session) GuardID() uuid.UUID { return s.guard.ID }

func (s *Session) State() domain.DutyState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// restore resumes an open attendance record of today or yesterday; an older
// open record does not make the guard on duty today.
func (s *Session) restore(ctx context.Context) error {
	rec, err := s.deps.Attendance.GetOpenAttendance(ctx, s.guard.ID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil
		}
		return err
	}

	today := workDate(s.deps.Clock.Now().In(s.loc))
	if rec.WorkDate.Before(today.AddDate(0, 0, -1)) {
		s.logger.Warn("ignoring stale open attendance", slog.Time("work_date", rec.WorkDate))
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.record = rec
	s.state = domain.OnDuty
	if err := s.startStreamLocked(ctx); err != nil {
		return err
	}
	inRange := true
	if res := s.eval(); res != nil {
		inRange = res.InRange
	}
	s.monitor.Start(inRange)
	s.heartbeat.Start()

	s.logger.Info("duty session restored", slog.String("attendance_id", rec.ID.String()))
	return nil
}

// ClockIn moves the guard on duty when they are inside their zone and their
// shift admits them now.
func (s *Session) ClockIn(ctx context.Context) (*domain.ClockInResult, error) {
	const op = "duty.Session.ClockIn"

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == domain.OnDuty {
		return nil, e.ErrAlreadyOnDuty
	}
	if s.zone == nil {
		return nil, e.ErrNoAssignedZone
	}
	if err := s.startStreamLocked(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	now := s.deps.Clock.Now()
	fix, err := s.stream.Current(now, s.deps.Config.PositionMaxAge)
	if err != nil {
		return nil, err
	}

	res := geofence.Evaluate(fix.Point, *s.zone)
	s.setEval(res)
	if !res.InRange {
		return nil, fmt.Errorf("%.0f m from %s, radius %.0f m: %w", res.DistanceM, s.zone.Name, s.zone.RadiusM, e.ErrOutOfRange)
	}

	local := now.In(s.loc)
	day := workDate(local)

	active, err := s.deps.Shifts.GetActiveShift(ctx, s.guard.ID, day)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	var shift *domain.ShiftDefinition
	if active != nil {
		shift = &active.Shift
	}
	decision := shiftwindow.AdmissionAllowed(shift, local)
	if !decision.Allowed {
		return nil, decision.Err()
	}

	existing, err := s.deps.Attendance.GetAttendance(ctx, s.guard.ID, day)
	switch {
	case err == nil && existing.Open():
		return nil, e.ErrAlreadyOnDuty
	case err == nil:
		return nil, e.ErrShiftCompleted
	case !errors.Is(err, e.ErrNotFound):
		return nil, e.Wrap(op, err)
	}

	rec := &domain.AttendanceRecord{
		ID:             uuid.New(),
		GuardID:        s.guard.ID,
		WorkDate:       day,
		CheckInAt:      now.UTC().Truncate(time.Microsecond),
		CheckInZoneID:  s.zone.ID,
		ShiftValidated: decision.Validated,
	}
	if err := s.deps.Attendance.CreateAttendance(ctx, rec); err != nil {
		if errors.Is(err, e.ErrUniqueViolation) {
			return nil, e.ErrShiftCompleted
		}
		return nil, e.Wrap(op, err)
	}

	s.record = rec
	s.state = domain.OnDuty
	s.monitor.Start(res.InRange)
	s.heartbeat.Start()

	if decision.Validated {
		s.logger.Info("clocked in",
			slog.String("attendance_id", rec.ID.String()),
			slog.Float64("distance_m", res.DistanceM),
		)
	} else {
		s.logger.Warn("clocked in without shift validation",
			slog.String("attendance_id", rec.ID.String()),
			slog.Float64("distance_m", res.DistanceM),
		)
	}

	return &domain.ClockInResult{
		Record:         rec,
		DistanceM:      res.DistanceM,
		ShiftValidated: decision.Validated,
	}, nil
}

// ClockOut ends the duty regardless of geofence compliance.
func (s *Session) ClockOut(ctx context.Context) (*domain.AttendanceRecord, error) {
	const op = "duty.Session.ClockOut"

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.OnDuty || s.record == nil {
		return nil, e.ErrNotOnDuty
	}

	now := s.deps.Clock.Now().UTC().Truncate(time.Microsecond)
	if !now.After(s.record.CheckInAt) {
		now = s.record.CheckInAt.Add(time.Microsecond)
	}

	zoneID := s.record.CheckInZoneID
	if s.zone != nil {
		zoneID = s.zone.ID
	}
	hours := math.Round(now.Sub(s.record.CheckInAt).Hours()*100) / 100

	closed := *s.record
	closed.CheckOutAt = &now
	closed.CheckOutZoneID = &zoneID
	closed.TotalHours = &hours

	if err := s.deps.Attendance.CloseAttendance(ctx, &closed); err != nil {
		return nil, e.Wrap(op, err)
	}

	s.record = &closed
	s.state = domain.OffDuty
	s.stopDutyLocked()

	s.logger.Info("clocked out",
		slog.String("attendance_id", closed.ID.String()),
		slog.Float64("total_hours", hours),
	)
	return &closed, nil
}

// Status reports the live duty picture, starting position observation if it
// is not running.
func (s *Session) Status(ctx context.Context) (domain.DutyStatus, error) {
	s.mu.Lock()
	if err := s.startStreamLocked(ctx); err != nil {
		s.mu.Unlock()
		return domain.DutyStatus{}, err
	}
	st := domain.DutyStatus{
		GuardID:      s.guard.ID,
		State:        s.state,
		Zone:         s.zone,
		HoldProgress: s.gesture.Progress(),
	}
	if s.record != nil {
		rec := *s.record
		st.Attendance = &rec
	}
	s.mu.Unlock()

	fix, perr := s.stream.Latest()
	st.Position = fix
	if perr != nil {
		st.PositionError = e.Code(perr)
	}
	if eval := s.eval(); eval != nil {
		inRange, dist := eval.InRange, eval.DistanceM
		st.InRange = &inRange
		st.DistanceM = &dist
	}
	if st.State == domain.OnDuty {
		st.Compliance, st.BreachStart = s.monitor.State()
	}
	st.Advisories = s.Advisories()

	return st, nil
}

// ReportPosition publishes a device update for this guard and waits until the
// session has processed it, so a following clock-in sees it.
func (s *Session) ReportPosition(ctx context.Context, u domain.PositionUpdate) (domain.DutyStatus, error) {
	s.mu.Lock()
	err := s.startStreamLocked(ctx)
	s.mu.Unlock()
	if err != nil {
		return domain.DutyStatus{}, err
	}

	before := s.stream.Seq()
	s.deps.Publisher.Publish(s.guard.ID, u)

	waitCtx, cancel := context.WithTimeout(ctx, reportWait)
	defer cancel()
	if err := s.stream.Await(waitCtx, before); err != nil {
		s.logger.Warn("position report not processed in time", slog.Any("error", err))
	}

	return s.Status(ctx)
}

// TriggerAlert raises an alert for this guard with the best known position.
func (s *Session) TriggerAlert(ctx context.Context, kind domain.AlertKind, description string) (*domain.PanicAlert, error) {
	params := domain.CreateAlertParams{
		GuardID:     s.guard.ID,
		Kind:        kind,
		Description: description,
	}
	if fix := s.latestFix(); fix != nil {
		p := fix.Point
		params.Point = &p
	} else if s.zone != nil {
		p := s.zone.Center
		params.Point = &p
	}
	if s.zone != nil {
		id := s.zone.ID
		params.ZoneID = &id
		if eval := s.eval(); eval != nil {
			d := eval.DistanceM
			params.DistanceM = &d
		}
	}

	alert, err := s.deps.Alerts.Create(ctx, params)
	if err != nil {
		return nil, err
	}
	s.logger.Warn("alert raised", slog.String("alert_id", alert.ID.String()), slog.String("kind", string(kind)))
	return alert, nil
}

func (s *Session) StartHold() {
	s.gesture.StartHold()
}

// EndHold finishes the panic hold and raises a manual alert when it triggered.
func (s *Session) EndHold(ctx context.Context) (bool, *domain.PanicAlert, error) {
	triggered, err := s.gesture.EndHold()
	if err != nil || !triggered {
		return false, nil, err
	}
	alert, err := s.TriggerAlert(ctx, domain.AlertManual, "panic button held")
	if err != nil {
		return true, nil, err
	}
	return true, alert, nil
}

func (s *Session) CancelHold() {
	s.gesture.CancelHold()
}

func (s *Session) HoldProgress() int {
	return s.gesture.Progress()
}

// WatchHold streams sampled hold progress until ctx is done.
func (s *Session) WatchHold(ctx context.Context) <-chan int {
	ch := make(chan int, 8)

	s.watchMu.Lock()
	s.watchers[ch] = struct{}{}
	s.watchMu.Unlock()

	go func() {
		<-ctx.Done()
		s.watchMu.Lock()
		delete(s.watchers, ch)
		close(ch)
		s.watchMu.Unlock()
	}()
	return ch
}

// Advisories returns the recent guard-facing warnings, oldest first.
func (s *Session) Advisories() []domain.Advisory {
	s.advMu.Lock()
	defer s.advMu.Unlock()
	out := make([]domain.Advisory, len(s.advisories))
	copy(out, s.advisories)
	return out
}

// Close ends the session without clocking out.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.stopDutyLocked()
	s.logger.Info("duty session closed")
}

func (s *Session) startStreamLocked(ctx context.Context) error {
	if s.closed {
		return fmt.Errorf("session closed: %w", e.ErrConflict)
	}
	if s.stream.Running() {
		return nil
	}

	before := s.stream.Seq()
	if err := s.stream.Start(ctx, s.onPosition); err != nil {
		return err
	}

	settleCtx, cancel := context.WithTimeout(ctx, streamSettle)
	defer cancel()
	_ = s.stream.Await(settleCtx, before)
	return nil
}

func (s *Session) stopDutyLocked() {
	s.monitor.Stop()
	s.heartbeat.Stop()
	s.gesture.CancelHold()
	s.stream.Stop()
}

// onPosition runs on the stream goroutine, in arrival order.
func (s *Session) onPosition(fix domain.PositionFix) {
	if s.zone == nil {
		return
	}
	res := geofence.Evaluate(fix.Point, *s.zone)
	s.setEval(res)
	s.monitor.Observe(res.InRange)
}

func (s *Session) onWarning(breachStart time.Time) {
	msg := fmt.Sprintf("You left %s at %s. Return to your post or an alert will be raised.",
		s.zoneName(), breachStart.In(s.loc).Format("15:04"))
	s.advise(msg)
	s.logger.Warn("geofence breach warning", slog.Time("breach_start", breachStart))
}

// onEscalate raises the breach alert once. Failures are not retried; the next
// breach re-arms on its own.
func (s *Session) onEscalate(breachStart time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), s.alertTimeout())
	defer cancel()

	params := domain.CreateAlertParams{
		GuardID: s.guard.ID,
		Kind:    domain.AlertGeofenceBreach,
		Description: fmt.Sprintf("Outside %s since %s",
			s.zoneName(), breachStart.In(s.loc).Format("15:04:05")),
	}
	// last known position, even if the provider has failed since
	if fix := s.latestFix(); fix != nil {
		p := fix.Point
		params.Point = &p
	}
	if s.zone != nil {
		id := s.zone.ID
		params.ZoneID = &id
	}
	if eval := s.eval(); eval != nil {
		d := eval.DistanceM
		params.DistanceM = &d
	}

	alert, err := s.deps.Alerts.Create(ctx, params)
	if err != nil {
		s.logger.Error("breach escalation failed", slog.Any("error", err))
		s.advise("Could not notify supervisors about your geofence breach. Contact them directly.")
		return
	}
	s.logger.Warn("geofence breach escalated",
		slog.String("alert_id", alert.ID.String()),
		slog.Time("breach_start", breachStart),
	)
}

func (s *Session) alertTimeout() time.Duration {
	if s.deps.Config.AlertTimeout > 0 {
		return s.deps.Config.AlertTimeout
	}
	return 10 * time.Second
}

func (s *Session) advise(msg string) {
	s.advMu.Lock()
	defer s.advMu.Unlock()
	s.advisories = append(s.advisories, domain.Advisory{Message: msg, At: s.deps.Clock.Now()})
	if len(s.advisories) > maxAdvisories {
		s.advisories = s.advisories[len(s.advisories)-maxAdvisories:]
	}
}

func (s *Session) broadcastProgress(p int) {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()
	for ch := range s.watchers {
		select {
		case ch <- p:
			continue
		default:
		}
		// slow watcher: drop the oldest sample, keep the newest
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- p:
		default:
		}
	}
}

func (s *Session) latestFix() *domain.PositionFix {
	fix, _ := s.stream.Latest()
	return fix
}

func (s *Session) setEval(res geofence.Result) {
	s.evalMu.Lock()
	s.lastEval = &res
	s.evalMu.Unlock()
}

func (s *Session) eval() *geofence.Result {
	s.evalMu.RLock()
	defer s.evalMu.RUnlock()
	if s.lastEval == nil {
		return nil
	}
	res := *s.lastEval
	return &res
}

func (s *Session) zoneName() string {
	if s.zone == nil {
		return "your zone"
	}
	return s.zone.Name
}

// workDate is the calendar day of t in its own location, as a UTC date.
func workDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
