package postgres

import (
	"context"

	"guardDuty/internal/storage"
)

var _ storage.Store = (*Postgres)(nil)

func (p *Postgres) Zones() storage.ZoneRepository            { return p.zones }
func (p *Postgres) Guards() storage.GuardRepository          { return p.guards }
func (p *Postgres) Shifts() storage.ShiftRepository          { return p.shifts }
func (p *Postgres) Attendance() storage.AttendanceRepository { return p.attendance }
func (p *Postgres) Positions() storage.PositionRepository    { return p.positions }
func (p *Postgres) Alerts() storage.AlertRepository          { return p.alerts }
func (p *Postgres) Ping(ctx context.Context) error           { return p.Pool.Ping(ctx) }
func (p *Postgres) Close()                                   { p.Pool.Close() }
