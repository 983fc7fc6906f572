package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"guardDuty/pkg/e"
)

const schema = `
CREATE EXTENSION IF NOT EXISTS postgis;

CREATE TABLE IF NOT EXISTS geofence_zones (
	id         uuid PRIMARY KEY,
	name       text NOT NULL,
	center     geography(Point, 4326) NOT NULL,
	radius_m   double precision NOT NULL CHECK (radius_m > 0),
	created_at timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS guards (
	id         uuid PRIMARY KEY,
	name       text NOT NULL,
	zone_id    uuid REFERENCES geofence_zones (id),
	created_at timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS shift_definitions (
	code          text PRIMARY KEY,
	name          text NOT NULL,
	start_minute  integer NOT NULL CHECK (start_minute BETWEEN 0 AND 1439),
	end_minute    integer NOT NULL CHECK (end_minute BETWEEN 0 AND 1439),
	grace_minutes integer NOT NULL DEFAULT 0 CHECK (grace_minutes >= 0),
	night_shift   boolean NOT NULL DEFAULT false
);

CREATE TABLE IF NOT EXISTS shift_assignments (
	id             uuid PRIMARY KEY,
	guard_id       uuid NOT NULL REFERENCES guards (id),
	shift_code     text NOT NULL REFERENCES shift_definitions (code),
	effective_from date NOT NULL,
	effective_to   date,
	active         boolean NOT NULL DEFAULT true,
	created_at     timestamptz NOT NULL DEFAULT now(),
	CHECK (effective_to IS NULL OR effective_to >= effective_from)
);

CREATE UNIQUE INDEX IF NOT EXISTS shift_assignments_one_active
	ON shift_assignments (guard_id) WHERE active;

CREATE TABLE IF NOT EXISTS attendance (
	id                uuid PRIMARY KEY,
	guard_id          uuid NOT NULL REFERENCES guards (id),
	work_date         date NOT NULL,
	check_in_at       timestamptz NOT NULL,
	check_in_zone_id  uuid NOT NULL REFERENCES geofence_zones (id),
	check_out_at      timestamptz,
	check_out_zone_id uuid REFERENCES geofence_zones (id),
	total_hours       double precision,
	shift_validated   boolean NOT NULL DEFAULT false,
	UNIQUE (guard_id, work_date),
	CHECK (check_out_at IS NULL OR check_out_at > check_in_at)
);

CREATE INDEX IF NOT EXISTS attendance_open
	ON attendance (guard_id, work_date DESC) WHERE check_out_at IS NULL;

CREATE TABLE IF NOT EXISTS position_samples (
	id          uuid PRIMARY KEY,
	guard_id    uuid NOT NULL REFERENCES guards (id),
	point       geography(Point, 4326) NOT NULL,
	accuracy_m  double precision NOT NULL DEFAULT 0,
	captured_at timestamptz NOT NULL
);

CREATE INDEX IF NOT EXISTS position_samples_guard_time
	ON position_samples (guard_id, captured_at DESC);

CREATE TABLE IF NOT EXISTS panic_alerts (
	id               uuid PRIMARY KEY,
	guard_id         uuid NOT NULL REFERENCES guards (id),
	kind             text NOT NULL,
	point            geography(Point, 4326),
	zone_id          uuid REFERENCES geofence_zones (id),
	distance_m       double precision,
	description      text NOT NULL DEFAULT '',
	status           text NOT NULL DEFAULT 'open' CHECK (status IN ('open', 'resolved')),
	resolved_by      uuid,
	resolved_by_name text NOT NULL DEFAULT '',
	resolution_note  text NOT NULL DEFAULT '',
	resolved_at      timestamptz,
	created_at       timestamptz NOT NULL DEFAULT now(),
	CHECK ((status = 'open') = (resolved_at IS NULL))
);

CREATE INDEX IF NOT EXISTS panic_alerts_open
	ON panic_alerts (created_at DESC) WHERE status = 'open';
`

// Migrate creates the schema. It is idempotent.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	const op = "postgres.Migrate"

	if _, err := pool.Exec(ctx, schema); err != nil {
		return e.WrapError(ctx, op, err)
	}
	return nil
}
