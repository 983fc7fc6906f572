package geofence_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guardDuty/internal/domain"
	"guardDuty/internal/geofence"
)

// eastOf returns a point on the equator meters east of the origin.
func eastOf(meters float64) domain.GeoPoint {
	return domain.GeoPoint{Lat: 0, Lng: meters / geofence.EarthRadiusM * 180 / math.Pi}
}

func TestDistance_Symmetric(t *testing.T) {
	t.Parallel()

	pairs := [][2]domain.GeoPoint{
		{{Lat: 55.75, Lng: 37.61}, {Lat: 59.93, Lng: 30.33}},
		{{Lat: -33.86, Lng: 151.21}, {Lat: 51.5, Lng: -0.12}},
		{{Lat: 0, Lng: 179.9}, {Lat: 0, Lng: -179.9}},
		{{Lat: 89.9, Lng: 0}, {Lat: -89.9, Lng: 90}},
	}
	for _, p := range pairs {
		assert.InDelta(t, geofence.Distance(p[0], p[1]), geofence.Distance(p[1], p[0]), 1e-6)
	}
}

func TestDistance_SamePointIsZero(t *testing.T) {
	t.Parallel()

	for _, p := range []domain.GeoPoint{{Lat: 0, Lng: 0}, {Lat: 55.75, Lng: 37.61}, {Lat: -90, Lng: 180}} {
		assert.Equal(t, 0.0, geofence.Distance(p, p))
	}
}

func TestDistance_KnownValue(t *testing.T) {
	t.Parallel()

	// 0.00045 degrees of longitude on the equator is ~50 m.
	d := geofence.Distance(domain.GeoPoint{}, domain.GeoPoint{Lat: 0, Lng: 0.00045})
	assert.InDelta(t, 50.04, d, 0.01)
}

func TestWithinRange_Boundary(t *testing.T) {
	t.Parallel()

	zone := domain.GeofenceZone{Center: domain.GeoPoint{}, RadiusM: 50}

	cases := []struct {
		name   string
		meters float64
		want   bool
	}{
		{"49m", 49, true},
		{"51m", 51, false},
		{"0.00045deg", 50.04, false},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			res := geofence.Evaluate(eastOf(c.meters), zone)
			require.InDelta(t, c.meters, res.DistanceM, 1e-6)
			assert.Equal(t, c.want, res.InRange)
		})
	}
}

func TestWithinRange_AtRadius(t *testing.T) {
	t.Parallel()

	p := eastOf(50)
	radius := geofence.Distance(p, domain.GeoPoint{})
	require.InDelta(t, 50, radius, 1e-6)

	res := geofence.Evaluate(p, domain.GeofenceZone{Center: domain.GeoPoint{}, RadiusM: radius})
	assert.True(t, res.InRange)
}

func TestWithinRange_Exact(t *testing.T) {
	t.Parallel()

	assert.True(t, geofence.WithinRange(50, 50))
	assert.False(t, geofence.WithinRange(50.0000001, 50))
}

func TestValidPoint(t *testing.T) {
	t.Parallel()

	assert.True(t, geofence.ValidPoint(domain.GeoPoint{Lat: 90, Lng: -180}))
	assert.False(t, geofence.ValidPoint(domain.GeoPoint{Lat: math.NaN(), Lng: 0}))
	assert.False(t, geofence.ValidPoint(domain.GeoPoint{Lat: 0, Lng: math.Inf(1)}))
	assert.False(t, geofence.ValidPoint(domain.GeoPoint{Lat: 90.1, Lng: 0}))
	assert.False(t, geofence.ValidPoint(domain.GeoPoint{Lat: 0, Lng: -180.5}))
}
