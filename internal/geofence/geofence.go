// Package geofence evaluates positions against circular zones.
package geofence

import (
	"math"

	"guardDuty/internal/domain"
)

// EarthRadiusM is the mean Earth radius used by Distance.
const EarthRadiusM = 6_371_000.0

// Distance returns the great-circle distance between a and b in meters.
func Distance(a, b domain.GeoPoint) float64 {
	dLat := deg2rad(b.Lat - a.Lat)
	dLon := deg2rad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusM * c
}

func WithinRange(distanceM, radiusM float64) bool {
	return distanceM <= radiusM
}

// ValidPoint rejects NaN, infinities and out-of-domain coordinates.
func ValidPoint(p domain.GeoPoint) bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) || math.IsInf(p.Lat, 0) || math.IsInf(p.Lng, 0) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// Result is the outcome of checking one position against one zone.
type Result struct {
	DistanceM float64
	InRange   bool
}

func Evaluate(p domain.GeoPoint, zone domain.GeofenceZone) Result {
	d := Distance(p, zone.Center)
	return Result{DistanceM: d, InRange: WithinRange(d, zone.RadiusM)}
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
