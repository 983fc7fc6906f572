package domain

import (
	"time"

	"github.com/google/uuid"
)

type GeoPoint struct {
	Lat float64 `json:"lat" validate:"lat"` // -90..90
	Lng float64 `json:"lng" validate:"lng"` // -180..180
}

type GeofenceZone struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Center    GeoPoint  `json:"center"`
	RadiusM   float64   `json:"radius_m"`
	CreatedAt time.Time `json:"created_at"`
}

// Guard is the field worker identity the duty engine acts for.
type Guard struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	ZoneID    *uuid.UUID `json:"zone_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
