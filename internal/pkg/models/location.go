package models

import "time"

// Location is a point on the map
type Location struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Timestamp time.Time `json:"timestamp,omitempty" db:"-"`
}

// Position is a driver's last reported location with motion data
type Position struct {
	Location
	Heading float64 `json:"heading" db:"heading"`
	Speed   float64 `json:"speed" db:"speed"`
}

// LocationUpdate is a driver location report from the driver client
type LocationUpdate struct {
	DriverID string   `json:"driver_id"`
	Position Position `json:"position"`
}

// NearbyDriver is a geo index hit
type NearbyDriver struct {
	DriverID   string   `json:"driver_id"`
	Location   Location `json:"location"`
	DistanceKm float64  `json:"distance_km"`
}
