package models

import "time"

// DriverStatus is the admission state of a driver
type DriverStatus string

const (
	DriverStatusActive    DriverStatus = "active"
	DriverStatusBusy      DriverStatus = "busy"
	DriverStatusSuspended DriverStatus = "suspended"
	DriverStatusInactive  DriverStatus = "inactive"
)

// OccupiesSlot reports whether the status counts against a region's quota
func (s DriverStatus) OccupiesSlot() bool {
	return s == DriverStatusActive || s == DriverStatusBusy
}

// DriverProfile is the dispatch view of a driver
type DriverProfile struct {
	ID              string       `json:"id"`
	RegionID        string       `json:"region_id"`
	IsAvailable     bool         `json:"is_available"`
	Status          DriverStatus `json:"status"`
	Position        Position     `json:"position"`
	TotalDeliveries int          `json:"total_deliveries"`
	ActivatedAt     *time.Time   `json:"activated_at,omitempty"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// CanReceiveOffer reports whether the driver is a fresh-offer candidate
func (d *DriverProfile) CanReceiveOffer() bool {
	return d.IsAvailable && d.Status == DriverStatusActive
}

// Candidate is one driver yielded by a candidate search
type Candidate struct {
	Driver     DriverProfile `json:"driver"`
	DistanceKm float64       `json:"distance_km"`
}

// DriverProfileRow is the flat driver_profiles row
type DriverProfileRow struct {
	ID              string       `db:"id"`
	RegionID        string       `db:"region_id"`
	IsAvailable     bool         `db:"is_available"`
	Status          DriverStatus `db:"status"`
	Latitude        float64      `db:"latitude"`
	Longitude       float64      `db:"longitude"`
	Heading         float64      `db:"heading"`
	Speed           float64      `db:"speed"`
	PositionAt      *time.Time   `db:"position_at"`
	TotalDeliveries int          `db:"total_deliveries"`
	ActivatedAt     *time.Time   `db:"activated_at"`
	UpdatedAt       time.Time    `db:"updated_at"`
}

// ToProfile converts the row to a DriverProfile
func (r DriverProfileRow) ToProfile() DriverProfile {
	p := DriverProfile{
		ID:              r.ID,
		RegionID:        r.RegionID,
		IsAvailable:     r.IsAvailable,
		Status:          r.Status,
		TotalDeliveries: r.TotalDeliveries,
		ActivatedAt:     r.ActivatedAt,
		UpdatedAt:       r.UpdatedAt,
		Position: Position{
			Location: Location{Latitude: r.Latitude, Longitude: r.Longitude},
			Heading:  r.Heading,
			Speed:    r.Speed,
		},
	}
	if r.PositionAt != nil {
		p.Position.Timestamp = *r.PositionAt
	}
	return p
}
