package models

import (
	"strings"
	"time"
)

// RegionStatus gates activations and dispatch in a region
type RegionStatus string

const (
	RegionStatusOpen   RegionStatus = "open"
	RegionStatusPaused RegionStatus = "paused"
	RegionStatusClosed RegionStatus = "closed"
)

// Region is a service area with a bounded number of active drivers
type Region struct {
	ID          string       `json:"id" db:"id"`
	Name        string       `json:"name" db:"name"`
	GeoPrefix   string       `json:"geo_prefix" db:"geo_prefix"`
	ActiveQuota int          `json:"active_quota" db:"active_quota"`
	Status      RegionStatus `json:"status" db:"status"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" db:"updated_at"`
}

// HasCapacity reports whether one more driver may be activated given the
// current occupancy. Only open regions accept activations.
func (r *Region) HasCapacity(occupancy int) bool {
	return r.Status == RegionStatusOpen && occupancy < r.ActiveQuota
}

// Dispatches reports whether orders in the region may still be offered
func (r *Region) Dispatches() bool {
	return r.Status != RegionStatusClosed
}

// Covers reports whether a geohash falls inside the region's prefix
func (r *Region) Covers(hash string) bool {
	return r.GeoPrefix != "" && strings.HasPrefix(hash, r.GeoPrefix)
}

// RegionCapacity is a point-in-time view of a region's admission state
type RegionCapacity struct {
	Region    Region `json:"region"`
	Occupancy int    `json:"occupancy"`
	Available int    `json:"available"`
	Queued    int    `json:"queued"`
}

// NewRegionCapacity derives the free slot count from occupancy
func NewRegionCapacity(region Region, occupancy, queued int) RegionCapacity {
	available := 0
	if region.Status == RegionStatusOpen && occupancy < region.ActiveQuota {
		available = region.ActiveQuota - occupancy
	}
	return RegionCapacity{
		Region:    region,
		Occupancy: occupancy,
		Available: available,
		Queued:    queued,
	}
}
