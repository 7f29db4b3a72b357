package availability

import (
	"context"
	"time"

	"github.com/piresc/kurir/internal/pkg/models"
)

// AvailabilityRepo defines data access for the authoritative driver state
type AvailabilityRepo interface {
	GetDriver(ctx context.Context, driverID string) (*models.DriverProfile, error)
	GetDrivers(ctx context.Context, driverIDs []string) (map[string]models.DriverProfile, error)
	ListOnline(ctx context.Context, regionID string, status models.DriverStatus) ([]models.DriverProfile, error)

	// SetAvailability flips is_available only while the driver is active
	SetAvailability(ctx context.Context, driverID string, online bool, now time.Time) (*models.DriverProfile, error)
	UpdatePosition(ctx context.Context, driverID string, position models.Position, now time.Time) (*models.DriverProfile, error)
}

// GeoIndex defines the per-region index of online drivers
type GeoIndex interface {
	Add(ctx context.Context, regionID, driverID string, location models.Location) error
	Remove(ctx context.Context, regionID, driverID string) error
	Nearby(ctx context.Context, regionID string, location models.Location, radiusKm float64, limit int) ([]models.NearbyDriver, error)
}
