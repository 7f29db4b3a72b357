package availability

import (
	"context"

	"github.com/piresc/kurir/internal/pkg/models"
)

// CandidateIterator yields drivers nearest first. Next returns nil once the
// search is exhausted.
type CandidateIterator interface {
	Next(ctx context.Context) (*models.Candidate, error)
}

// AvailabilityUC defines the registry of which drivers can take work right now
type AvailabilityUC interface {
	GetDriver(ctx context.Context, driverID string) (*models.DriverProfile, error)
	SetOnline(ctx context.Context, driverID string, position *models.Position) (*models.DriverProfile, error)
	SetOffline(ctx context.Context, driverID string) (*models.DriverProfile, error)
	UpdatePosition(ctx context.Context, driverID string, position models.Position) (*models.DriverProfile, error)

	// CandidatesNear searches online idle drivers for a fresh offer
	CandidatesNear(ctx context.Context, location models.Location, regionID string, excluding map[string]struct{}) (CandidateIterator, error)
	// BusyNear lists drivers already on a delivery, for batching
	BusyNear(ctx context.Context, location models.Location, regionID string, radiusKm float64) ([]models.Candidate, error)
	Evict(ctx context.Context, driverID, regionID string) error
}
