package usecase

import (
	"time"

	"github.com/piresc/kurir/internal/pkg/models"
	"github.com/piresc/kurir/services/availability"
)

const defaultCandidatePageSize = 10

// AvailabilityUC implements the availability use case interface
type AvailabilityUC struct {
	cfg              *models.Config
	availabilityRepo availability.AvailabilityRepo
	geoIndex         availability.GeoIndex
	now              func() time.Time
}

// NewAvailabilityUC creates a new availability use case
func NewAvailabilityUC(
	cfg *models.Config,
	availabilityRepo availability.AvailabilityRepo,
	geoIndex availability.GeoIndex,
) *AvailabilityUC {
	return &AvailabilityUC{
		cfg:              cfg,
		availabilityRepo: availabilityRepo,
		geoIndex:         geoIndex,
		now:              time.Now,
	}
}
