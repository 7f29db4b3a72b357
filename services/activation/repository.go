package activation

import (
	"context"
	"time"

	"github.com/piresc/kurir/internal/pkg/models"
)

// ActivationRepo defines data access for regions, the activation queue and
// driver admission
type ActivationRepo interface {
	GetRegion(ctx context.Context, regionID string) (*models.Region, error)
	Occupancy(ctx context.Context, regionID string) (int, error)
	QueueLength(ctx context.Context, regionID string) (int, error)

	InsertEntry(ctx context.Context, entry *models.ActivationQueueEntry) error
	GetPosition(ctx context.Context, applicantID string) (*models.QueuePosition, error)
	ListRanked(ctx context.Context, regionID string, limit, offset int) ([]models.ActivationQueueEntry, error)
	UpdatePriority(ctx context.Context, applicantID, regionID string, score int64) error
	DeleteEntry(ctx context.Context, applicantID, regionID string) error

	// Promote removes the entry and activates the applicant in one
	// transaction, rechecking capacity under the region row lock
	Promote(ctx context.Context, entry models.ActivationQueueEntry, now time.Time) (*models.DriverProfile, error)
	DeactivateDriver(ctx context.Context, driverID string, now time.Time) (*models.DriverProfile, error)
}
