package batching

import (
	"context"
	"time"

	"github.com/piresc/kurir/internal/pkg/models"
)

// BatchingRepo defines data access for batched runs
type BatchingRepo interface {
	// GetDriverLoad returns the driver with their assigned or picked up orders
	// and open batch, if any
	GetDriverLoad(ctx context.Context, driverID string) (*models.DriverLoad, error)

	// CommitBatch folds a new order into a driver's run in one transaction
	CommitBatch(ctx context.Context, commit models.BatchCommit, now time.Time) error

	// SaveBatch replaces a batch's sequence, route and order rows, provided
	// the driver still carries exactly expectedLoad
	SaveBatch(ctx context.Context, batch *models.BatchedDelivery, expectedLoad []string) error
}
