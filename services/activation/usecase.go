package activation

import (
	"context"

	"github.com/piresc/kurir/internal/pkg/models"
)

// ActivationUC defines region capacity and activation queue business logic
type ActivationUC interface {
	Enqueue(ctx context.Context, applicantID, regionID string, priorityScore int64) (*models.ActivationQueueEntry, error)
	Position(ctx context.Context, applicantID string) (*models.QueuePosition, error)
	UpdatePriority(ctx context.Context, applicantID, regionID string, priorityScore int64) error
	Withdraw(ctx context.Context, applicantID, regionID string) error

	Occupancy(ctx context.Context, regionID string) (int, error)
	HasCapacity(ctx context.Context, regionID string) (bool, error)
	Capacity(ctx context.Context, regionID string) (*models.RegionCapacity, error)
	TryPromote(ctx context.Context, regionID string) (*models.PromotionResult, error)

	DeactivateDriver(ctx context.Context, driverID string) (*models.DriverProfile, error)
}
