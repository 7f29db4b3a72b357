package batching

import (
	"context"

	"github.com/piresc/kurir/internal/pkg/models"
)

// BatchingUC defines folding ready orders onto busy drivers
type BatchingUC interface {
	// TryAbsorb returns nil when no busy driver can take the order
	TryAbsorb(ctx context.Context, order *models.Order) (*models.Absorption, error)
	// RemoveOrder drops a delivered or canceled order and re-sequences the rest
	RemoveOrder(ctx context.Context, driverID, orderID string) (*models.BatchedDelivery, error)
	// Recompute re-sequences the driver's remaining stops from their position
	Recompute(ctx context.Context, driverID string) (*models.BatchedDelivery, error)
	GetBatch(ctx context.Context, driverID string) (*models.BatchedDelivery, error)
}
