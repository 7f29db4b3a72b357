package dispatch

import (
	"context"

	"github.com/piresc/kurir/internal/pkg/models"
)

// DispatchGW publishes the outcomes downstream collaborators act on
type DispatchGW interface {
	PublishBatchUpdated(ctx context.Context, event models.BatchUpdatedEvent) error
	PublishAssignmentAccepted(ctx context.Context, event models.AssignmentAcceptedEvent) error
	PublishDeliveryCompleted(ctx context.Context, event models.DeliveryCompletedIntent) error
	PublishDeliveryCanceled(ctx context.Context, event models.DeliveryCanceledIntent) error
	PublishDriverActivated(ctx context.Context, event models.DriverActivatedEvent) error
}
