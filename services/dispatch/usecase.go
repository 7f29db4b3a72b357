package dispatch

import (
	"context"

	"github.com/piresc/kurir/internal/pkg/models"
)

// DispatchUC routes inbound events to the admission, availability,
// assignment and batching components in the order each event needs
type DispatchUC interface {
	HandleOrderReady(ctx context.Context, event models.OrderReadyEvent) (*models.DispatchOutcome, error)
	HandleOrderCanceled(ctx context.Context, event models.OrderCanceledEvent) (*models.CancelResult, error)
	HandleOrderPickedUp(ctx context.Context, event models.OrderPickedUpEvent) (*models.Order, error)
	HandleDeliveryCompleted(ctx context.Context, event models.DeliveryCompletedEvent) (*models.CompletionResult, error)

	HandleOfferResponse(ctx context.Context, event models.OfferResponseEvent) error
	AcceptOffer(ctx context.Context, assignmentID, driverID string) (*models.AcceptResult, error)
	RejectOffer(ctx context.Context, assignmentID, driverID string) (*models.OfferResolution, error)
	HandleOfferExpired(ctx context.Context, assignmentID string) error
	// SweepExpiredOffers expires every due offer and returns how many it handled
	SweepExpiredOffers(ctx context.Context) (int, error)

	HandleDriverStatus(ctx context.Context, event models.DriverStatusEvent) (*models.DriverProfile, error)
	HandleDriverLocation(ctx context.Context, update models.LocationUpdate) (*models.DriverProfile, error)
	HandleDriverDeactivated(ctx context.Context, driverID string) (*models.PromotionResult, error)

	HandleApplicantReady(ctx context.Context, event models.ApplicantReadyEvent) (*models.ActivationQueueEntry, error)
	HandlePriorityChanged(ctx context.Context, event models.PriorityChangedEvent) error
	WithdrawApplicant(ctx context.Context, applicantID, regionID string) error
	QueuePosition(ctx context.Context, applicantID string) (*models.QueuePosition, error)
	RegionCapacity(ctx context.Context, regionID string) (*models.RegionCapacity, error)
	PromoteRegion(ctx context.Context, regionID string) (*models.PromotionResult, error)
}
