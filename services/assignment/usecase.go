package assignment

import (
	"context"

	"github.com/piresc/kurir/internal/pkg/models"
)

// AssignmentUC defines the per-order offer state machine
type AssignmentUC interface {
	RegisterOrder(ctx context.Context, event models.OrderReadyEvent) (*models.Order, error)
	GetOrder(ctx context.Context, orderID string) (*models.Order, error)

	// Dispatch offers the order to the nearest untried candidate, escalating
	// it as unassignable when none is left
	Dispatch(ctx context.Context, orderID string) (*models.OrderAssignment, error)
	Accept(ctx context.Context, assignmentID, driverID string) (*models.AcceptResult, error)
	Reject(ctx context.Context, assignmentID, driverID string) (*models.OfferResolution, error)
	Expire(ctx context.Context, assignmentID string) (*models.OfferResolution, error)
	DueOffers(ctx context.Context, limit int) ([]string, error)
	// WithdrawDriverOffers pulls the offers a driver holds once they can no
	// longer take them and re-offers those orders
	WithdrawDriverOffers(ctx context.Context, driverID, reason string) ([]models.OrderAssignment, error)

	Cancel(ctx context.Context, orderID, reason string) (*models.CancelResult, error)
	MarkPickedUp(ctx context.Context, orderID, driverID string) (*models.Order, error)
	CompleteDelivery(ctx context.Context, orderID, driverID string) (*models.CompletionResult, error)
}
