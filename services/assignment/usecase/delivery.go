package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/kurir/internal/pkg/logger"
	"github.com/piresc/kurir/internal/pkg/metrics"
	"github.com/piresc/kurir/internal/pkg/models"
)

// Cancel stops dispatching an order. A live offer is withdrawn from its
// driver; an accepted assignment is canceled and the driver freed when it was
// their last order.
func (uc *AssignmentUC) Cancel(ctx context.Context, orderID, reason string) (*models.CancelResult, error) {
	if orderID == "" {
		return nil, fmt.Errorf("%w: order id is required", models.ErrInvalidInput)
	}

	now := uc.now()
	result, err := uc.assignmentRepo.Cancel(ctx, orderID, now)
	if err != nil {
		return nil, err
	}

	if result.Withdrawn != nil {
		uc.withdrawn(ctx, *result.Withdrawn, withdrawnOrderCanceled, now)
	}
	if result.Canceled != nil {
		uc.metrics.OfferResolved(metrics.OutcomeCanceled, now.Sub(result.Canceled.OfferedAt))
	}

	logger.InfoCtx(ctx, "Order canceled",
		logger.OrderID(orderID),
		logger.String("reason", reason),
		logger.Bool("offer_withdrawn", result.Withdrawn != nil),
		logger.Bool("assignment_canceled", result.Canceled != nil))
	return result, nil
}

// MarkPickedUp records the assignee collecting the order
func (uc *AssignmentUC) MarkPickedUp(ctx context.Context, orderID, driverID string) (*models.Order, error) {
	order, err := uc.assignmentRepo.MarkPickedUp(ctx, orderID, driverID, uc.now())
	if err != nil {
		return nil, err
	}
	logger.InfoCtx(ctx, "Order picked up",
		logger.OrderID(orderID),
		logger.DriverID(driverID))
	return order, nil
}

// CompleteDelivery closes the order and its assignment
func (uc *AssignmentUC) CompleteDelivery(ctx context.Context, orderID, driverID string) (*models.CompletionResult, error) {
	result, err := uc.assignmentRepo.Complete(ctx, orderID, driverID, uc.now())
	if err != nil {
		return nil, err
	}
	logger.InfoCtx(ctx, "Delivery completed",
		logger.OrderID(orderID),
		logger.DriverID(driverID),
		logger.Bool("driver_released", result.DriverReleased))
	return result, nil
}
