package usecase

import (
	"context"
	"errors"

	"github.com/piresc/kurir/internal/pkg/logger"
	"github.com/piresc/kurir/internal/pkg/models"
)

// HandleOrderReady registers a ready order, tries to fold it onto a busy
// driver's run and otherwise offers it to the nearest idle driver. A
// redelivered event for an order already past pending is a no-op.
func (uc *DispatchUC) HandleOrderReady(ctx context.Context, event models.OrderReadyEvent) (*models.DispatchOutcome, error) {
	order, err := uc.assignmentUC.RegisterOrder(ctx, event)
	if err != nil {
		return nil, err
	}

	outcome := &models.DispatchOutcome{Order: *order}
	if order.Status != models.OrderStatusPending || order.DispatchState != models.DispatchStatePending {
		logger.DebugCtx(ctx, "Order already in dispatch",
			logger.OrderID(order.ID),
			logger.String("dispatch_state", string(order.DispatchState)))
		return outcome, nil
	}

	absorbed, err := uc.batchingUC.TryAbsorb(ctx, order)
	switch {
	case errors.Is(err, models.ErrOrderNotDispatchable):
		logger.InfoCtx(ctx, "Order taken while batching", logger.OrderID(order.ID))
		return outcome, nil
	case err != nil:
		logger.WarnCtx(ctx, "Batching failed, offering order fresh",
			logger.OrderID(order.ID),
			logger.Err(err))
	case absorbed != nil:
		outcome.Order = absorbed.Order
		outcome.Batch = &absorbed.Batch
		uc.publishAccepted(ctx, absorbed.Assignment, true)
		uc.publishBatch(ctx, &absorbed.Batch)
		return outcome, nil
	}

	offer, err := uc.assignmentUC.Dispatch(ctx, order.ID)
	switch {
	case err == nil:
		outcome.Offer = offer
		outcome.Order.DispatchState = models.DispatchStateOffering
	case errors.Is(err, models.ErrNoCandidatesAvailable):
		outcome.Unassignable = true
		outcome.Order.DispatchState = models.DispatchStateUnassignable
	case errors.Is(err, models.ErrOfferOutstanding), errors.Is(err, models.ErrOrderNotDispatchable):
		logger.DebugCtx(ctx, "Order offered concurrently", logger.OrderID(order.ID))
	default:
		return nil, err
	}
	return outcome, nil
}

// HandleOrderCanceled cancels an order at any stage. An accepted delivery
// gets a compensating intent and the driver's batch is re-sequenced.
func (uc *DispatchUC) HandleOrderCanceled(ctx context.Context, event models.OrderCanceledEvent) (*models.CancelResult, error) {
	result, err := uc.assignmentUC.Cancel(ctx, event.OrderID, event.Reason)
	if err != nil {
		return nil, err
	}
	if result.Canceled == nil {
		return result, nil
	}

	canceled := result.Canceled
	intent := models.DeliveryCanceledIntent{
		AssignmentID: canceled.ID,
		OrderID:      canceled.OrderID,
		DriverID:     canceled.DriverID,
		Payout:       canceled.Payout,
		Reason:       event.Reason,
		CanceledAt:   uc.now(),
	}
	if err := uc.dispatchGW.PublishDeliveryCanceled(ctx, intent); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish delivery canceled",
			logger.OrderID(canceled.OrderID),
			logger.Err(err))
	}

	uc.removeFromBatch(ctx, canceled.DriverID, canceled.OrderID)
	return result, nil
}

// HandleOrderPickedUp records the pickup and re-sequences the driver's batch
// so only the dropoff remains for that order
func (uc *DispatchUC) HandleOrderPickedUp(ctx context.Context, event models.OrderPickedUpEvent) (*models.Order, error) {
	order, err := uc.assignmentUC.MarkPickedUp(ctx, event.OrderID, event.DriverID)
	if err != nil {
		return nil, err
	}

	batch, err := uc.batchingUC.Recompute(ctx, event.DriverID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to recompute batch after pickup",
			logger.DriverID(event.DriverID),
			logger.Err(err))
		return order, nil
	}
	uc.publishBatch(ctx, batch)
	return order, nil
}

// HandleDeliveryCompleted closes the delivery, hands the payout intent on and
// re-sequences what is left of the driver's batch
func (uc *DispatchUC) HandleDeliveryCompleted(ctx context.Context, event models.DeliveryCompletedEvent) (*models.CompletionResult, error) {
	result, err := uc.assignmentUC.CompleteDelivery(ctx, event.OrderID, event.DriverID)
	if err != nil {
		return nil, err
	}

	intent := models.DeliveryCompletedIntent{
		AssignmentID: result.Assignment.ID,
		OrderID:      event.OrderID,
		DriverID:     event.DriverID,
		Payout:       result.Assignment.Payout,
		CompletedAt:  uc.now(),
	}
	if err := uc.dispatchGW.PublishDeliveryCompleted(ctx, intent); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish delivery completed",
			logger.OrderID(event.OrderID),
			logger.Err(err))
	}

	uc.removeFromBatch(ctx, event.DriverID, event.OrderID)
	return result, nil
}

func (uc *DispatchUC) removeFromBatch(ctx context.Context, driverID, orderID string) {
	batch, err := uc.batchingUC.RemoveOrder(ctx, driverID, orderID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to re-sequence batch",
			logger.DriverID(driverID),
			logger.OrderID(orderID),
			logger.Err(err))
		return
	}
	uc.publishBatch(ctx, batch)
}

func (uc *DispatchUC) publishBatch(ctx context.Context, batch *models.BatchedDelivery) {
	if batch == nil {
		return
	}
	event := models.BatchUpdatedEvent{
		BatchID:  batch.ID,
		DriverID: batch.DriverID,
		Status:   batch.Status,
		Stops:    batch.Route.Stops,
		Orders:   batch.Orders,
	}
	if err := uc.dispatchGW.PublishBatchUpdated(ctx, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish batch update",
			logger.BatchID(batch.ID),
			logger.DriverID(batch.DriverID),
			logger.Err(err))
	}
}

func (uc *DispatchUC) publishAccepted(ctx context.Context, a models.OrderAssignment, batched bool) {
	acceptedAt := uc.now()
	if a.RespondedAt != nil {
		acceptedAt = *a.RespondedAt
	}
	event := models.AssignmentAcceptedEvent{
		AssignmentID: a.ID,
		OrderID:      a.OrderID,
		DriverID:     a.DriverID,
		Payout:       a.Payout,
		Batched:      batched,
		AcceptedAt:   acceptedAt,
	}
	if err := uc.dispatchGW.PublishAssignmentAccepted(ctx, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish assignment accepted",
			logger.AssignmentID(a.ID),
			logger.OrderID(a.OrderID),
			logger.Err(err))
	}
}
