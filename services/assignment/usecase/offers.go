package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/piresc/kurir/internal/pkg/logger"
	"github.com/piresc/kurir/internal/pkg/metrics"
	"github.com/piresc/kurir/internal/pkg/models"
)

// Accept commits an offer to its driver. Offers the driver held for other
// orders are withdrawn and those orders move on to their next candidate.
func (uc *AssignmentUC) Accept(ctx context.Context, assignmentID, driverID string) (*models.AcceptResult, error) {
	now := uc.now()
	result, err := uc.assignmentRepo.Accept(ctx, assignmentID, driverID, now)
	if err != nil {
		return nil, err
	}

	uc.cancelExpiry(ctx, assignmentID)
	uc.metrics.OfferResolved(metrics.OutcomeAccepted, now.Sub(result.Assignment.OfferedAt))
	logger.InfoCtx(ctx, "Offer accepted",
		logger.AssignmentID(assignmentID),
		logger.OrderID(result.Order.ID),
		logger.DriverID(driverID))

	for _, withdrawn := range result.Withdrawn {
		uc.withdrawn(ctx, withdrawn, withdrawnDriverCommitted, now)
		uc.redispatch(ctx, withdrawn.OrderID)
	}
	return result, nil
}

// WithdrawDriverOffers withdraws the offers driverID still holds, after they
// went offline or were deactivated, and moves each order on to its next
// candidate
func (uc *AssignmentUC) WithdrawDriverOffers(ctx context.Context, driverID, reason string) ([]models.OrderAssignment, error) {
	if driverID == "" {
		return nil, models.ErrInvalidInput
	}
	now := uc.now()
	withdrawn, err := uc.assignmentRepo.WithdrawDriverOffers(ctx, driverID, now)
	if err != nil {
		return nil, err
	}
	for _, offer := range withdrawn {
		logger.InfoCtx(ctx, "Offer withdrawn from unavailable driver",
			logger.AssignmentID(offer.ID),
			logger.OrderID(offer.OrderID),
			logger.DriverID(driverID),
			logger.String("reason", reason))
		uc.withdrawn(ctx, offer, reason, now)
		uc.redispatch(ctx, offer.OrderID)
	}
	return withdrawn, nil
}

// Reject closes an offer declined by its driver and re-offers the order
func (uc *AssignmentUC) Reject(ctx context.Context, assignmentID, driverID string) (*models.OfferResolution, error) {
	now := uc.now()
	resolved, err := uc.assignmentRepo.Resolve(ctx, assignmentID, models.AssignmentStatusRejected, driverID, now)
	if err != nil {
		return nil, err
	}
	uc.cancelExpiry(ctx, assignmentID)
	return uc.moveOn(ctx, resolved, metrics.OutcomeRejected, now)
}

// Expire closes an offer whose deadline passed and re-offers the order. An
// offer that is already resolved is left alone; one that is not yet due is
// put back on the schedule.
func (uc *AssignmentUC) Expire(ctx context.Context, assignmentID string) (*models.OfferResolution, error) {
	now := uc.now()
	resolved, err := uc.assignmentRepo.Resolve(ctx, assignmentID, models.AssignmentStatusExpired, "", now)
	if errors.Is(err, models.ErrStaleAssignment) {
		uc.settleStaleExpiry(ctx, assignmentID, now)
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	return uc.moveOn(ctx, resolved, metrics.OutcomeExpired, now)
}

func (uc *AssignmentUC) moveOn(ctx context.Context, resolved *models.OrderAssignment, outcome string, now time.Time) (*models.OfferResolution, error) {
	uc.metrics.OfferResolved(outcome, now.Sub(resolved.OfferedAt))
	logger.InfoCtx(ctx, "Offer resolved",
		logger.AssignmentID(resolved.ID),
		logger.OrderID(resolved.OrderID),
		logger.DriverID(resolved.DriverID),
		logger.String("outcome", outcome))

	resolution := &models.OfferResolution{Assignment: *resolved}
	order, err := uc.assignmentRepo.GetOrder(ctx, resolved.OrderID)
	if err != nil {
		return resolution, err
	}

	reoffer, err := uc.offerNext(ctx, order)
	switch {
	case err == nil:
		resolution.Reoffer = reoffer
	case errors.Is(err, models.ErrNoCandidatesAvailable):
		resolution.Unassignable = true
	case errors.Is(err, models.ErrOfferOutstanding), errors.Is(err, models.ErrOrderNotDispatchable):
		logger.DebugCtx(ctx, "Order already moved on",
			logger.OrderID(resolved.OrderID),
			logger.Err(err))
	default:
		return resolution, err
	}
	return resolution, nil
}

// settleStaleExpiry handles an expiry that found nothing to expire. An early
// timer is rescheduled; an order left between offers by a failed re-offer is
// dispatched again.
func (uc *AssignmentUC) settleStaleExpiry(ctx context.Context, assignmentID string, now time.Time) {
	current, err := uc.assignmentRepo.GetAssignment(ctx, assignmentID)
	if err != nil {
		logger.DebugCtx(ctx, "Stale expiry for unknown offer",
			logger.AssignmentID(assignmentID),
			logger.Err(err))
		return
	}

	if current.Status == models.AssignmentStatusOffered && !current.ExpiredAt(now) {
		if err := uc.expiry.Schedule(ctx, assignmentID, current.ExpiresAt); err != nil {
			logger.WarnCtx(ctx, "Failed to reschedule offer expiry",
				logger.AssignmentID(assignmentID),
				logger.Err(err))
		}
		return
	}

	order, err := uc.assignmentRepo.GetOrder(ctx, current.OrderID)
	if err != nil || order.DispatchState != models.DispatchStateReoffering {
		return
	}
	if _, err := uc.offerNext(ctx, order); err != nil && !errors.Is(err, models.ErrNoCandidatesAvailable) {
		logger.DebugCtx(ctx, "Could not resume stalled order",
			logger.OrderID(order.ID),
			logger.Err(err))
	}
}

// DueOffers claims offers whose deadline passed. The Redis schedule is the
// primary source; Postgres catches offers it missed for longer than one sweep.
func (uc *AssignmentUC) DueOffers(ctx context.Context, limit int) ([]string, error) {
	now := uc.now()
	cutoff := now.Add(-uc.cfg.Dispatch.ExpirySweepInterval)

	due, err := uc.expiry.Due(ctx, now, limit)
	if err != nil {
		logger.WarnCtx(ctx, "Expiry schedule unavailable, sweeping Postgres only", logger.Err(err))
		cutoff = now
	}

	overdue, err := uc.assignmentRepo.ListOverdueOffers(ctx, cutoff, limit)
	if err != nil {
		if len(due) > 0 {
			logger.WarnCtx(ctx, "Failed to list overdue offers", logger.Err(err))
			return due, nil
		}
		return nil, err
	}

	seen := make(map[string]struct{}, len(due))
	for _, id := range due {
		seen[id] = struct{}{}
	}
	for _, id := range overdue {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		due = append(due, id)
	}
	return due, nil
}

func (uc *AssignmentUC) withdrawn(ctx context.Context, offer models.OrderAssignment, reason string, now time.Time) {
	uc.cancelExpiry(ctx, offer.ID)
	uc.metrics.OfferResolved(metrics.OutcomeWithdrawn, now.Sub(offer.OfferedAt))

	event := models.OfferWithdrawnEvent{
		AssignmentID: offer.ID,
		OrderID:      offer.OrderID,
		DriverID:     offer.DriverID,
		Reason:       reason,
	}
	if err := uc.assignmentGW.PublishOfferWithdrawn(ctx, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish withdrawn offer",
			logger.AssignmentID(offer.ID),
			logger.Err(err))
	}
}

// redispatch re-offers an order whose offer was withdrawn; failures are
// logged since the triggering transition already committed
func (uc *AssignmentUC) redispatch(ctx context.Context, orderID string) {
	_, err := uc.Dispatch(ctx, orderID)
	switch {
	case err == nil:
	case errors.Is(err, models.ErrNoCandidatesAvailable),
		errors.Is(err, models.ErrOfferOutstanding),
		errors.Is(err, models.ErrOrderNotDispatchable):
		logger.DebugCtx(ctx, "Withdrawn order not re-offered",
			logger.OrderID(orderID),
			logger.Err(err))
	default:
		logger.ErrorCtx(ctx, "Failed to re-offer withdrawn order",
			logger.OrderID(orderID),
			logger.Err(err))
	}
}

func (uc *AssignmentUC) cancelExpiry(ctx context.Context, assignmentID string) {
	if err := uc.expiry.Cancel(ctx, assignmentID); err != nil {
		logger.DebugCtx(ctx, "Failed to cancel offer expiry",
			logger.AssignmentID(assignmentID),
			logger.Err(err))
	}
}
