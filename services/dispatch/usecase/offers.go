package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/piresc/kurir/internal/pkg/logger"
	"github.com/piresc/kurir/internal/pkg/models"
)

// HandleOfferResponse routes a driver's answer. Answers to offers that already
// left the offered state are dropped.
func (uc *DispatchUC) HandleOfferResponse(ctx context.Context, event models.OfferResponseEvent) error {
	var err error
	if event.Accepted {
		_, err = uc.AcceptOffer(ctx, event.AssignmentID, event.DriverID)
	} else {
		_, err = uc.RejectOffer(ctx, event.AssignmentID, event.DriverID)
	}
	if errors.Is(err, models.ErrStaleAssignment) {
		logger.InfoCtx(ctx, "Ignoring response to stale offer",
			logger.AssignmentID(event.AssignmentID),
			logger.DriverID(event.DriverID),
			logger.Bool("accepted", event.Accepted))
		return nil
	}
	return err
}

// AcceptOffer commits the offer and announces the accepted assignment
func (uc *DispatchUC) AcceptOffer(ctx context.Context, assignmentID, driverID string) (*models.AcceptResult, error) {
	if assignmentID == "" || driverID == "" {
		return nil, fmt.Errorf("%w: assignment and driver are required", models.ErrInvalidInput)
	}
	result, err := uc.assignmentUC.Accept(ctx, assignmentID, driverID)
	if err != nil {
		return nil, err
	}
	uc.publishAccepted(ctx, result.Assignment, false)
	return result, nil
}

// RejectOffer declines the offer; the order moves on to its next candidate
func (uc *DispatchUC) RejectOffer(ctx context.Context, assignmentID, driverID string) (*models.OfferResolution, error) {
	if assignmentID == "" || driverID == "" {
		return nil, fmt.Errorf("%w: assignment and driver are required", models.ErrInvalidInput)
	}
	return uc.assignmentUC.Reject(ctx, assignmentID, driverID)
}

// HandleOfferExpired closes an offer whose window passed. Timers fire at
// least once, so an offer already resolved is not an error.
func (uc *DispatchUC) HandleOfferExpired(ctx context.Context, assignmentID string) error {
	_, err := uc.assignmentUC.Expire(ctx, assignmentID)
	if errors.Is(err, models.ErrStaleAssignment) {
		return nil
	}
	return err
}

// SweepExpiredOffers claims one batch of due offers and expires each of them
func (uc *DispatchUC) SweepExpiredOffers(ctx context.Context) (int, error) {
	ids, err := uc.assignmentUC.DueOffers(ctx, uc.sweepBatch())
	if err != nil {
		return 0, err
	}

	var errs []error
	handled := 0
	for _, id := range ids {
		if err := uc.HandleOfferExpired(ctx, id); err != nil {
			logger.ErrorCtx(ctx, "Failed to expire offer",
				logger.AssignmentID(id),
				logger.Err(err))
			errs = append(errs, err)
			continue
		}
		handled++
	}
	if handled > 0 {
		logger.DebugCtx(ctx, "Expired due offers", logger.Int("count", handled))
	}
	return handled, errors.Join(errs...)
}
