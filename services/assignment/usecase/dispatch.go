package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/kurir/internal/pkg/logger"
	"github.com/piresc/kurir/internal/pkg/models"
	"github.com/piresc/kurir/internal/utils"
)

// RegisterOrder stores a ready order in its region. Orders for a closed
// region are refused before anything is written.
func (uc *AssignmentUC) RegisterOrder(ctx context.Context, event models.OrderReadyEvent) (*models.Order, error) {
	if event.OrderID == "" || !utils.ValidLocation(event.Pickup) || !utils.ValidLocation(event.Dropoff) {
		return nil, fmt.Errorf("%w: order needs an id, pickup and dropoff", models.ErrInvalidInput)
	}

	region, err := uc.resolveRegion(ctx, event)
	if err != nil {
		return nil, err
	}
	if !region.Dispatches() {
		return nil, fmt.Errorf("%w: region %s is closed", models.ErrOrderNotDispatchable, region.ID)
	}

	order := models.NewOrderFromEvent(event, region.ID, uc.now())
	stored, created, err := uc.assignmentRepo.CreateOrder(ctx, &order)
	if err != nil {
		return nil, err
	}

	if created {
		logger.InfoCtx(ctx, "Order registered",
			logger.OrderID(stored.ID),
			logger.RegionID(stored.RegionID))
	} else {
		logger.DebugCtx(ctx, "Order already registered",
			logger.OrderID(stored.ID),
			logger.String("dispatch_state", string(stored.DispatchState)))
	}
	return stored, nil
}

func (uc *AssignmentUC) resolveRegion(ctx context.Context, event models.OrderReadyEvent) (*models.Region, error) {
	if event.RegionID != "" {
		return uc.assignmentRepo.GetRegion(ctx, event.RegionID)
	}
	return uc.assignmentRepo.FindRegionByGeohash(ctx, utils.HashPrefixes(event.Pickup))
}

// GetOrder returns an order by ID
func (uc *AssignmentUC) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	return uc.assignmentRepo.GetOrder(ctx, orderID)
}

// Dispatch offers a pending order to its nearest untried candidate
func (uc *AssignmentUC) Dispatch(ctx context.Context, orderID string) (*models.OrderAssignment, error) {
	order, err := uc.assignmentRepo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return uc.offerNext(ctx, order)
}

// offerNext walks candidates nearest first, skipping every driver the order
// was already offered to. Running out of candidates escalates the order.
func (uc *AssignmentUC) offerNext(ctx context.Context, order *models.Order) (*models.OrderAssignment, error) {
	if order.Status != models.OrderStatusPending || !order.DispatchState.Offerable() {
		return nil, models.ErrOrderNotDispatchable
	}

	if limit := uc.cfg.Dispatch.MaxOfferAttempts; limit > 0 && order.OfferAttempts >= limit {
		logger.InfoCtx(ctx, "Order reached its offer limit",
			logger.OrderID(order.ID),
			logger.Int("attempts", order.OfferAttempts))
		return nil, uc.escalate(ctx, order)
	}

	tried, err := uc.assignmentRepo.ListOfferedDrivers(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	excluding := make(map[string]struct{}, len(tried))
	for _, driverID := range tried {
		excluding[driverID] = struct{}{}
	}

	candidates, err := uc.candidates.CandidatesNear(ctx, order.Pickup, order.RegionID, excluding)
	if err != nil {
		return nil, err
	}

	for {
		candidate, err := candidates.Next(ctx)
		if err != nil {
			return nil, err
		}
		if candidate == nil {
			break
		}

		offer, err := uc.issueOffer(ctx, order, candidate)
		switch {
		case err == nil:
			return offer, nil
		case errors.Is(err, models.ErrDriverUnavailable), errors.Is(err, models.ErrDriverNotFound):
			logger.DebugCtx(ctx, "Candidate no longer available",
				logger.OrderID(order.ID),
				logger.DriverID(candidate.Driver.ID))
		default:
			return nil, err
		}
	}

	return nil, uc.escalate(ctx, order)
}

func (uc *AssignmentUC) issueOffer(ctx context.Context, order *models.Order, candidate *models.Candidate) (*models.OrderAssignment, error) {
	now := uc.now()
	offer := &models.OrderAssignment{
		ID:        uuid.New().String(),
		OrderID:   order.ID,
		DriverID:  candidate.Driver.ID,
		Payout:    uc.cfg.Payout.For(order.EstimatedDistance, false),
		OfferedAt: now,
		ExpiresAt: now.Add(uc.offerWindow()),
	}

	if err := uc.assignmentRepo.CreateOffer(ctx, offer); err != nil {
		return nil, err
	}

	if err := uc.expiry.Schedule(ctx, offer.ID, offer.ExpiresAt); err != nil {
		// the sweeper also scans Postgres for overdue offers
		logger.WarnCtx(ctx, "Failed to schedule offer expiry",
			logger.AssignmentID(offer.ID),
			logger.Err(err))
	}
	uc.metrics.OfferIssued(false)

	event := models.OfferIssuedEvent{
		AssignmentID: offer.ID,
		OrderID:      order.ID,
		DriverID:     offer.DriverID,
		Pickup:       order.Pickup,
		Dropoff:      order.Dropoff,
		Payout:       offer.Payout,
		ExpiresAt:    offer.ExpiresAt,
	}
	if err := uc.assignmentGW.PublishOfferIssued(ctx, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish offer",
			logger.AssignmentID(offer.ID),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "Offer issued",
		logger.OrderID(order.ID),
		logger.DriverID(offer.DriverID),
		logger.AssignmentID(offer.ID),
		logger.Int("attempt", offer.Attempt),
		logger.Float64("distance_km", candidate.DistanceKm))
	return offer, nil
}

// escalate marks the order unassignable and hands it to the admin surface.
// It returns ErrNoCandidatesAvailable once the order is escalated.
func (uc *AssignmentUC) escalate(ctx context.Context, order *models.Order) error {
	now := uc.now()
	escalated, err := uc.assignmentRepo.MarkUnassignable(ctx, order.ID, now)
	if err != nil {
		return err
	}
	uc.metrics.OrderUnassignable()

	event := models.OrderUnassignableEvent{
		OrderID:  escalated.ID,
		RegionID: escalated.RegionID,
		Attempts: escalated.OfferAttempts,
		At:       now,
	}
	if err := uc.assignmentGW.PublishOrderUnassignable(ctx, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish unassignable order",
			logger.OrderID(order.ID),
			logger.Err(err))
	}

	logger.WarnCtx(ctx, "Order is unassignable",
		logger.OrderID(order.ID),
		logger.RegionID(order.RegionID),
		logger.Int("attempts", escalated.OfferAttempts))
	return models.ErrNoCandidatesAvailable
}
