package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/kurir/internal/pkg/logger"
	"github.com/piresc/kurir/internal/pkg/models"
)

// TryAbsorb folds order onto the busy driver whose run it lengthens the
// least. It returns nil when batching is disabled, no driver is eligible, the
// routing provider is down or the chosen driver's load moved underneath the
// plan; the caller then offers the order fresh.
func (uc *BatchingUC) TryAbsorb(ctx context.Context, order *models.Order) (*models.Absorption, error) {
	if uc.cfg.Batching.MaxBatchSize < 2 {
		return nil, nil
	}
	if order == nil || order.ID == "" {
		return nil, models.ErrInvalidInput
	}

	radius := uc.cfg.Batching.SearchRadiusKm
	if radius <= 0 {
		radius = uc.cfg.Dispatch.SearchRadiusKm
	}
	busy, err := uc.candidates.BusyNear(ctx, order.Pickup, order.RegionID, radius)
	if err != nil {
		return nil, fmt.Errorf("failed to list busy drivers: %w", err)
	}

	var best *plan
	for _, c := range busy {
		load, err := uc.batchingRepo.GetDriverLoad(ctx, c.Driver.ID)
		if err != nil {
			logger.WarnCtx(ctx, "Skipping batching candidate",
				logger.DriverID(c.Driver.ID),
				logger.Err(err))
			continue
		}
		if load.Driver.Status != models.DriverStatusBusy {
			continue
		}
		p, ok := evaluate(uc.cfg.Batching, uc.fallbackSpeed(), load, order)
		if !ok {
			continue
		}
		if best == nil || p.detourKm < best.detourKm {
			best = p
		}
	}
	if best == nil {
		logger.DebugCtx(ctx, "No busy driver can absorb order", logger.OrderID(order.ID))
		return nil, nil
	}

	now := uc.now()
	batch, err := uc.buildBatch(ctx, best.load, best.stops, now)
	if err != nil {
		uc.metrics.RoutingUnavailable()
		logger.WarnCtx(ctx, "Routing provider unavailable, not batching order",
			logger.OrderID(order.ID),
			logger.DriverID(best.load.Driver.ID),
			logger.Err(err))
		return nil, nil
	}

	assignment := models.OrderAssignment{
		ID:          uuid.New().String(),
		OrderID:     order.ID,
		DriverID:    best.load.Driver.ID,
		Status:      models.AssignmentStatusAccepted,
		Attempt:     1,
		Payout:      uc.cfg.Payout.For(order.EstimatedDistance, true),
		OfferedAt:   now,
		ExpiresAt:   now,
		RespondedAt: &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = uc.batchingRepo.CommitBatch(ctx, models.BatchCommit{
		Batch:        *batch,
		Assignment:   assignment,
		ExpectedLoad: best.load.ActiveOrderIDs(),
	}, now)
	if errors.Is(err, models.ErrBatchConflict) {
		logger.InfoCtx(ctx, "Driver load changed while batching, offering order fresh",
			logger.OrderID(order.ID),
			logger.DriverID(best.load.Driver.ID),
			logger.Err(err))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	uc.metrics.BatchFolded()
	uc.metrics.OfferIssued(true)

	absorbed := *order
	driverID := best.load.Driver.ID
	absorbed.Status = models.OrderStatusAssigned
	absorbed.DispatchState = models.DispatchStateCommitted
	absorbed.DriverID = &driverID
	absorbed.UpdatedAt = now

	logger.InfoCtx(ctx, "Order folded into batch",
		logger.OrderID(order.ID),
		logger.DriverID(driverID),
		logger.BatchID(batch.ID),
		logger.Strings("order_sequence", batch.OrderSequence),
		logger.Float64("detour_km", best.detourKm))

	return &models.Absorption{
		Order:      absorbed,
		Batch:      *batch,
		Assignment: assignment,
		DetourKm:   best.detourKm,
	}, nil
}

// RemoveOrder re-sequences a driver's batch once orderID left it. The order
// must already be delivered or canceled in storage, so the remaining load is
// read back rather than filtered here.
func (uc *BatchingUC) RemoveOrder(ctx context.Context, driverID, orderID string) (*models.BatchedDelivery, error) {
	if driverID == "" || orderID == "" {
		return nil, models.ErrInvalidInput
	}
	batch, err := uc.Recompute(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if batch != nil {
		logger.InfoCtx(ctx, "Order removed from batch",
			logger.OrderID(orderID),
			logger.DriverID(driverID),
			logger.BatchID(batch.ID),
			logger.String("status", string(batch.Status)))
	}
	return batch, nil
}

// Recompute re-sequences the driver's outstanding stops from their current
// position. Drivers without an open batch are left alone. When the routing
// provider is down the new sequence is still stored, without ETAs. A fold or
// delivery landing between the read and the write makes the save conflict, in
// which case the load is read again.
func (uc *BatchingUC) Recompute(ctx context.Context, driverID string) (*models.BatchedDelivery, error) {
	for attempt := 1; ; attempt++ {
		batch, err := uc.recompute(ctx, driverID)
		if !errors.Is(err, models.ErrBatchConflict) || attempt >= maxRecomputeAttempts {
			return batch, err
		}
		logger.InfoCtx(ctx, "Driver load changed while recomputing batch, retrying",
			logger.DriverID(driverID),
			logger.Int("attempt", attempt))
	}
}

func (uc *BatchingUC) recompute(ctx context.Context, driverID string) (*models.BatchedDelivery, error) {
	load, err := uc.batchingRepo.GetDriverLoad(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if load.Batch == nil {
		return nil, nil
	}

	now := uc.now()
	expected := load.ActiveOrderIDs()
	if len(load.Orders) == 0 {
		done := *load.Batch
		done.Status = models.BatchStatusCompleted
		done.OrderSequence = []string{}
		done.Orders = nil
		done.Route = models.OptimizedRoute{}
		done.TotalDistance = 0
		done.TotalDuration = 0
		done.UpdatedAt = now
		if err := uc.batchingRepo.SaveBatch(ctx, &done, expected); err != nil {
			return nil, err
		}
		return &done, nil
	}

	start := load.Driver.Position.Location
	stops := SequenceStops(start, load.Orders)
	batch, err := uc.buildBatch(ctx, load, stops, now)
	if err != nil {
		uc.metrics.RoutingUnavailable()
		logger.WarnCtx(ctx, "Routing provider unavailable, storing batch without ETAs",
			logger.DriverID(driverID),
			logger.BatchID(load.Batch.ID),
			logger.Err(err))
		batch = uc.unroutedBatch(load, stops, now)
	}

	if err := uc.batchingRepo.SaveBatch(ctx, batch, expected); err != nil {
		return nil, err
	}
	return batch, nil
}

// GetBatch returns the driver's open batch
func (uc *BatchingUC) GetBatch(ctx context.Context, driverID string) (*models.BatchedDelivery, error) {
	load, err := uc.batchingRepo.GetDriverLoad(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if load.Batch == nil {
		return nil, models.ErrBatchNotFound
	}
	return load.Batch, nil
}

func (uc *BatchingUC) buildBatch(ctx context.Context, load *models.DriverLoad, stops []models.RouteStop, now time.Time) (*models.BatchedDelivery, error) {
	start := load.Driver.Position.Location
	route, err := uc.routingGW.Route(ctx, Waypoints(start, stops))
	if err != nil {
		return nil, err
	}
	if len(route.Legs) != len(stops) {
		return nil, fmt.Errorf("%w: got %d legs for %d stops",
			models.ErrRoutingProviderUnavailable, len(route.Legs), len(stops))
	}

	ApplyETAs(stops, route, now, uc.cfg.Batching.StopServiceTime)

	batch := uc.newBatch(load, stops, now, true)
	batch.Route = models.OptimizedRoute{Stops: stops, Legs: route.Legs, Polyline: route.Polyline}
	batch.TotalDistance = route.TotalDistanceKm()
	batch.TotalDuration = route.TotalDuration()
	return batch, nil
}

func (uc *BatchingUC) unroutedBatch(load *models.DriverLoad, stops []models.RouteStop, now time.Time) *models.BatchedDelivery {
	batch := uc.newBatch(load, stops, now, false)
	batch.Route = models.OptimizedRoute{Stops: stops}
	batch.TotalDistance = PathKm(load.Driver.Position.Location, stops)
	batch.TotalDuration = time.Duration(batch.TotalDistance / uc.fallbackSpeed() * float64(time.Hour))
	return batch
}

func (uc *BatchingUC) newBatch(load *models.DriverLoad, stops []models.RouteStop, now time.Time, withETAs bool) *models.BatchedDelivery {
	id := uuid.New().String()
	createdAt := now
	if load.Batch != nil {
		id = load.Batch.ID
		createdAt = load.Batch.CreatedAt
	}

	status := models.BatchStatusPlanned
	for _, stop := range stops {
		if stop.Kind != models.StopDropoff {
			continue
		}
		if hasPickup(stops, stop.OrderID) {
			continue
		}
		status = models.BatchStatusInProgress
		break
	}

	sequence, rows := BatchOrders(id, stops, withETAs)
	return &models.BatchedDelivery{
		ID:            id,
		DriverID:      load.Driver.ID,
		OrderSequence: sequence,
		Status:        status,
		Orders:        rows,
		CreatedAt:     createdAt,
		UpdatedAt:     now,
	}
}

func hasPickup(stops []models.RouteStop, orderID string) bool {
	for _, stop := range stops {
		if stop.OrderID == orderID && stop.Kind == models.StopPickup {
			return true
		}
	}
	return false
}
