package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/kurir/internal/pkg/logger"
	"github.com/piresc/kurir/internal/pkg/models"
)

// HandleDriverStatus flips a driver online or offline
func (uc *DispatchUC) HandleDriverStatus(ctx context.Context, event models.DriverStatusEvent) (*models.DriverProfile, error) {
	if event.DriverID == "" {
		return nil, fmt.Errorf("%w: driver is required", models.ErrInvalidInput)
	}
	if event.Online {
		return uc.availabilityUC.SetOnline(ctx, event.DriverID, event.Position)
	}
	profile, err := uc.availabilityUC.SetOffline(ctx, event.DriverID)
	if err != nil {
		return nil, err
	}
	uc.withdrawOffers(ctx, event.DriverID, models.WithdrawReasonDriverOffline)
	return profile, nil
}

// HandleDriverLocation records a position report
func (uc *DispatchUC) HandleDriverLocation(ctx context.Context, update models.LocationUpdate) (*models.DriverProfile, error) {
	if update.DriverID == "" {
		return nil, fmt.Errorf("%w: driver is required", models.ErrInvalidInput)
	}
	return uc.availabilityUC.UpdatePosition(ctx, update.DriverID, update.Position)
}

// HandleDriverDeactivated frees the driver's slot, drops them from the
// index and promotes queued applicants into the freed capacity
func (uc *DispatchUC) HandleDriverDeactivated(ctx context.Context, driverID string) (*models.PromotionResult, error) {
	profile, err := uc.activationUC.DeactivateDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	if err := uc.availabilityUC.Evict(ctx, driverID, profile.RegionID); err != nil {
		// candidate verification against Postgres still filters the driver out
		logger.WarnCtx(ctx, "Failed to evict deactivated driver from index",
			logger.DriverID(driverID),
			logger.Err(err))
	}
	uc.withdrawOffers(ctx, driverID, models.WithdrawReasonDriverDeactivated)

	return uc.promote(ctx, profile.RegionID)
}

// withdrawOffers pulls outstanding offers from a driver who just became
// unavailable. Accept refuses an unavailable driver, so a failure here only
// delays the orders until their offers expire.
func (uc *DispatchUC) withdrawOffers(ctx context.Context, driverID, reason string) {
	withdrawn, err := uc.assignmentUC.WithdrawDriverOffers(ctx, driverID, reason)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to withdraw offers from unavailable driver",
			logger.DriverID(driverID),
			logger.String("reason", reason),
			logger.Err(err))
		return
	}
	if len(withdrawn) > 0 {
		logger.InfoCtx(ctx, "Withdrew offers from unavailable driver",
			logger.DriverID(driverID),
			logger.Int("count", len(withdrawn)))
	}
}
