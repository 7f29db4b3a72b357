package usecase

import (
	"context"

	"github.com/piresc/kurir/internal/pkg/logger"
	"github.com/piresc/kurir/internal/pkg/models"
)

// HandleApplicantReady queues an applicant and runs a promotion pass. The
// entry is returned even if the pass fails; the next pass picks it up.
func (uc *DispatchUC) HandleApplicantReady(ctx context.Context, event models.ApplicantReadyEvent) (*models.ActivationQueueEntry, error) {
	entry, err := uc.activationUC.Enqueue(ctx, event.ApplicantID, event.RegionID, event.PriorityScore)
	if err != nil {
		return nil, err
	}
	uc.promoteQuietly(ctx, event.RegionID)
	return entry, nil
}

// HandlePriorityChanged re-ranks an applicant and runs a promotion pass
func (uc *DispatchUC) HandlePriorityChanged(ctx context.Context, event models.PriorityChangedEvent) error {
	if err := uc.activationUC.UpdatePriority(ctx, event.ApplicantID, event.RegionID, event.PriorityScore); err != nil {
		return err
	}
	uc.promoteQuietly(ctx, event.RegionID)
	return nil
}

// WithdrawApplicant removes a queued applicant
func (uc *DispatchUC) WithdrawApplicant(ctx context.Context, applicantID, regionID string) error {
	if err := uc.activationUC.Withdraw(ctx, applicantID, regionID); err != nil {
		return err
	}
	uc.promoteQuietly(ctx, regionID)
	return nil
}

func (uc *DispatchUC) QueuePosition(ctx context.Context, applicantID string) (*models.QueuePosition, error) {
	return uc.activationUC.Position(ctx, applicantID)
}

func (uc *DispatchUC) RegionCapacity(ctx context.Context, regionID string) (*models.RegionCapacity, error) {
	return uc.activationUC.Capacity(ctx, regionID)
}

// PromoteRegion runs a promotion pass on demand
func (uc *DispatchUC) PromoteRegion(ctx context.Context, regionID string) (*models.PromotionResult, error) {
	return uc.promote(ctx, regionID)
}

// promote runs TryPromote and announces every applicant it activated, also
// when the pass stopped early on an error
func (uc *DispatchUC) promote(ctx context.Context, regionID string) (*models.PromotionResult, error) {
	result, err := uc.activationUC.TryPromote(ctx, regionID)
	if result != nil {
		now := uc.now()
		for _, driverID := range result.Promoted {
			uc.metrics.DriverPromoted(regionID)
			event := models.DriverActivatedEvent{DriverID: driverID, RegionID: regionID, At: now}
			if pubErr := uc.dispatchGW.PublishDriverActivated(ctx, event); pubErr != nil {
				logger.ErrorCtx(ctx, "Failed to publish driver activated",
					logger.DriverID(driverID),
					logger.Err(pubErr))
			}
		}
		for range result.Skipped {
			uc.metrics.PromotionSkipped(regionID)
		}
	}
	return result, err
}

func (uc *DispatchUC) promoteQuietly(ctx context.Context, regionID string) {
	if _, err := uc.promote(ctx, regionID); err != nil {
		logger.WarnCtx(ctx, "Promotion pass failed",
			logger.RegionID(regionID),
			logger.Err(err))
	}
}
