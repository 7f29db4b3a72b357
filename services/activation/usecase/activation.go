package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/kurir/internal/pkg/logger"
	"github.com/piresc/kurir/internal/pkg/models"
)

// Enqueue adds an applicant to a region's waitlist
func (uc *ActivationUC) Enqueue(ctx context.Context, applicantID, regionID string, priorityScore int64) (*models.ActivationQueueEntry, error) {
	if strings.TrimSpace(applicantID) == "" || strings.TrimSpace(regionID) == "" {
		return nil, fmt.Errorf("%w: applicant and region are required", models.ErrInvalidInput)
	}

	if _, err := uc.activationRepo.GetRegion(ctx, regionID); err != nil {
		return nil, err
	}

	entry := &models.ActivationQueueEntry{
		ID:            uuid.NewString(),
		ApplicantID:   applicantID,
		RegionID:      regionID,
		PriorityScore: priorityScore,
		AddedAt:       uc.now(),
	}
	if err := uc.activationRepo.InsertEntry(ctx, entry); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Applicant queued for activation",
		logger.ApplicantID(applicantID),
		logger.RegionID(regionID),
		logger.Int64("priority_score", priorityScore))
	return entry, nil
}

// Position ranks the applicant against its region's current scores
func (uc *ActivationUC) Position(ctx context.Context, applicantID string) (*models.QueuePosition, error) {
	if strings.TrimSpace(applicantID) == "" {
		return nil, fmt.Errorf("%w: applicant is required", models.ErrInvalidInput)
	}
	return uc.activationRepo.GetPosition(ctx, applicantID)
}

// UpdatePriority changes an applicant's ranking key
func (uc *ActivationUC) UpdatePriority(ctx context.Context, applicantID, regionID string, priorityScore int64) error {
	if applicantID == "" || regionID == "" {
		return fmt.Errorf("%w: applicant and region are required", models.ErrInvalidInput)
	}
	return uc.activationRepo.UpdatePriority(ctx, applicantID, regionID, priorityScore)
}

// Withdraw removes an applicant from a region's waitlist
func (uc *ActivationUC) Withdraw(ctx context.Context, applicantID, regionID string) error {
	if applicantID == "" || regionID == "" {
		return fmt.Errorf("%w: applicant and region are required", models.ErrInvalidInput)
	}
	return uc.activationRepo.DeleteEntry(ctx, applicantID, regionID)
}

// Occupancy counts the drivers holding a slot in the region
func (uc *ActivationUC) Occupancy(ctx context.Context, regionID string) (int, error) {
	return uc.activationRepo.Occupancy(ctx, regionID)
}

// HasCapacity reports whether one more driver may be activated in the region
func (uc *ActivationUC) HasCapacity(ctx context.Context, regionID string) (bool, error) {
	region, err := uc.activationRepo.GetRegion(ctx, regionID)
	if err != nil {
		return false, err
	}
	occ, err := uc.activationRepo.Occupancy(ctx, regionID)
	if err != nil {
		return false, err
	}
	return region.HasCapacity(occ), nil
}

// Capacity returns quota, occupancy and queue depth for the region
func (uc *ActivationUC) Capacity(ctx context.Context, regionID string) (*models.RegionCapacity, error) {
	region, err := uc.activationRepo.GetRegion(ctx, regionID)
	if err != nil {
		return nil, err
	}
	occ, err := uc.activationRepo.Occupancy(ctx, regionID)
	if err != nil {
		return nil, err
	}
	queued, err := uc.activationRepo.QueueLength(ctx, regionID)
	if err != nil {
		return nil, err
	}

	capacity := models.NewRegionCapacity(*region, occ, queued)
	return &capacity, nil
}

// TryPromote activates the highest-ranked applicants while the region has
// free slots. Applicants failing prerequisites stay queued and are passed
// over. Safe to call repeatedly; an empty queue or full region is a no-op.
func (uc *ActivationUC) TryPromote(ctx context.Context, regionID string) (*models.PromotionResult, error) {
	region, err := uc.activationRepo.GetRegion(ctx, regionID)
	if err != nil {
		return nil, err
	}
	occ, err := uc.activationRepo.Occupancy(ctx, regionID)
	if err != nil {
		return nil, err
	}

	result := &models.PromotionResult{
		RegionID: regionID,
		Promoted: []string{},
		Skipped:  []string{},
	}

	for region.HasCapacity(occ) {
		// skipped entries keep their rank, so the next unseen entry sits
		// right after them
		entries, err := uc.activationRepo.ListRanked(ctx, regionID, uc.pageSize(), len(result.Skipped))
		if err != nil {
			return result, err
		}
		if len(entries) == 0 {
			break
		}

		for _, entry := range entries {
			if !region.HasCapacity(occ) {
				break
			}

			outcome, err := uc.promoteEntry(ctx, entry)
			if err != nil {
				return result, err
			}
			switch outcome {
			case outcomePromoted:
				result.Promoted = append(result.Promoted, entry.ApplicantID)
				occ++
			case outcomeSkipped:
				result.Skipped = append(result.Skipped, entry.ApplicantID)
			case outcomeRegionFull:
				return result, nil
			}
		}
	}

	if len(result.Promoted) > 0 || len(result.Skipped) > 0 {
		logger.InfoCtx(ctx, "Promotion pass finished",
			logger.RegionID(regionID),
			logger.Strings("promoted", result.Promoted),
			logger.Strings("skipped", result.Skipped))
	}
	return result, nil
}

type promotionOutcome int

const (
	outcomePromoted promotionOutcome = iota
	outcomeSkipped
	outcomeGone // withdrawn or promoted by another worker
	outcomeRegionFull
)

// promoteEntry validates and activates one entry
func (uc *ActivationUC) promoteEntry(ctx context.Context, entry models.ActivationQueueEntry) (promotionOutcome, error) {
	if err := uc.onboardingGW.CheckPrerequisites(ctx, entry.ApplicantID, entry.RegionID); err != nil {
		if errors.Is(err, models.ErrPrerequisitesNotMet) {
			logger.WarnCtx(ctx, "Applicant failed prerequisites at promotion, keeping entry queued",
				logger.ApplicantID(entry.ApplicantID),
				logger.RegionID(entry.RegionID),
				logger.Err(err))
			return outcomeSkipped, nil
		}
		return outcomeSkipped, err
	}

	driver, err := uc.activationRepo.Promote(ctx, entry, uc.now())
	switch {
	case err == nil:
		logger.InfoCtx(ctx, "Applicant promoted to active driver",
			logger.DriverID(driver.ID),
			logger.RegionID(entry.RegionID))
		return outcomePromoted, nil
	case errors.Is(err, models.ErrCapacityExceeded):
		return outcomeRegionFull, nil
	case errors.Is(err, models.ErrEntryNotFound):
		return outcomeGone, nil
	case errors.Is(err, models.ErrDuplicateEntry):
		logger.WarnCtx(ctx, "Applicant already holds a driver slot",
			logger.ApplicantID(entry.ApplicantID),
			logger.RegionID(entry.RegionID))
		return outcomeSkipped, nil
	default:
		return outcomeSkipped, err
	}
}

// DeactivateDriver releases a driver's slot
func (uc *ActivationUC) DeactivateDriver(ctx context.Context, driverID string) (*models.DriverProfile, error) {
	if driverID == "" {
		return nil, fmt.Errorf("%w: driver is required", models.ErrInvalidInput)
	}

	profile, err := uc.activationRepo.DeactivateDriver(ctx, driverID, uc.now())
	if err != nil {
		return nil, err
	}
	logger.InfoCtx(ctx, "Driver deactivated",
		logger.DriverID(driverID),
		logger.RegionID(profile.RegionID))
	return profile, nil
}
