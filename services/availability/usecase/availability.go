package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/kurir/internal/pkg/logger"
	"github.com/piresc/kurir/internal/pkg/models"
	"github.com/piresc/kurir/internal/utils"
	"github.com/piresc/kurir/services/availability"
)

// GetDriver returns the authoritative driver profile
func (uc *AvailabilityUC) GetDriver(ctx context.Context, driverID string) (*models.DriverProfile, error) {
	return uc.availabilityRepo.GetDriver(ctx, driverID)
}

// SetOnline makes an active driver eligible for offers. A position, when
// given, is stored before the driver enters the index.
func (uc *AvailabilityUC) SetOnline(ctx context.Context, driverID string, position *models.Position) (*models.DriverProfile, error) {
	if position != nil && !utils.ValidLocation(position.Location) {
		return nil, fmt.Errorf("%w: invalid position", models.ErrInvalidInput)
	}

	profile, err := uc.availabilityRepo.SetAvailability(ctx, driverID, true, uc.now())
	if err != nil {
		return nil, err
	}

	if position != nil {
		if profile, err = uc.availabilityRepo.UpdatePosition(ctx, driverID, *position, uc.now()); err != nil {
			return nil, err
		}
	}

	if utils.ValidLocation(profile.Position.Location) {
		if err := uc.geoIndex.Add(ctx, profile.RegionID, driverID, profile.Position.Location); err != nil {
			// the Postgres fallback still finds the driver
			logger.WarnCtx(ctx, "Failed to index online driver",
				logger.DriverID(driverID),
				logger.Err(err))
		}
	}

	logger.InfoCtx(ctx, "Driver online",
		logger.DriverID(driverID),
		logger.RegionID(profile.RegionID))
	return profile, nil
}

// SetOffline takes an active driver out of the offer pool
func (uc *AvailabilityUC) SetOffline(ctx context.Context, driverID string) (*models.DriverProfile, error) {
	profile, err := uc.availabilityRepo.SetAvailability(ctx, driverID, false, uc.now())
	if err != nil {
		return nil, err
	}

	if err := uc.geoIndex.Remove(ctx, profile.RegionID, driverID); err != nil {
		logger.WarnCtx(ctx, "Failed to remove offline driver from index",
			logger.DriverID(driverID),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "Driver offline",
		logger.DriverID(driverID),
		logger.RegionID(profile.RegionID))
	return profile, nil
}

// UpdatePosition records a location report and moves the driver in the index
// while online
func (uc *AvailabilityUC) UpdatePosition(ctx context.Context, driverID string, position models.Position) (*models.DriverProfile, error) {
	if !utils.ValidLocation(position.Location) {
		return nil, fmt.Errorf("%w: invalid position", models.ErrInvalidInput)
	}

	profile, err := uc.availabilityRepo.UpdatePosition(ctx, driverID, position, uc.now())
	if err != nil {
		return nil, err
	}

	if profile.IsAvailable && profile.Status.OccupiesSlot() {
		if err := uc.geoIndex.Add(ctx, profile.RegionID, driverID, position.Location); err != nil {
			logger.WarnCtx(ctx, "Failed to move driver in index",
				logger.DriverID(driverID),
				logger.Err(err))
		}
	}
	return profile, nil
}

// Evict removes a driver from the index, e.g. on deactivation
func (uc *AvailabilityUC) Evict(ctx context.Context, driverID, regionID string) error {
	return uc.geoIndex.Remove(ctx, regionID, driverID)
}

// CandidatesNear returns a lazy nearest-first search over online idle
// drivers. Each page of index hits is verified against Postgres as the
// caller advances, so drivers that went busy or offline meanwhile are
// never yielded.
func (uc *AvailabilityUC) CandidatesNear(ctx context.Context, location models.Location, regionID string, excluding map[string]struct{}) (availability.CandidateIterator, error) {
	hits, err := uc.nearby(ctx, location, regionID, uc.cfg.Dispatch.SearchRadiusKm, models.DriverStatusActive)
	if err != nil {
		return nil, err
	}

	pageSize := uc.cfg.Dispatch.CandidatePageSize
	if pageSize <= 0 {
		pageSize = defaultCandidatePageSize
	}

	return &candidateCursor{
		uc:        uc,
		regionID:  regionID,
		hits:      hits,
		excluding: excluding,
		pageSize:  pageSize,
		accept: func(p models.DriverProfile) bool {
			return p.CanReceiveOffer()
		},
	}, nil
}

// BusyNear lists online drivers on a delivery within radiusKm, nearest first
func (uc *AvailabilityUC) BusyNear(ctx context.Context, location models.Location, regionID string, radiusKm float64) ([]models.Candidate, error) {
	hits, err := uc.nearby(ctx, location, regionID, radiusKm, models.DriverStatusBusy)
	if err != nil {
		return nil, err
	}

	cursor := &candidateCursor{
		uc:       uc,
		regionID: regionID,
		hits:     hits,
		pageSize: len(hits),
		accept: func(p models.DriverProfile) bool {
			return p.IsAvailable && p.Status == models.DriverStatusBusy
		},
	}

	var busy []models.Candidate
	for {
		candidate, err := cursor.Next(ctx)
		if err != nil {
			return nil, err
		}
		if candidate == nil {
			return busy, nil
		}
		busy = append(busy, *candidate)
	}
}
