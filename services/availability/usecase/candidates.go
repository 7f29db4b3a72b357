package usecase

import (
	"context"
	"sort"

	"github.com/piresc/kurir/internal/pkg/logger"
	"github.com/piresc/kurir/internal/pkg/models"
	"github.com/piresc/kurir/internal/utils"
)

// nearby reads the geo index, falling back to a Postgres scan of the region
// when Redis is unreachable
func (uc *AvailabilityUC) nearby(ctx context.Context, location models.Location, regionID string, radiusKm float64, status models.DriverStatus) ([]models.NearbyDriver, error) {
	hits, err := uc.geoIndex.Nearby(ctx, regionID, location, radiusKm, 0)
	if err == nil {
		return hits, nil
	}

	logger.WarnCtx(ctx, "Geo index unavailable, scanning drivers from Postgres",
		logger.RegionID(regionID),
		logger.Err(err))

	profiles, err := uc.availabilityRepo.ListOnline(ctx, regionID, status)
	if err != nil {
		return nil, err
	}

	hits = make([]models.NearbyDriver, 0, len(profiles))
	for _, p := range profiles {
		distance := utils.DistanceKm(location, p.Position.Location)
		if distance > radiusKm {
			continue
		}
		hits = append(hits, models.NearbyDriver{
			DriverID:   p.ID,
			Location:   p.Position.Location,
			DistanceKm: distance,
		})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].DistanceKm < hits[j].DistanceKm
	})
	return hits, nil
}

// candidateCursor walks index hits in distance order, verifying one page at
// a time
type candidateCursor struct {
	uc        *AvailabilityUC
	regionID  string
	hits      []models.NearbyDriver
	next      int
	buffer    []models.Candidate
	excluding map[string]struct{}
	pageSize  int
	accept    func(models.DriverProfile) bool
}

// Next returns the next verified candidate, or nil when none remain
func (c *candidateCursor) Next(ctx context.Context) (*models.Candidate, error) {
	for len(c.buffer) == 0 {
		if c.next >= len(c.hits) {
			return nil, nil
		}
		end := min(c.next+c.pageSize, len(c.hits))
		page := c.hits[c.next:end]
		c.next = end

		if err := c.fill(ctx, page); err != nil {
			return nil, err
		}
	}

	candidate := c.buffer[0]
	c.buffer = c.buffer[1:]
	return &candidate, nil
}

func (c *candidateCursor) fill(ctx context.Context, page []models.NearbyDriver) error {
	ids := make([]string, 0, len(page))
	for _, hit := range page {
		if _, skip := c.excluding[hit.DriverID]; !skip {
			ids = append(ids, hit.DriverID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	profiles, err := c.uc.availabilityRepo.GetDrivers(ctx, ids)
	if err != nil {
		return err
	}

	for _, hit := range page {
		if _, skip := c.excluding[hit.DriverID]; skip {
			continue
		}

		profile, ok := profiles[hit.DriverID]
		if !ok || !profile.IsAvailable || !profile.Status.OccupiesSlot() || profile.RegionID != c.regionID {
			c.evictStale(ctx, hit.DriverID)
			continue
		}
		if !c.accept(profile) {
			continue
		}

		c.buffer = append(c.buffer, models.Candidate{
			Driver:     profile,
			DistanceKm: hit.DistanceKm,
		})
	}
	return nil
}

func (c *candidateCursor) evictStale(ctx context.Context, driverID string) {
	if err := c.uc.geoIndex.Remove(ctx, c.regionID, driverID); err != nil {
		logger.DebugCtx(ctx, "Failed to evict stale index entry",
			logger.DriverID(driverID),
			logger.Err(err))
	}
}
