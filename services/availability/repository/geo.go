package repository

import (
	"context"
	"fmt"

	"github.com/piresc/kurir/internal/pkg/constants"
	"github.com/piresc/kurir/internal/pkg/database"
	"github.com/piresc/kurir/internal/pkg/models"
)

// GeoRepo keeps online drivers in one Redis geo set per region
type GeoRepo struct {
	redisClient *database.RedisClient
}

// NewGeoRepository creates a new geo index repository
func NewGeoRepository(redisClient *database.RedisClient) *GeoRepo {
	return &GeoRepo{redisClient: redisClient}
}

func geoKey(regionID string) string {
	return fmt.Sprintf(constants.KeyRegionDriverGeo, regionID)
}

// Add places or moves a driver in the region's index
func (r *GeoRepo) Add(ctx context.Context, regionID, driverID string, location models.Location) error {
	if err := r.redisClient.GeoAdd(ctx, geoKey(regionID), location.Longitude, location.Latitude, driverID); err != nil {
		return fmt.Errorf("failed to add to geo index: %w", err)
	}
	return nil
}

// Remove drops a driver from the region's index
func (r *GeoRepo) Remove(ctx context.Context, regionID, driverID string) error {
	if _, err := r.redisClient.ZRem(ctx, geoKey(regionID), driverID); err != nil {
		return fmt.Errorf("failed to remove from geo index: %w", err)
	}
	return nil
}

// Nearby lists indexed drivers within radiusKm, nearest first
func (r *GeoRepo) Nearby(ctx context.Context, regionID string, location models.Location, radiusKm float64, limit int) ([]models.NearbyDriver, error) {
	results, err := r.redisClient.GeoRadius(ctx, geoKey(regionID),
		location.Longitude, location.Latitude, radiusKm, "km", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search geo index: %w", err)
	}

	nearby := make([]models.NearbyDriver, 0, len(results))
	for _, result := range results {
		nearby = append(nearby, models.NearbyDriver{
			DriverID: result.Name,
			Location: models.Location{
				Latitude:  result.Latitude,
				Longitude: result.Longitude,
			},
			DistanceKm: result.Dist,
		})
	}
	return nearby, nil
}
