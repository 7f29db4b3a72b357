package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/kurir/internal/pkg/database"
	"github.com/piresc/kurir/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	monas    = models.Location{Latitude: -6.1754, Longitude: 106.8271}
	bundaran = models.Location{Latitude: -6.1950, Longitude: 106.8228}
	bogor    = models.Location{Latitude: -6.5971, Longitude: 106.8060}
)

func setupGeo(t *testing.T) (*miniredis.Miniredis, *GeoRepo) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, NewGeoRepository(&database.RedisClient{Client: client})
}

func TestGeoRepo_NearbyOrdersByDistance(t *testing.T) {
	// Arrange
	_, geo := setupGeo(t)
	ctx := context.Background()
	require.NoError(t, geo.Add(ctx, "region-1", "far", bundaran))
	require.NoError(t, geo.Add(ctx, "region-1", "near", monas))
	require.NoError(t, geo.Add(ctx, "region-1", "out", bogor))
	require.NoError(t, geo.Add(ctx, "region-2", "other-region", monas))

	// Act
	hits, err := geo.Nearby(ctx, "region-1", monas, 5, 0)

	// Assert
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "near", hits[0].DriverID)
	assert.Equal(t, "far", hits[1].DriverID)
	assert.InDelta(t, 2.2, hits[1].DistanceKm, 0.3)
}

func TestGeoRepo_Remove(t *testing.T) {
	_, geo := setupGeo(t)
	ctx := context.Background()
	require.NoError(t, geo.Add(ctx, "region-1", "drv-1", monas))

	require.NoError(t, geo.Remove(ctx, "region-1", "drv-1"))
	require.NoError(t, geo.Remove(ctx, "region-1", "drv-1"))

	hits, err := geo.Nearby(ctx, "region-1", monas, 5, 0)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestGeoRepo_RedisDown(t *testing.T) {
	mr, geo := setupGeo(t)
	mr.Close()

	_, err := geo.Nearby(context.Background(), "region-1", monas, 5, 0)

	assert.Error(t, err)
}
