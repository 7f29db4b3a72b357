package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/kurir/internal/pkg/models"
)

const earthRadiusKm = 6371.0

// RegionHashPrecision is long enough to tell neighbourhoods apart
const RegionHashPrecision uint = 7

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// HashPrefixes returns every prefix of the location's geohash, longest first,
// for matching against region geo prefixes.
func HashPrefixes(location models.Location) []string {
	hash := EncodeLocation(location, RegionHashPrecision)
	prefixes := make([]string, 0, len(hash))
	for i := len(hash); i > 0; i-- {
		prefixes = append(prefixes, hash[:i])
	}
	return prefixes
}

// DistanceKm is the great-circle distance between two points (haversine)
func DistanceKm(a, b models.Location) float64 {
	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// ValidLocation rejects coordinates outside the WGS84 range and the null island default
func ValidLocation(l models.Location) bool {
	if l.Latitude == 0 && l.Longitude == 0 {
		return false
	}
	return l.Latitude >= -90 && l.Latitude <= 90 && l.Longitude >= -180 && l.Longitude <= 180
}
