package constants

// Redis key formats
const (
	// Availability
	KeyRegionDriverGeo = "drivers:geo:%s" // Format: drivers:geo:{region_id}

	// Dispatch
	KeyOfferExpiry = "dispatch:offer:expiry" // Sorted set of assignment ids scored by expires_at

	// Rate limiting
	KeyRateLimitLocation = "ratelimit:location"
)
