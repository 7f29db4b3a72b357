package batching

import (
	"context"

	"github.com/piresc/kurir/internal/pkg/models"
)

// RoutingGW asks the routing provider for per-leg distances and durations
// along an ordered list of waypoints
type RoutingGW interface {
	Route(ctx context.Context, waypoints []models.Location) (*models.Route, error)
}

// CandidateSource lists busy drivers near a pickup
type CandidateSource interface {
	BusyNear(ctx context.Context, location models.Location, regionID string, radiusKm float64) ([]models.Candidate, error)
}
