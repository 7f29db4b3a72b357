package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/piresc/kurir/internal/pkg/circuitbreaker"
	httpclient "github.com/piresc/kurir/internal/pkg/http"
	"github.com/piresc/kurir/internal/pkg/logger"
	"github.com/piresc/kurir/internal/pkg/models"
	"github.com/piresc/kurir/internal/pkg/retry"
)

const routesPath = "/v1/routes"

type waypoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type routeRequest struct {
	Waypoints []waypoint `json:"waypoints"`
}

type routeLeg struct {
	DistanceMeters  float64 `json:"distance_meters"`
	DurationSeconds float64 `json:"duration_seconds"`
}

type routeResponse struct {
	Legs     []routeLeg `json:"legs"`
	Polyline string     `json:"polyline"`
}

// RoutingGateway calls the external routing provider
type RoutingGateway struct {
	client *httpclient.EnhancedClient
}

// NewRoutingGateway creates the gateway. With no provider URL configured
// every request fails as unavailable.
func NewRoutingGateway(cfg *models.Config) *RoutingGateway {
	if cfg.Services.RoutingProviderURL == "" {
		logger.Warn("Routing provider URL not configured, batching disabled")
		return &RoutingGateway{}
	}

	client := httpclient.NewEnhancedClient(
		strings.TrimRight(cfg.Services.RoutingProviderURL, "/"),
		cfg.Services.RoutingTimeout,
		retry.FromModel(cfg.Retry),
		circuitbreaker.FromModel("routing", cfg.CircuitBreaker),
	)
	return &RoutingGateway{client: client}
}

// Route returns one leg per consecutive pair of waypoints
func (g *RoutingGateway) Route(ctx context.Context, waypoints []models.Location) (*models.Route, error) {
	if g.client == nil {
		return nil, fmt.Errorf("%w: not configured", models.ErrRoutingProviderUnavailable)
	}
	if len(waypoints) < 2 {
		return &models.Route{}, nil
	}

	req := routeRequest{Waypoints: make([]waypoint, 0, len(waypoints))}
	for _, w := range waypoints {
		req.Waypoints = append(req.Waypoints, waypoint{Lat: w.Latitude, Lng: w.Longitude})
	}

	var resp routeResponse
	if err := g.client.DoJSON(ctx, http.MethodPost, routesPath, req, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrRoutingProviderUnavailable, err)
	}

	route := &models.Route{
		Legs:     make([]models.RouteLeg, 0, len(resp.Legs)),
		Polyline: resp.Polyline,
	}
	for _, leg := range resp.Legs {
		route.Legs = append(route.Legs, models.RouteLeg{
			DistanceKm: leg.DistanceMeters / 1000,
			Duration:   time.Duration(leg.DurationSeconds * float64(time.Second)),
		})
	}
	return route, nil
}
