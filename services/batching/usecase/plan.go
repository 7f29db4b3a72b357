package usecase

import (
	"github.com/piresc/kurir/internal/pkg/models"
)

// plan is a candidate fold computed without touching storage
type plan struct {
	load     *models.DriverLoad
	stops    []models.RouteStop
	detourKm float64
}

// evaluate decides whether order can be folded onto load and, if so,
// sequences the combined stops from the driver's position. The detour is the
// extra straight-line distance the combined run costs over the current one.
func evaluate(cfg models.BatchingConfig, speedKmh float64, load *models.DriverLoad, order *models.Order) (*plan, bool) {
	if len(load.Orders) == 0 || len(load.Orders) >= cfg.MaxBatchSize {
		return nil, false
	}
	for _, o := range load.Orders {
		if o.ID == order.ID {
			return nil, false
		}
	}

	start := load.Driver.Position.Location
	base := PathKm(start, SequenceStops(start, load.Orders))

	combined := make([]models.Order, 0, len(load.Orders)+1)
	combined = append(combined, load.Orders...)
	combined = append(combined, *order)
	stops := SequenceStops(start, combined)

	detour := PathKm(start, stops) - base
	if detour < 0 {
		detour = 0
	}
	if cfg.MaxDetourKm > 0 && detour > cfg.MaxDetourKm {
		return nil, false
	}
	if cfg.MaxDetourMinutes > 0 && detour/speedKmh*60 > cfg.MaxDetourMinutes {
		return nil, false
	}
	return &plan{load: load, stops: stops, detourKm: detour}, true
}
