package usecase

import (
	"time"

	"github.com/piresc/kurir/internal/pkg/models"
	"github.com/piresc/kurir/internal/utils"
)

// SequenceStops orders the outstanding stops of orders starting from start.
// It is a greedy nearest-feasible-next-stop heuristic, not an optimum: at
// each step it moves to the closest stop whose precondition holds, where a
// dropoff is only feasible once its own pickup was visited. Orders already
// picked up contribute only their dropoff. Ties break on order id, pickups
// first, so the result is deterministic.
func SequenceStops(start models.Location, orders []models.Order) []models.RouteStop {
	type pending struct {
		order    *models.Order
		pickedUp bool
		done     bool
	}

	open := make([]*pending, 0, len(orders))
	remaining := 0
	for i := range orders {
		p := &pending{order: &orders[i], pickedUp: orders[i].IsPickedUp()}
		open = append(open, p)
		if p.pickedUp {
			remaining++
		} else {
			remaining += 2
		}
	}

	stops := make([]models.RouteStop, 0, remaining)
	here := start
	for len(stops) < remaining {
		var (
			best     *pending
			bestStop models.RouteStop
			bestKm   float64
		)
		for _, p := range open {
			if p.done {
				continue
			}
			stop := nextStop(p.order, p.pickedUp)
			km := utils.DistanceKm(here, stop.Location)
			if best == nil || km < bestKm || (km == bestKm && stopBefore(stop, bestStop)) {
				best, bestStop, bestKm = p, stop, km
			}
		}

		stops = append(stops, bestStop)
		here = bestStop.Location
		if bestStop.Kind == models.StopPickup {
			best.pickedUp = true
		} else {
			best.done = true
		}
	}
	return stops
}

func nextStop(order *models.Order, pickedUp bool) models.RouteStop {
	if pickedUp {
		return models.RouteStop{OrderID: order.ID, Kind: models.StopDropoff, Location: order.Dropoff}
	}
	return models.RouteStop{OrderID: order.ID, Kind: models.StopPickup, Location: order.Pickup}
}

func stopBefore(a, b models.RouteStop) bool {
	if a.OrderID != b.OrderID {
		return a.OrderID < b.OrderID
	}
	return a.Kind == models.StopPickup && b.Kind == models.StopDropoff
}

// PathKm is the straight-line length of visiting stops in order from start
func PathKm(start models.Location, stops []models.RouteStop) float64 {
	total := 0.0
	here := start
	for _, stop := range stops {
		total += utils.DistanceKm(here, stop.Location)
		here = stop.Location
	}
	return total
}

// Waypoints lists start followed by every stop location, as sent to the
// routing provider
func Waypoints(start models.Location, stops []models.RouteStop) []models.Location {
	points := make([]models.Location, 0, len(stops)+1)
	points = append(points, start)
	for _, stop := range stops {
		points = append(points, stop.Location)
	}
	return points
}

// ApplyETAs stamps each stop with its arrival time: leg durations
// accumulated from departure plus serviceTime spent at every earlier stop.
// route must hold one leg per stop.
func ApplyETAs(stops []models.RouteStop, route *models.Route, departure time.Time, serviceTime time.Duration) {
	at := departure
	for i := range stops {
		at = at.Add(route.Legs[i].Duration)
		stops[i].ETA = at
		at = at.Add(serviceTime)
	}
}

// BatchOrders derives one row per order from sequenced stops. Orders are
// numbered by their first stop; an order already picked up has no pickup ETA.
func BatchOrders(batchID string, stops []models.RouteStop, withETAs bool) ([]string, []models.BatchOrder) {
	index := make(map[string]int)
	var (
		sequence []string
		rows     []models.BatchOrder
	)
	for _, stop := range stops {
		i, seen := index[stop.OrderID]
		if !seen {
			i = len(rows)
			index[stop.OrderID] = i
			sequence = append(sequence, stop.OrderID)
			rows = append(rows, models.BatchOrder{
				BatchID:        batchID,
				OrderID:        stop.OrderID,
				SequenceNumber: i + 1,
			})
		}
		if !withETAs {
			continue
		}
		eta := stop.ETA
		if stop.Kind == models.StopPickup {
			rows[i].PickupETA = &eta
		} else {
			rows[i].DeliveryETA = &eta
		}
	}
	return sequence, rows
}
