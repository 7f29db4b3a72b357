package usecase

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/piresc/kurir/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(lng float64) models.Location {
	return models.Location{Latitude: 0, Longitude: lng}
}

func order(id string, pickupLng, dropoffLng float64, pickedUp bool) models.Order {
	status := models.OrderStatusAssigned
	if pickedUp {
		status = models.OrderStatusPickedUp
	}
	return models.Order{
		ID:            id,
		RegionID:      "region-1",
		Pickup:        at(pickupLng),
		Dropoff:       at(dropoffLng),
		Status:        status,
		DispatchState: models.DispatchStateCommitted,
	}
}

func stopKeys(stops []models.RouteStop) []string {
	keys := make([]string, 0, len(stops))
	for _, s := range stops {
		keys = append(keys, s.OrderID+":"+string(s.Kind))
	}
	return keys
}

func TestSequenceStops_NearestFeasible(t *testing.T) {
	orders := []models.Order{
		order("order-a", 0, 0.03, true),
		order("order-b", 0.01, 0.02, false),
	}

	stops := SequenceStops(at(0), orders)

	assert.Equal(t, []string{"order-b:pickup", "order-b:dropoff", "order-a:dropoff"}, stopKeys(stops))
}

func TestSequenceStops_DropoffWaitsForPickup(t *testing.T) {
	// the dropoff is right next to the driver but its pickup is far away
	orders := []models.Order{order("order-a", 0.05, 0.001, false)}

	stops := SequenceStops(at(0), orders)

	assert.Equal(t, []string{"order-a:pickup", "order-a:dropoff"}, stopKeys(stops))
}

func TestSequenceStops_TiesBreakOnOrderID(t *testing.T) {
	orders := []models.Order{
		order("order-b", 0.01, 0.02, false),
		order("order-a", 0.01, 0.02, false),
	}

	stops := SequenceStops(at(0), orders)

	assert.Equal(t, []string{"order-a:pickup", "order-b:pickup", "order-a:dropoff", "order-b:dropoff"}, stopKeys(stops))
}

func TestSequenceStops_PickupPrecedesDropoff(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 200; run++ {
		n := 1 + rng.Intn(5)
		orders := make([]models.Order, 0, n)
		for i := 0; i < n; i++ {
			orders = append(orders, order(fmt.Sprintf("order-%d", i),
				rng.Float64()*0.1, rng.Float64()*0.1, rng.Intn(3) == 0))
		}

		stops := SequenceStops(at(rng.Float64()*0.1), orders)

		pickupAt := make(map[string]int)
		dropoffAt := make(map[string]int)
		for i, s := range stops {
			if s.Kind == models.StopPickup {
				pickupAt[s.OrderID] = i
			} else {
				dropoffAt[s.OrderID] = i
			}
		}
		require.Len(t, dropoffAt, n, "run %d", run)
		for _, o := range orders {
			p, hasPickup := pickupAt[o.ID]
			if o.IsPickedUp() {
				assert.False(t, hasPickup, "run %d: %s was already picked up", run, o.ID)
				continue
			}
			require.True(t, hasPickup, "run %d: %s has no pickup", run, o.ID)
			assert.Less(t, p, dropoffAt[o.ID], "run %d: %s", run, o.ID)
		}
	}
}

func TestSequenceStops_Empty(t *testing.T) {
	assert.Empty(t, SequenceStops(at(0), nil))
}

func TestBatchOrders(t *testing.T) {
	orders := []models.Order{
		order("order-a", 0.01, 0.05, false),
		order("order-b", 0.012, 0.045, false),
	}
	stops := SequenceStops(at(0), orders)
	route := &models.Route{Legs: []models.RouteLeg{
		{Duration: 2 * 60e9}, {Duration: 2 * 60e9}, {Duration: 2 * 60e9}, {Duration: 2 * 60e9},
	}}
	ApplyETAs(stops, route, fixedNow, 60e9)

	sequence, rows := BatchOrders("batch-1", stops, true)

	assert.Equal(t, []string{"order-a", "order-b"}, sequence)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].SequenceNumber)
	assert.Equal(t, 2, rows[1].SequenceNumber)
	assert.Equal(t, fixedNow.Add(2*60e9), *rows[0].PickupETA)
	assert.Equal(t, fixedNow.Add(11*60e9), *rows[0].DeliveryETA)
	assert.Equal(t, fixedNow.Add(5*60e9), *rows[1].PickupETA)
	assert.Equal(t, fixedNow.Add(8*60e9), *rows[1].DeliveryETA)
	for _, row := range rows {
		assert.Equal(t, "batch-1", row.BatchID)
		assert.False(t, row.DeliveryETA.Before(*row.PickupETA))
	}
}

func TestEvaluate(t *testing.T) {
	cfg := models.BatchingConfig{MaxBatchSize: 2, MaxDetourKm: 3, MaxDetourMinutes: 10}
	driver := models.DriverProfile{ID: "driver-1", Status: models.DriverStatusBusy}
	newOrder := order("order-new", 0.012, 0.045, false)
	newOrder.Status = models.OrderStatusPending
	newOrder.DispatchState = models.DispatchStatePending

	t.Run("on the way", func(t *testing.T) {
		load := &models.DriverLoad{Driver: driver, Orders: []models.Order{order("order-a", 0.01, 0.05, false)}}

		p, ok := evaluate(cfg, 25, load, &newOrder)

		require.True(t, ok)
		assert.InDelta(t, 0, p.detourKm, 1e-6)
		assert.Len(t, p.stops, 4)
	})

	t.Run("no committed order", func(t *testing.T) {
		_, ok := evaluate(cfg, 25, &models.DriverLoad{Driver: driver}, &newOrder)

		assert.False(t, ok)
	})

	t.Run("at the batch size cap", func(t *testing.T) {
		load := &models.DriverLoad{Driver: driver, Orders: []models.Order{
			order("order-a", 0.01, 0.05, false),
			order("order-b", 0.02, 0.04, true),
		}}

		_, ok := evaluate(cfg, 25, load, &newOrder)

		assert.False(t, ok)
	})

	t.Run("detour too long", func(t *testing.T) {
		load := &models.DriverLoad{Driver: driver, Orders: []models.Order{order("order-a", -0.01, -0.05, false)}}

		_, ok := evaluate(cfg, 25, load, &newOrder)

		assert.False(t, ok)
	})

	t.Run("detour too slow", func(t *testing.T) {
		// roughly 2.2 km of detour at 25 km/h is over 5 minutes
		slow := cfg
		slow.MaxDetourMinutes = 1
		load := &models.DriverLoad{Driver: driver, Orders: []models.Order{order("order-a", 0.01, 0.05, false)}}
		far := order("order-new", 0.06, 0.07, false)

		_, ok := evaluate(slow, 25, load, &far)

		assert.False(t, ok)
	})
}
