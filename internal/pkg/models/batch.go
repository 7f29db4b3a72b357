package models

import "time"

// BatchStatus is the lifecycle of a batched run
type BatchStatus string

const (
	BatchStatusPlanned    BatchStatus = "planned"
	BatchStatusInProgress BatchStatus = "in_progress"
	BatchStatusCompleted  BatchStatus = "completed"
)

// StopKind distinguishes the two stops each order contributes
type StopKind string

const (
	StopPickup  StopKind = "pickup"
	StopDropoff StopKind = "dropoff"
)

// RouteStop is one stop of a sequenced run
type RouteStop struct {
	OrderID  string    `json:"order_id"`
	Kind     StopKind  `json:"kind"`
	Location Location  `json:"location"`
	ETA      time.Time `json:"eta"`
}

// RouteLeg is one leg returned by the routing provider
type RouteLeg struct {
	DistanceKm float64       `json:"distance_km"`
	Duration   time.Duration `json:"duration"`
}

// Route is the routing provider's answer for an ordered list of stops
type Route struct {
	Legs     []RouteLeg `json:"legs"`
	Polyline string     `json:"polyline"`
}

// TotalDistanceKm sums leg distances
func (r *Route) TotalDistanceKm() float64 {
	total := 0.0
	for _, leg := range r.Legs {
		total += leg.DistanceKm
	}
	return total
}

// TotalDuration sums leg durations
func (r *Route) TotalDuration() time.Duration {
	var total time.Duration
	for _, leg := range r.Legs {
		total += leg.Duration
	}
	return total
}

// OptimizedRoute is the persisted route payload of a batch
type OptimizedRoute struct {
	Stops    []RouteStop `json:"stops"`
	Legs     []RouteLeg  `json:"legs"`
	Polyline string      `json:"polyline"`
}

// BatchedDelivery is a set of orders sequenced onto one driver's run
type BatchedDelivery struct {
	ID            string         `json:"id"`
	DriverID      string         `json:"driver_id"`
	OrderSequence []string       `json:"order_sequence"`
	Route         OptimizedRoute `json:"optimized_route"`
	TotalDistance float64        `json:"total_distance_km"`
	TotalDuration time.Duration  `json:"total_duration"`
	Status        BatchStatus    `json:"status"`
	Orders        []BatchOrder   `json:"orders"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// BatchOrder is the join row between a batch and one of its orders
type BatchOrder struct {
	BatchID        string     `json:"batch_id" db:"batch_id"`
	OrderID        string     `json:"order_id" db:"order_id"`
	SequenceNumber int        `json:"sequence_number" db:"sequence_number"`
	PickupETA      *time.Time `json:"pickup_eta,omitempty" db:"pickup_eta"`
	DeliveryETA    *time.Time `json:"delivery_eta,omitempty" db:"delivery_eta"`
}

// DriverLoad is everything a driver is currently committed to
type DriverLoad struct {
	Driver DriverProfile    `json:"driver"`
	Orders []Order          `json:"orders"`
	Batch  *BatchedDelivery `json:"batch,omitempty"`
}

// ActiveOrderIDs lists the ids of the orders a driver is carrying
func (l *DriverLoad) ActiveOrderIDs() []string {
	ids := make([]string, 0, len(l.Orders))
	for _, o := range l.Orders {
		ids = append(ids, o.ID)
	}
	return ids
}

// BatchCommit is one fold persisted atomically. ExpectedLoad is the set of
// order ids the plan was computed from; a different load at commit time is a
// conflict.
type BatchCommit struct {
	Batch        BatchedDelivery `json:"batch"`
	Assignment   OrderAssignment `json:"assignment"`
	ExpectedLoad []string        `json:"expected_load"`
}

// Absorption is a ready order folded onto a busy driver's run
type Absorption struct {
	Order      Order           `json:"order"`
	Batch      BatchedDelivery `json:"batch"`
	Assignment OrderAssignment `json:"assignment"`
	DetourKm   float64         `json:"detour_km"`
}
