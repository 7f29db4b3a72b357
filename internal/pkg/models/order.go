package models

import "time"

// OrderStatus is the customer-facing lifecycle of an order
type OrderStatus string

const (
	OrderStatusPending      OrderStatus = "pending"
	OrderStatusAssigned     OrderStatus = "assigned"
	OrderStatusPickedUp     OrderStatus = "picked_up"
	OrderStatusDelivered    OrderStatus = "delivered"
	OrderStatusCanceled     OrderStatus = "canceled"
	OrderStatusUnassignable OrderStatus = "unassignable"
)

// DispatchState tracks where an order is in the offer loop
type DispatchState string

const (
	DispatchStatePending      DispatchState = "pending"
	DispatchStateOffering     DispatchState = "offering"
	DispatchStateReoffering   DispatchState = "reoffering"
	DispatchStateCommitted    DispatchState = "committed"
	DispatchStateUnassignable DispatchState = "unassignable"
	DispatchStateCanceled     DispatchState = "canceled"
)

// Offerable reports whether a new offer may be issued in this state
func (s DispatchState) Offerable() bool {
	return s == DispatchStatePending || s == DispatchStateOffering || s == DispatchStateReoffering
}

// Order is a ready order awaiting or carrying a driver
type Order struct {
	ID                string        `json:"id"`
	RestaurantID      string        `json:"restaurant_id"`
	RegionID          string        `json:"region_id"`
	Pickup            Location      `json:"pickup"`
	Dropoff           Location      `json:"dropoff"`
	Subtotal          float64       `json:"subtotal"`
	Fees              float64       `json:"fees"`
	Total             float64       `json:"total"`
	Status            OrderStatus   `json:"order_status"`
	DispatchState     DispatchState `json:"dispatch_state"`
	DriverID          *string       `json:"driver_id,omitempty"`
	OfferAttempts     int           `json:"offer_attempts"`
	EstimatedDistance float64       `json:"estimated_distance_km"`
	EstimatedDuration time.Duration `json:"estimated_duration"`
	PickedUpAt        *time.Time    `json:"picked_up_at,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// IsPickedUp reports whether only the dropoff remains
func (o *Order) IsPickedUp() bool {
	return o.Status == OrderStatusPickedUp
}

// OrderRow is the flat orders row
type OrderRow struct {
	ID                string        `db:"id"`
	RestaurantID      string        `db:"restaurant_id"`
	RegionID          string        `db:"region_id"`
	PickupLatitude    float64       `db:"pickup_latitude"`
	PickupLongitude   float64       `db:"pickup_longitude"`
	DropoffLatitude   float64       `db:"dropoff_latitude"`
	DropoffLongitude  float64       `db:"dropoff_longitude"`
	Subtotal          float64       `db:"subtotal"`
	Fees              float64       `db:"fees"`
	Total             float64       `db:"total"`
	Status            OrderStatus   `db:"order_status"`
	DispatchState     DispatchState `db:"dispatch_state"`
	DriverID          *string       `db:"driver_id"`
	OfferAttempts     int           `db:"offer_attempts"`
	EstimatedDistance float64       `db:"estimated_distance_km"`
	EstimatedSeconds  int64         `db:"estimated_duration_seconds"`
	PickedUpAt        *time.Time    `db:"picked_up_at"`
	CreatedAt         time.Time     `db:"created_at"`
	UpdatedAt         time.Time     `db:"updated_at"`
}

// ToOrder converts the row to an Order
func (r OrderRow) ToOrder() Order {
	return Order{
		ID:                r.ID,
		RestaurantID:      r.RestaurantID,
		RegionID:          r.RegionID,
		Pickup:            Location{Latitude: r.PickupLatitude, Longitude: r.PickupLongitude},
		Dropoff:           Location{Latitude: r.DropoffLatitude, Longitude: r.DropoffLongitude},
		Subtotal:          r.Subtotal,
		Fees:              r.Fees,
		Total:             r.Total,
		Status:            r.Status,
		DispatchState:     r.DispatchState,
		DriverID:          r.DriverID,
		OfferAttempts:     r.OfferAttempts,
		EstimatedDistance: r.EstimatedDistance,
		EstimatedDuration: time.Duration(r.EstimatedSeconds) * time.Second,
		PickedUpAt:        r.PickedUpAt,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

// NewOrderFromEvent builds a pending order from an order ready event
func NewOrderFromEvent(event OrderReadyEvent, regionID string, now time.Time) Order {
	return Order{
		ID:                event.OrderID,
		RestaurantID:      event.RestaurantID,
		RegionID:          regionID,
		Pickup:            event.Pickup,
		Dropoff:           event.Dropoff,
		Subtotal:          event.Subtotal,
		Fees:              event.Fees,
		Total:             event.Total,
		Status:            OrderStatusPending,
		DispatchState:     DispatchStatePending,
		EstimatedDistance: event.EstimatedDistance,
		EstimatedDuration: time.Duration(event.EstimatedDuration) * time.Second,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
