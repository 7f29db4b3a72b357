package models

import "time"

// OrderReadyEvent is emitted by order ingestion once the restaurant confirms
type OrderReadyEvent struct {
	OrderID           string   `json:"order_id"`
	RestaurantID      string   `json:"restaurant_id"`
	RegionID          string   `json:"region_id,omitempty"`
	Pickup            Location `json:"pickup"`
	Dropoff           Location `json:"dropoff"`
	Subtotal          float64  `json:"subtotal"`
	Fees              float64  `json:"fees"`
	Total             float64  `json:"total"`
	EstimatedDistance float64  `json:"estimated_distance_km"`
	EstimatedDuration int64    `json:"estimated_duration_seconds"`
}

// OfferResponseEvent is a driver's answer to an offer
type OfferResponseEvent struct {
	AssignmentID string `json:"assignment_id"`
	DriverID     string `json:"driver_id"`
	Accepted     bool   `json:"accepted"`
}

// OfferExpiredEvent is fired by a timer once an offer deadline passes
type OfferExpiredEvent struct {
	AssignmentID string `json:"assignment_id"`
}

// DriverStatusEvent flips a driver online or offline
type DriverStatusEvent struct {
	DriverID string    `json:"driver_id"`
	Online   bool      `json:"online"`
	Position *Position `json:"position,omitempty"`
}

// OrderCanceledEvent is emitted when a customer or restaurant cancels
type OrderCanceledEvent struct {
	OrderID string `json:"order_id"`
	Reason  string `json:"reason"`
}

// OrderPickedUpEvent is emitted by the driver client at the restaurant
type OrderPickedUpEvent struct {
	OrderID  string `json:"order_id"`
	DriverID string `json:"driver_id"`
}

// DeliveryCompletedEvent is emitted by the driver client at the dropoff
type DeliveryCompletedEvent struct {
	OrderID  string `json:"order_id"`
	DriverID string `json:"driver_id"`
}

// DriverDeactivatedEvent removes a driver from the active pool
type DriverDeactivatedEvent struct {
	DriverID string `json:"driver_id"`
}

// ApplicantReadyEvent is emitted by onboarding once prerequisites are met
type ApplicantReadyEvent struct {
	ApplicantID   string `json:"applicant_id"`
	RegionID      string `json:"region_id"`
	PriorityScore int64  `json:"priority_score"`
}

// PriorityChangedEvent updates an applicant's ranking key
type PriorityChangedEvent struct {
	ApplicantID   string `json:"applicant_id"`
	RegionID      string `json:"region_id"`
	PriorityScore int64  `json:"priority_score"`
}

// OfferIssuedEvent is pushed to the driver client
type OfferIssuedEvent struct {
	AssignmentID string    `json:"assignment_id"`
	OrderID      string    `json:"order_id"`
	DriverID     string    `json:"driver_id"`
	Pickup       Location  `json:"pickup"`
	Dropoff      Location  `json:"dropoff"`
	Payout       float64   `json:"payout"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// OfferWithdrawnEvent tells a driver an offer is no longer available
type OfferWithdrawnEvent struct {
	AssignmentID string `json:"assignment_id"`
	OrderID      string `json:"order_id"`
	DriverID     string `json:"driver_id"`
	Reason       string `json:"reason"`
}

// BatchUpdatedEvent carries a driver's recomputed run
type BatchUpdatedEvent struct {
	BatchID  string       `json:"batch_id"`
	DriverID string       `json:"driver_id"`
	Status   BatchStatus  `json:"status"`
	Stops    []RouteStop  `json:"stops"`
	Orders   []BatchOrder `json:"orders"`
}

// AssignmentAcceptedEvent is consumed by payout and notification services
type AssignmentAcceptedEvent struct {
	AssignmentID string    `json:"assignment_id"`
	OrderID      string    `json:"order_id"`
	DriverID     string    `json:"driver_id"`
	Payout       float64   `json:"payout"`
	Batched      bool      `json:"batched"`
	AcceptedAt   time.Time `json:"accepted_at"`
}

// DeliveryCompletedIntent is consumed by the payout service
type DeliveryCompletedIntent struct {
	AssignmentID string    `json:"assignment_id"`
	OrderID      string    `json:"order_id"`
	DriverID     string    `json:"driver_id"`
	Payout       float64   `json:"payout"`
	CompletedAt  time.Time `json:"completed_at"`
}

// DeliveryCanceledIntent is the compensating transition for an accepted order
type DeliveryCanceledIntent struct {
	AssignmentID string    `json:"assignment_id"`
	OrderID      string    `json:"order_id"`
	DriverID     string    `json:"driver_id"`
	Payout       float64   `json:"payout"`
	Reason       string    `json:"reason"`
	CanceledAt   time.Time `json:"canceled_at"`
}

// OrderUnassignableEvent escalates an order to the admin surface
type OrderUnassignableEvent struct {
	OrderID  string    `json:"order_id"`
	RegionID string    `json:"region_id"`
	Attempts int       `json:"attempts"`
	At       time.Time `json:"at"`
}

// DriverActivatedEvent announces a promotion from the queue
type DriverActivatedEvent struct {
	DriverID string    `json:"driver_id"`
	RegionID string    `json:"region_id"`
	At       time.Time `json:"at"`
}
