package models

import "time"

// AssignmentStatus is the lifecycle of one offer
type AssignmentStatus string

const (
	AssignmentStatusOffered   AssignmentStatus = "offered"
	AssignmentStatusAccepted  AssignmentStatus = "accepted"
	AssignmentStatusRejected  AssignmentStatus = "rejected"
	AssignmentStatusExpired   AssignmentStatus = "expired"
	AssignmentStatusWithdrawn AssignmentStatus = "withdrawn"
	AssignmentStatusCanceled  AssignmentStatus = "canceled"
	AssignmentStatusCompleted AssignmentStatus = "completed"
)

// Reasons an offer is withdrawn from a driver who can no longer take it
const (
	WithdrawReasonDriverOffline     = "driver_offline"
	WithdrawReasonDriverDeactivated = "driver_deactivated"
)

// OrderAssignment binds an order to a driver through an offer
type OrderAssignment struct {
	ID          string           `json:"id" db:"id"`
	OrderID     string           `json:"order_id" db:"order_id"`
	DriverID    string           `json:"driver_id" db:"driver_id"`
	Status      AssignmentStatus `json:"status" db:"status"`
	Attempt     int              `json:"attempt" db:"attempt"`
	Payout      float64          `json:"payout" db:"payout"`
	OfferedAt   time.Time        `json:"offered_at" db:"offered_at"`
	ExpiresAt   time.Time        `json:"expires_at" db:"expires_at"`
	RespondedAt *time.Time       `json:"responded_at,omitempty" db:"responded_at"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at" db:"updated_at"`
}

// ExpiredAt reports whether the hard deadline has passed at now
func (a *OrderAssignment) ExpiredAt(now time.Time) bool {
	return !now.Before(a.ExpiresAt)
}

// AcceptResult is the outcome of a committed accept
type AcceptResult struct {
	Assignment OrderAssignment   `json:"assignment"`
	Order      Order             `json:"order"`
	Withdrawn  []OrderAssignment `json:"withdrawn"`
}

// OfferResolution is the outcome of a reject or expiry: the resolved offer
// and whatever the order moved on to
type OfferResolution struct {
	Assignment   OrderAssignment  `json:"assignment"`
	Reoffer      *OrderAssignment `json:"reoffer,omitempty"`
	Unassignable bool             `json:"unassignable"`
}

// CancelResult describes what a cancellation touched
type CancelResult struct {
	Order          Order            `json:"order"`
	Withdrawn      *OrderAssignment `json:"withdrawn,omitempty"`
	Canceled       *OrderAssignment `json:"canceled,omitempty"`
	DriverReleased bool             `json:"driver_released"`
}

// CompletionResult describes a finished delivery
type CompletionResult struct {
	Assignment     OrderAssignment `json:"assignment"`
	DriverReleased bool            `json:"driver_released"`
}

// DispatchOutcome is what became of a ready order: folded into a busy
// driver's batch, offered to an idle driver, or escalated
type DispatchOutcome struct {
	Order        Order            `json:"order"`
	Offer        *OrderAssignment `json:"offer,omitempty"`
	Batch        *BatchedDelivery `json:"batch,omitempty"`
	Unassignable bool             `json:"unassignable"`
}
