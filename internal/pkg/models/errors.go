package models

import "errors"

var (
	// ErrDuplicateEntry is returned when an applicant is already queued for a region
	ErrDuplicateEntry = errors.New("applicant already queued for region")

	// ErrNotActiveDriver is returned by availability operations on a non-active driver
	ErrNotActiveDriver = errors.New("driver is not active")

	// ErrStaleAssignment is returned for a response to an offer that already left the offered state
	ErrStaleAssignment = errors.New("offer no longer available")

	// ErrNoCandidatesAvailable is returned when an order exhausts its candidate pool
	ErrNoCandidatesAvailable = errors.New("no candidates available")

	// ErrCapacityExceeded is returned when a promotion would exceed the region quota
	ErrCapacityExceeded = errors.New("region capacity exceeded")

	// ErrRoutingProviderUnavailable is returned when the routing provider cannot answer
	ErrRoutingProviderUnavailable = errors.New("routing provider unavailable")

	ErrRegionNotFound       = errors.New("region not found")
	ErrEntryNotFound        = errors.New("queue entry not found")
	ErrDriverNotFound       = errors.New("driver not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrAssignmentNotFound   = errors.New("assignment not found")
	ErrBatchNotFound        = errors.New("batch not found")
	ErrNotAssignee          = errors.New("assignment belongs to another driver")
	ErrDriverUnavailable    = errors.New("driver cannot take another order")
	ErrDriverBusy           = errors.New("driver has outstanding deliveries")
	ErrOfferOutstanding     = errors.New("order already has an outstanding offer")
	ErrOrderNotDispatchable = errors.New("order is not dispatchable")
	ErrPrerequisitesNotMet  = errors.New("applicant prerequisites not met")
	ErrBatchConflict        = errors.New("driver load changed while batching")
	ErrInvalidInput         = errors.New("invalid input")
)
