package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Dispatch events
	EventOfferIssued    = "offer_issued"
	EventOfferWithdrawn = "offer_withdrawn"
	EventBatchUpdated   = "batch_updated"

	// Driver events
	EventLocationUpdate = "location_update"
	EventOfferResponse  = "offer_response"
)

// WebSocket error codes
const (
	ErrorInvalidFormat    = "invalid_format"
	ErrorValidationFailed = "validation_failed"
	ErrorUnauthorized     = "unauthorized"
	ErrorInternalError    = "internal_error"
	ErrorStaleOffer       = "offer_unavailable"
	ErrorNotActiveDriver  = "not_active_driver"
)

// ErrorSeverity decides how much detail a client sees
type ErrorSeverity int

const (
	ErrorSeverityClient ErrorSeverity = iota
	ErrorSeverityServer
	ErrorSeveritySecurity
)
