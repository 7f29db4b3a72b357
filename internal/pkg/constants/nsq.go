package constants

// NSQ topics consumed by payout and notification services
const (
	TopicAssignmentAccepted = "assignment_accepted"
	TopicDeliveryCompleted  = "delivery_completed"
	TopicDeliveryCanceled   = "delivery_canceled"
	TopicOrderUnassignable  = "order_unassignable"
	TopicDriverActivated    = "driver_activated"
)
