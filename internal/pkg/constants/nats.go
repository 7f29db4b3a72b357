package constants

// NATS Subjects
const (
	// Order ingestion
	SubjectOrderReady    = "order.ready"
	SubjectOrderCanceled = "order.canceled"
	SubjectOrderPickedUp = "order.picked_up"
	SubjectDeliveryDone  = "delivery.completed"

	// Driver client
	SubjectOfferResponse     = "driver.offer.response"
	SubjectDriverStatus      = "driver.status"
	SubjectDriverLocation    = "driver.location"
	SubjectDriverDeactivated = "driver.deactivated"

	// Onboarding
	SubjectApplicantReady    = "applicant.ready"
	SubjectApplicantPriority = "applicant.priority"

	// Dispatch, published for the driver client
	SubjectOfferIssued    = "dispatch.offer.issued"
	SubjectOfferWithdrawn = "dispatch.offer.withdrawn"
	SubjectOfferExpired   = "dispatch.offer.expired"
	SubjectBatchUpdated   = "dispatch.batch.updated"
)

// JetStream stream layout
const (
	StreamDispatch      = "DISPATCH"
	StreamDispatchSubjs = "dispatch.>"
)
