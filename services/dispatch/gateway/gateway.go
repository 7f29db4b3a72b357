package gateway

import (
	"context"

	"github.com/piresc/kurir/internal/pkg/constants"
	"github.com/piresc/kurir/internal/pkg/logger"
	"github.com/piresc/kurir/internal/pkg/models"
)

// EventPublisher is the NATS side used for driver-facing events
type EventPublisher interface {
	Publish(subject string, v interface{}) error
}

// IntentPublisher is the NSQ side used for payout and notification intents
type IntentPublisher interface {
	PublishAsync(topic string, message interface{}) error
}

// DriverNotifier pushes events to drivers connected over WebSocket
type DriverNotifier interface {
	NotifyClient(driverID string, event string, data interface{}) bool
}

// DispatchGW publishes everything dispatch tells the outside world. Driver
// events go to NATS and, when the driver is connected, straight down their
// WebSocket; intents for payout and notification go to NSQ.
type DispatchGW struct {
	events   EventPublisher
	intents  IntentPublisher
	notifier DriverNotifier
}

// NewDispatchGW creates the gateway. A nil notifier disables WebSocket push.
func NewDispatchGW(events EventPublisher, intents IntentPublisher, notifier DriverNotifier) *DispatchGW {
	return &DispatchGW{events: events, intents: intents, notifier: notifier}
}

// PublishOfferIssued tells the driver about a new offer
func (g *DispatchGW) PublishOfferIssued(ctx context.Context, event models.OfferIssuedEvent) error {
	g.push(event.DriverID, constants.EventOfferIssued, event)
	return g.events.Publish(constants.SubjectOfferIssued, event)
}

// PublishOfferWithdrawn tells the driver an offer is gone
func (g *DispatchGW) PublishOfferWithdrawn(ctx context.Context, event models.OfferWithdrawnEvent) error {
	g.push(event.DriverID, constants.EventOfferWithdrawn, event)
	return g.events.Publish(constants.SubjectOfferWithdrawn, event)
}

// PublishBatchUpdated sends the driver their recomputed run
func (g *DispatchGW) PublishBatchUpdated(ctx context.Context, event models.BatchUpdatedEvent) error {
	g.push(event.DriverID, constants.EventBatchUpdated, event)
	return g.events.Publish(constants.SubjectBatchUpdated, event)
}

func (g *DispatchGW) PublishOrderUnassignable(ctx context.Context, event models.OrderUnassignableEvent) error {
	return g.intents.PublishAsync(constants.TopicOrderUnassignable, event)
}

func (g *DispatchGW) PublishAssignmentAccepted(ctx context.Context, event models.AssignmentAcceptedEvent) error {
	return g.intents.PublishAsync(constants.TopicAssignmentAccepted, event)
}

func (g *DispatchGW) PublishDeliveryCompleted(ctx context.Context, event models.DeliveryCompletedIntent) error {
	return g.intents.PublishAsync(constants.TopicDeliveryCompleted, event)
}

func (g *DispatchGW) PublishDeliveryCanceled(ctx context.Context, event models.DeliveryCanceledIntent) error {
	return g.intents.PublishAsync(constants.TopicDeliveryCanceled, event)
}

func (g *DispatchGW) PublishDriverActivated(ctx context.Context, event models.DriverActivatedEvent) error {
	return g.intents.PublishAsync(constants.TopicDriverActivated, event)
}

func (g *DispatchGW) push(driverID, event string, data interface{}) {
	if g.notifier == nil {
		return
	}
	if !g.notifier.NotifyClient(driverID, event, data) {
		logger.Debug("Driver not reachable over WebSocket, relying on NATS",
			logger.DriverID(driverID),
			logger.String("event", event))
	}
}
