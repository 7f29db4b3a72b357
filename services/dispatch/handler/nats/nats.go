package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/kurir/internal/pkg/constants"
	"github.com/piresc/kurir/internal/pkg/logger"
	"github.com/piresc/kurir/internal/pkg/metrics"
	"github.com/piresc/kurir/internal/pkg/models"
	natspkg "github.com/piresc/kurir/internal/pkg/nats"
	nrpkg "github.com/piresc/kurir/internal/pkg/newrelic"
	"github.com/piresc/kurir/services/dispatch"
)

const serviceName = "dispatch-service"

type route struct {
	subject string
	handle  func(ctx context.Context, data []byte) error
}

// DispatchHandler consumes the inbound event subjects
type DispatchHandler struct {
	dispatchUC dispatch.DispatchUC
	natsClient *natspkg.Client
	nrApp      *newrelic.Application
	metrics    metrics.Recorder
	consumers  []*natspkg.Consumer
}

// NewDispatchHandler creates a new dispatch NATS handler
func NewDispatchHandler(
	dispatchUC dispatch.DispatchUC,
	client *natspkg.Client,
	nrApp *newrelic.Application,
	recorder metrics.Recorder,
) *DispatchHandler {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &DispatchHandler{
		dispatchUC: dispatchUC,
		natsClient: client,
		nrApp:      nrApp,
		metrics:    recorder,
	}
}

// InitNATSConsumers starts one durable consumer per inbound subject
func (h *DispatchHandler) InitNATSConsumers() error {
	for _, r := range h.routes() {
		subject := r.subject
		cfg := natspkg.DispatchConsumer(serviceName, subject)
		consumer, err := natspkg.NewJetStreamConsumer(h.natsClient, cfg, func(ctx context.Context, data []byte) error {
			return h.Handle(ctx, subject, data)
		})
		if err != nil {
			h.Stop()
			return fmt.Errorf("failed to consume %s: %w", subject, err)
		}
		h.consumers = append(h.consumers, consumer)
		logger.Info("Consuming subject",
			logger.String("subject", subject),
			logger.String("stream", cfg.StreamName),
			logger.String("consumer", cfg.ConsumerName))
	}
	return nil
}

// Stop stops every consumer
func (h *DispatchHandler) Stop() {
	for _, c := range h.consumers {
		c.Stop()
	}
	h.consumers = nil
}

// Handle runs the handler for subject. Errors a redelivery cannot fix are
// marked permanent so the message is terminated instead of retried.
func (h *DispatchHandler) Handle(ctx context.Context, subject string, data []byte) error {
	var handle func(context.Context, []byte) error
	for _, r := range h.routes() {
		if r.subject == subject {
			handle = r.handle
			break
		}
	}
	if handle == nil {
		return fmt.Errorf("%w: no handler for %s", natspkg.ErrPermanent, subject)
	}

	ctx, end := nrpkg.StartBackgroundTransaction(ctx, h.nrApp, "NATS/"+subject)
	nrpkg.AddAttribute(ctx, "message.subject", subject)
	nrpkg.AddAttribute(ctx, "message.size", len(data))

	start := time.Now()
	err := handle(ctx, data)
	h.metrics.EventHandled(subject, time.Since(start), err)
	end(err)

	if err != nil && permanent(err) {
		return fmt.Errorf("%w: %w", natspkg.ErrPermanent, err)
	}
	return err
}

func (h *DispatchHandler) routes() []route {
	return []route{
		{constants.SubjectOrderReady, h.handleOrderReady},
		{constants.SubjectOrderCanceled, h.handleOrderCanceled},
		{constants.SubjectOrderPickedUp, h.handleOrderPickedUp},
		{constants.SubjectDeliveryDone, h.handleDeliveryCompleted},
		{constants.SubjectOfferResponse, h.handleOfferResponse},
		{constants.SubjectOfferExpired, h.handleOfferExpired},
		{constants.SubjectDriverStatus, h.handleDriverStatus},
		{constants.SubjectDriverLocation, h.handleDriverLocation},
		{constants.SubjectDriverDeactivated, h.handleDriverDeactivated},
		{constants.SubjectApplicantReady, h.handleApplicantReady},
		{constants.SubjectApplicantPriority, h.handlePriorityChanged},
	}
}

func decode(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}
	return nil
}

func (h *DispatchHandler) handleOrderReady(ctx context.Context, data []byte) error {
	var event models.OrderReadyEvent
	if err := decode(data, &event); err != nil {
		return err
	}
	outcome, err := h.dispatchUC.HandleOrderReady(ctx, event)
	if err != nil {
		return err
	}
	if outcome.Unassignable {
		logger.WarnCtx(ctx, "Ready order could not be assigned", logger.OrderID(event.OrderID))
	}
	return nil
}

func (h *DispatchHandler) handleOrderCanceled(ctx context.Context, data []byte) error {
	var event models.OrderCanceledEvent
	if err := decode(data, &event); err != nil {
		return err
	}
	_, err := h.dispatchUC.HandleOrderCanceled(ctx, event)
	return err
}

func (h *DispatchHandler) handleOrderPickedUp(ctx context.Context, data []byte) error {
	var event models.OrderPickedUpEvent
	if err := decode(data, &event); err != nil {
		return err
	}
	_, err := h.dispatchUC.HandleOrderPickedUp(ctx, event)
	return err
}

func (h *DispatchHandler) handleDeliveryCompleted(ctx context.Context, data []byte) error {
	var event models.DeliveryCompletedEvent
	if err := decode(data, &event); err != nil {
		return err
	}
	_, err := h.dispatchUC.HandleDeliveryCompleted(ctx, event)
	return err
}

func (h *DispatchHandler) handleOfferResponse(ctx context.Context, data []byte) error {
	var event models.OfferResponseEvent
	if err := decode(data, &event); err != nil {
		return err
	}
	return h.dispatchUC.HandleOfferResponse(ctx, event)
}

func (h *DispatchHandler) handleOfferExpired(ctx context.Context, data []byte) error {
	var event models.OfferExpiredEvent
	if err := decode(data, &event); err != nil {
		return err
	}
	return h.dispatchUC.HandleOfferExpired(ctx, event.AssignmentID)
}

func (h *DispatchHandler) handleDriverStatus(ctx context.Context, data []byte) error {
	var event models.DriverStatusEvent
	if err := decode(data, &event); err != nil {
		return err
	}
	_, err := h.dispatchUC.HandleDriverStatus(ctx, event)
	return err
}

func (h *DispatchHandler) handleDriverLocation(ctx context.Context, data []byte) error {
	var update models.LocationUpdate
	if err := decode(data, &update); err != nil {
		return err
	}
	_, err := h.dispatchUC.HandleDriverLocation(ctx, update)
	return err
}

func (h *DispatchHandler) handleDriverDeactivated(ctx context.Context, data []byte) error {
	var event models.DriverDeactivatedEvent
	if err := decode(data, &event); err != nil {
		return err
	}
	_, err := h.dispatchUC.HandleDriverDeactivated(ctx, event.DriverID)
	return err
}

func (h *DispatchHandler) handleApplicantReady(ctx context.Context, data []byte) error {
	var event models.ApplicantReadyEvent
	if err := decode(data, &event); err != nil {
		return err
	}
	_, err := h.dispatchUC.HandleApplicantReady(ctx, event)
	if errors.Is(err, models.ErrDuplicateEntry) {
		logger.InfoCtx(ctx, "Applicant already queued",
			logger.ApplicantID(event.ApplicantID),
			logger.RegionID(event.RegionID))
		return nil
	}
	return err
}

func (h *DispatchHandler) handlePriorityChanged(ctx context.Context, data []byte) error {
	var event models.PriorityChangedEvent
	if err := decode(data, &event); err != nil {
		return err
	}
	return h.dispatchUC.HandlePriorityChanged(ctx, event)
}

// permanent reports whether err describes the message itself rather than a
// transient failure
func permanent(err error) bool {
	for _, target := range []error{
		models.ErrInvalidInput,
		models.ErrRegionNotFound,
		models.ErrEntryNotFound,
		models.ErrDriverNotFound,
		models.ErrOrderNotFound,
		models.ErrAssignmentNotFound,
		models.ErrNotAssignee,
		models.ErrNotActiveDriver,
		models.ErrDriverBusy,
		models.ErrDuplicateEntry,
		models.ErrOrderNotDispatchable,
		models.ErrStaleAssignment,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
