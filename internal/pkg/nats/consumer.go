package nats

import (
	"context"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/kurir/internal/pkg/logger"
)

// ErrPermanent marks a message that must not be redelivered
var ErrPermanent = errors.New("permanent message failure")

// MessageHandler processes one message payload
type MessageHandler func(ctx context.Context, data []byte) error

// Consumer runs a push-style consume loop over a durable JetStream consumer
type Consumer struct {
	name       string
	consumeCtx jetstream.ConsumeContext
	cancel     context.CancelFunc
}

// NewJetStreamConsumer starts consuming with explicit ack. Handler errors
// wrapping ErrPermanent are terminated, everything else is redelivered.
func NewJetStreamConsumer(client *Client, cfg ConsumerConfig, handler MessageHandler) (*Consumer, error) {
	if client == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}

	ctx, cancel := context.WithCancel(context.Background())
	consumer, err := client.CreateConsumer(ctx, cfg)
	if err != nil {
		cancel()
		return nil, err
	}

	consumeCtx, err := consumer.Consume(func(msg jetstream.Msg) {
		handleMessage(ctx, msg, handler)
	})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to start consuming %s: %w", cfg.ConsumerName, err)
	}

	return &Consumer{name: cfg.ConsumerName, consumeCtx: consumeCtx, cancel: cancel}, nil
}

func handleMessage(ctx context.Context, msg jetstream.Msg, handler MessageHandler) {
	err := handler(ctx, msg.Data())
	if err == nil {
		if ackErr := msg.Ack(); ackErr != nil {
			logger.Error("Failed to ACK message", logger.String("subject", msg.Subject()), logger.Err(ackErr))
		}
		return
	}

	if errors.Is(err, ErrPermanent) {
		logger.Warn("Dropping message",
			logger.String("subject", msg.Subject()),
			logger.Err(err))
		if termErr := msg.Term(); termErr != nil {
			logger.Error("Failed to TERM message", logger.Err(termErr))
		}
		return
	}

	logger.Error("Error processing JetStream message",
		logger.String("subject", msg.Subject()),
		logger.Err(err))
	if nakErr := msg.Nak(); nakErr != nil {
		logger.Error("Failed to NAK message", logger.Err(nakErr))
	}
}

// Stop stops the consume loop
func (c *Consumer) Stop() {
	logger.Info("Stopping consumer", logger.String("consumer", c.name))
	if c.consumeCtx != nil {
		c.consumeCtx.Stop()
	}
	if c.cancel != nil {
		c.cancel()
	}
}
