package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/kurir/internal/pkg/logger"
)

// Client wraps a NATS connection and its JetStream context
type Client struct {
	conn *nats.Conn
	js   jetstream.JetStream

	mu        sync.Mutex
	consumers map[string]jetstream.Consumer
}

// NewClient connects to NATS and opens a JetStream context
func NewClient(url string) (*Client, error) {
	conn, err := nats.Connect(url,
		nats.Name("kurir-dispatch"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", logger.Err(err))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("NATS reconnected", logger.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	return &Client{
		conn:      conn,
		js:        js,
		consumers: make(map[string]jetstream.Consumer),
	}, nil
}

// GetConn returns the underlying connection
func (c *Client) GetConn() *nats.Conn {
	return c.conn
}

// JetStream returns the JetStream context
func (c *Client) JetStream() jetstream.JetStream {
	return c.js
}

// Ping reports whether the connection is usable
func (c *Client) Ping(ctx context.Context) error {
	if c.conn == nil || !c.conn.IsConnected() {
		return errors.New("nats not connected")
	}
	return nil
}

// Publish marshals v as JSON and publishes it without waiting for a stream ack
func (c *Client) Publish(subject string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if _, err := c.js.PublishAsync(subject, data); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// EnsureStreams creates or updates every stream in configs
func (c *Client) EnsureStreams(ctx context.Context, configs []StreamConfig) error {
	for _, cfg := range configs {
		if _, err := c.js.CreateOrUpdateStream(ctx, cfg.toJetStream()); err != nil {
			return fmt.Errorf("failed to ensure stream %s: %w", cfg.Name, err)
		}
		logger.Info("JetStream stream ready",
			logger.String("stream", cfg.Name),
			logger.Strings("subjects", cfg.Subjects))
	}
	return nil
}

// CreateConsumer creates or updates a durable consumer and caches it
func (c *Client) CreateConsumer(ctx context.Context, cfg ConsumerConfig) (jetstream.Consumer, error) {
	key := cfg.StreamName + ":" + cfg.ConsumerName

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.consumers[key]; ok {
		return existing, nil
	}

	consumer, err := c.js.CreateOrUpdateConsumer(ctx, cfg.StreamName, cfg.toJetStream())
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer %s: %w", key, err)
	}
	c.consumers[key] = consumer
	return consumer, nil
}

// Close drains the connection so in-flight publishes are flushed
func (c *Client) Close() {
	if c.conn == nil {
		return
	}
	select {
	case <-c.js.PublishAsyncComplete():
	case <-time.After(5 * time.Second):
		logger.Warn("Timed out waiting for pending NATS publishes")
	}
	if err := c.conn.Drain(); err != nil {
		c.conn.Close()
	}
}
