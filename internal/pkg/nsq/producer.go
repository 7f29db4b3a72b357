package nsq

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/kurir/internal/pkg/logger"
)

// Publisher is the part of *nsq.Producer the Producer needs
type Publisher interface {
	Ping() error
	PublishAsync(topic string, body []byte, doneChan chan *nsq.ProducerTransaction, args ...interface{}) error
	Stop()
}

// Producer publishes JSON intents without waiting for delivery
type Producer struct {
	producer Publisher
	done     chan *nsq.ProducerTransaction
	wg       sync.WaitGroup
}

// NewProducer creates a new NSQ producer and verifies the daemon is reachable
func NewProducer(address string) (*Producer, error) {
	producer, err := nsq.NewProducer(address, nsq.NewConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}

	if err := producer.Ping(); err != nil {
		producer.Stop()
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	return NewProducerWith(producer), nil
}

// NewProducerWith wraps an existing publisher
func NewProducerWith(publisher Publisher) *Producer {
	p := &Producer{
		producer: publisher,
		done:     make(chan *nsq.ProducerTransaction, 256),
	}
	p.wg.Add(1)
	go p.drain()
	return p
}

func (p *Producer) drain() {
	defer p.wg.Done()
	for tx := range p.done {
		if tx.Error == nil {
			continue
		}
		topic, _ := tx.Args[0].(string)
		logger.Error("NSQ publish failed",
			logger.String("topic", topic),
			logger.Err(tx.Error))
	}
}

// PublishAsync marshals message and hands it to nsqd; failures are logged
func (p *Producer) PublishAsync(topic string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.producer.PublishAsync(topic, body, p.done, topic); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// Ping checks the nsqd connection
func (p *Producer) Ping() error {
	return p.producer.Ping()
}

// Stop flushes pending publishes and stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
	close(p.done)
	p.wg.Wait()
}
