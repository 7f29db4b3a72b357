package nats

import (
	"strings"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/kurir/internal/pkg/constants"
)

// StreamConfig describes a JetStream stream
type StreamConfig struct {
	Name      string
	Subjects  []string
	Retention jetstream.RetentionPolicy
	Storage   jetstream.StorageType
	MaxAge    time.Duration
	MaxMsgs   int64
}

func (s StreamConfig) toJetStream() jetstream.StreamConfig {
	return jetstream.StreamConfig{
		Name:      s.Name,
		Subjects:  s.Subjects,
		Retention: s.Retention,
		Storage:   s.Storage,
		MaxAge:    s.MaxAge,
		MaxMsgs:   s.MaxMsgs,
		Discard:   jetstream.DiscardOld,
		Replicas:  1,
	}
}

// ConsumerConfig describes a durable consumer bound to one subject
type ConsumerConfig struct {
	StreamName    string
	ConsumerName  string
	FilterSubject string
	AckWait       time.Duration
	MaxDeliver    int
	MaxAckPending int
}

func (c ConsumerConfig) toJetStream() jetstream.ConsumerConfig {
	return jetstream.ConsumerConfig{
		Durable:       c.ConsumerName,
		FilterSubject: c.FilterSubject,
		DeliverPolicy: jetstream.DeliverAllPolicy,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       c.AckWait,
		MaxDeliver:    c.MaxDeliver,
		MaxAckPending: c.MaxAckPending,
		ReplayPolicy:  jetstream.ReplayInstantPolicy,
	}
}

// DispatchStreams returns the streams the dispatch service reads and writes
func DispatchStreams() []StreamConfig {
	return []StreamConfig{
		{
			Name:      "ORDERS",
			Subjects:  []string{"order.>", "delivery.>"},
			Retention: jetstream.LimitsPolicy,
			Storage:   jetstream.FileStorage,
			MaxAge:    7 * 24 * time.Hour,
			MaxMsgs:   2000000,
		},
		{
			Name:      "DRIVERS",
			Subjects:  []string{"driver.>"},
			Retention: jetstream.LimitsPolicy,
			Storage:   jetstream.FileStorage,
			MaxAge:    24 * time.Hour,
			MaxMsgs:   5000000,
		},
		{
			Name:      "APPLICANTS",
			Subjects:  []string{"applicant.>"},
			Retention: jetstream.LimitsPolicy,
			Storage:   jetstream.FileStorage,
			MaxAge:    30 * 24 * time.Hour,
			MaxMsgs:   500000,
		},
		{
			Name:      constants.StreamDispatch,
			Subjects:  []string{constants.StreamDispatchSubjs},
			Retention: jetstream.InterestPolicy,
			Storage:   jetstream.FileStorage,
			MaxAge:    24 * time.Hour,
			MaxMsgs:   2000000,
		},
	}
}

// StreamFor returns the stream that captures subject
func StreamFor(subject string) string {
	switch {
	case strings.HasPrefix(subject, "order.") || strings.HasPrefix(subject, "delivery."):
		return "ORDERS"
	case strings.HasPrefix(subject, "driver."):
		return "DRIVERS"
	case strings.HasPrefix(subject, "applicant."):
		return "APPLICANTS"
	default:
		return constants.StreamDispatch
	}
}

// DispatchConsumer builds the durable consumer config for one inbound subject.
// Consumers are shared by every replica so each message is handled once.
func DispatchConsumer(service, subject string) ConsumerConfig {
	return ConsumerConfig{
		StreamName:    StreamFor(subject),
		ConsumerName:  service + "_" + durableSuffix(subject),
		FilterSubject: subject,
		AckWait:       30 * time.Second,
		MaxDeliver:    5,
		MaxAckPending: 1000,
	}
}

func durableSuffix(subject string) string {
	out := []byte(subject)
	for i, ch := range out {
		if ch == '.' || ch == '*' || ch == '>' {
			out[i] = '_'
		}
	}
	return string(out)
}
