package kafka

import (
	"context"

	"github.com/IBM/sarama"
)

// IProducer publishes keyed messages to a single topic.
// Implementations are safe for concurrent use.
type IProducer interface {
	Publish(ctx context.Context, msg Message) error
	Topic() string
	Close() error
	HealthCheck() error
}

// NewProducer dials the brokers and returns a synchronous producer.
func NewProducer(cfg Config) (IProducer, error) {
	if err := validateProducerConfig(cfg); err != nil {
		return nil, err
	}
	return newProducerImpl(cfg)
}

// NewFromSyncProducer wraps an existing sarama producer, e.g. sarama/mocks in tests.
func NewFromSyncProducer(p sarama.SyncProducer, topic string) IProducer {
	return &producerImpl{producer: p, topic: topic}
}
