package kafka

import (
	"errors"

	"github.com/IBM/sarama"
)

var (
	ErrNoBrokers      = errors.New("kafka: at least one broker is required")
	ErrTopicRequired  = errors.New("kafka: topic is required")
	ErrNotInitialized = errors.New("kafka: producer is not initialized")
	ErrClientClosed   = errors.New("kafka: client is closed")
	ErrNoLiveBrokers  = errors.New("kafka: no brokers available")
)

// Config holds configuration for Kafka producer.
type Config struct {
	Brokers  []string
	Topic    string
	ClientID string
}

// Message is a single record. Headers are optional.
type Message struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}

// producerImpl implements IProducer.
// client is nil when wrapping an externally built producer.
type producerImpl struct {
	client   sarama.Client
	producer sarama.SyncProducer
	topic    string
}
