package kafka

import (
	"context"
	"fmt"
	"sort"

	"github.com/IBM/sarama"
)

func validateProducerConfig(cfg Config) error {
	if len(cfg.Brokers) == 0 {
		return ErrNoBrokers
	}
	if cfg.Topic == "" {
		return ErrTopicRequired
	}
	return nil
}

func newSaramaConfig(cfg Config) *sarama.Config {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = ProducerRetryMax
	config.Producer.Timeout = ProducerTimeout
	config.Version = KafkaVersion
	if cfg.ClientID != "" {
		config.ClientID = cfg.ClientID
	}
	return config
}

func newProducerImpl(cfg Config) (*producerImpl, error) {
	client, err := sarama.NewClient(cfg.Brokers, newSaramaConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka client: %w", err)
	}
	producer, err := sarama.NewSyncProducerFromClient(client)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}
	return &producerImpl{client: client, producer: producer, topic: cfg.Topic}, nil
}

// Publish sends msg to the configured topic and returns when the broker acks or ctx is done.
// SendMessage has no context, so on ctx expiry the send keeps running in the background
// until sarama's own Producer.Timeout gives up.
func (p *producerImpl) Publish(ctx context.Context, msg Message) error {
	if p.producer == nil {
		return ErrNotInitialized
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	pm := &sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.ByteEncoder(msg.Key),
		Value:   sarama.ByteEncoder(msg.Value),
		Headers: recordHeaders(msg.Headers),
	}

	done := make(chan error, 1)
	go func() {
		_, _, err := p.producer.SendMessage(pm)
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to publish message to Kafka: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to publish message to Kafka: %w", ctx.Err())
	}
}

func (p *producerImpl) Topic() string {
	return p.topic
}

// Close closes the producer and the client it was built from.
func (p *producerImpl) Close() error {
	var err error
	if p.producer != nil {
		err = p.producer.Close()
	}
	if p.client != nil && !p.client.Closed() {
		if cerr := p.client.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// HealthCheck reports whether the producer can reach at least one broker.
func (p *producerImpl) HealthCheck() error {
	if p.producer == nil {
		return ErrNotInitialized
	}
	if p.client == nil {
		return nil
	}
	if p.client.Closed() {
		return ErrClientClosed
	}
	if len(p.client.Brokers()) == 0 {
		return ErrNoLiveBrokers
	}
	return nil
}

func recordHeaders(h map[string]string) []sarama.RecordHeader {
	if len(h) == 0 {
		return nil
	}
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]sarama.RecordHeader, 0, len(keys))
	for _, k := range keys {
		out = append(out, sarama.RecordHeader{Key: []byte(k), Value: []byte(h[k])})
	}
	return out
}
