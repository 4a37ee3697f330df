package producer

import (
	"auth-srv/internal/authentication"
	"auth-srv/pkg/kafka"
	"auth-srv/pkg/log"
)

type implProducer struct {
	producer kafka.IProducer
	l        log.Logger
}

// New adapts a Kafka producer to authentication.EventPublisher.
func New(producer kafka.IProducer, l log.Logger) authentication.EventPublisher {
	return &implProducer{
		producer: producer,
		l:        l,
	}
}
