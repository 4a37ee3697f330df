package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"auth-srv/internal/authentication"
	kafkaDelivery "auth-srv/internal/authentication/delivery/kafka"
	"auth-srv/pkg/kafka"
)

// PublishLoginEvent publishes a login audit event keyed by email.
func (p *implProducer) PublishLoginEvent(ctx context.Context, event authentication.LoginEvent) error {
	msg := toMessage(event)

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal login event: %w", err)
	}

	err = p.producer.Publish(ctx, kafka.Message{
		Key:     []byte(event.Email),
		Value:   body,
		Headers: map[string]string{kafkaDelivery.HeaderEventType: msg.Type},
	})
	if err != nil {
		return fmt.Errorf("failed to publish login event: %w", err)
	}

	p.l.Debugf(ctx, "Published %s event %s", msg.Type, msg.EventID)
	return nil
}

func toMessage(event authentication.LoginEvent) kafkaDelivery.LoginEventMessage {
	msg := kafkaDelivery.LoginEventMessage{
		EventID:    uuid.NewString(),
		Type:       eventType(event.Kind),
		Email:      event.Email,
		Reason:     string(event.Reason),
		OccurredAt: event.OccurredAt.UTC(),
	}
	if event.UserID != 0 {
		id := event.UserID
		msg.UserID = &id
	}
	return msg
}

func eventType(kind authentication.OutcomeKind) string {
	switch kind {
	case authentication.OutcomeAuthenticated:
		return kafkaDelivery.EventTypeLoginSucceeded
	case authentication.OutcomeDenied:
		return kafkaDelivery.EventTypeLoginDenied
	default:
		return kafkaDelivery.EventTypeLoginFailed
	}
}
