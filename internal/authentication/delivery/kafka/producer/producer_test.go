package producer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"

	"auth-srv/internal/authentication"
	kafkaDelivery "auth-srv/internal/authentication/delivery/kafka"
	"auth-srv/pkg/kafka"
	"auth-srv/pkg/log"
)

func checkMessage(wantType string, wantUserID *int64) mocks.MessageChecker {
	return func(pm *sarama.ProducerMessage) error {
		key, _ := pm.Key.Encode()
		if string(key) != "a@test.com" {
			return fmt.Errorf("key = %q", key)
		}
		raw, _ := pm.Value.Encode()
		if strings.Contains(strings.ToLower(string(raw)), "password\"") {
			return errors.New("message carries a password field")
		}

		var msg kafkaDelivery.LoginEventMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			return err
		}
		if msg.Type != wantType || msg.EventID == "" || msg.Email != "a@test.com" {
			return fmt.Errorf("unexpected message %+v", msg)
		}
		if (wantUserID == nil) != (msg.UserID == nil) || (wantUserID != nil && *wantUserID != *msg.UserID) {
			return fmt.Errorf("user_id = %v, want %v", msg.UserID, wantUserID)
		}
		if len(pm.Headers) != 1 || string(pm.Headers[0].Value) != wantType {
			return fmt.Errorf("headers = %+v", pm.Headers)
		}
		return nil
	}
}

func TestPublishLoginEvent(t *testing.T) {
	seven := int64(7)
	tests := []struct {
		name     string
		event    authentication.LoginEvent
		wantType string
		wantUser *int64
	}{
		{"succeeded", authentication.LoginEvent{Kind: authentication.OutcomeAuthenticated, Email: "a@test.com", UserID: 7}, kafkaDelivery.EventTypeLoginSucceeded, &seven},
		{"denied", authentication.LoginEvent{Kind: authentication.OutcomeDenied, Email: "a@test.com", Reason: authentication.ReasonUserNotFound}, kafkaDelivery.EventTypeLoginDenied, nil},
		{"failed", authentication.LoginEvent{Kind: authentication.OutcomeSystemFault, Email: "a@test.com"}, kafkaDelivery.EventTypeLoginFailed, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := mocks.NewSyncProducer(t, nil)
			sp.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(checkMessage(tt.wantType, tt.wantUser))
			defer func() { _ = sp.Close() }()

			tt.event.OccurredAt = time.Now()
			p := New(kafka.NewFromSyncProducer(sp, kafkaDelivery.TopicLoginEvents), log.NewNop())
			if err := p.PublishLoginEvent(context.Background(), tt.event); err != nil {
				t.Fatalf("PublishLoginEvent failed: %v", err)
			}
		})
	}
}

func TestPublishLoginEvent_BrokerError(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageAndFail(sarama.ErrNotLeaderForPartition)
	defer func() { _ = sp.Close() }()

	p := New(kafka.NewFromSyncProducer(sp, kafkaDelivery.TopicLoginEvents), log.NewNop())
	err := p.PublishLoginEvent(context.Background(), authentication.LoginEvent{Kind: authentication.OutcomeDenied, Email: "a@test.com"})
	if !errors.Is(err, sarama.ErrNotLeaderForPartition) {
		t.Errorf("error = %v, want ErrNotLeaderForPartition", err)
	}
}

func TestToMessage_Reason(t *testing.T) {
	msg := toMessage(authentication.LoginEvent{
		Kind:   authentication.OutcomeDenied,
		Email:  "a@test.com",
		UserID: 7,
		Reason: authentication.ReasonPasswordMismatch,
	})
	if msg.Reason != "password_mismatch" || msg.UserID == nil || *msg.UserID != 7 {
		t.Errorf("unexpected message %+v", msg)
	}
}
