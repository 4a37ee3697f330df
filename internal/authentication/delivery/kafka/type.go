package kafka

import "time"

// LoginEventMessage is the JSON body published for each login attempt.
type LoginEventMessage struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	Email      string    `json:"email"`
	UserID     *int64    `json:"user_id,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
