package kafka

// TopicLoginEvents is the default audit topic.
const TopicLoginEvents = "auth.login.events"

// Event types
const (
	EventTypeLoginSucceeded = "login.succeeded"
	EventTypeLoginDenied    = "login.denied"
	EventTypeLoginFailed    = "login.failed"
)

// HeaderEventType lets consumers route without decoding the body.
const HeaderEventType = "event_type"
