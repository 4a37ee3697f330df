package response

import "time"

const (
	// DateTimeFormat is the wire format of every timestamp in a response body.
	DateTimeFormat = time.RFC3339

	MessageSuccess         = "Success"
	MessageCreated         = "Created"
	MessageBadRequest      = "Bad request"
	MessageUnauthorized    = "Unauthorized"
	MessageInternalError   = "Something went wrong"
	ErrorCodeSuccess       = 0
	ErrorCodeInternalError = 500
)
