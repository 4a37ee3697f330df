package authentication

import "time"

type LoginInput struct {
	Email    string
	Password string
}

// UserInfo is the user part of a successful login.
type UserInfo struct {
	UserID   int64
	FullName string
	Email    string
}

type AuthResult struct {
	Token     string
	TokenID   string
	ExpiresAt time.Time
	User      UserInfo
}

// OutcomeKind classifies a login attempt.
type OutcomeKind string

const (
	OutcomeAuthenticated OutcomeKind = "authenticated"
	OutcomeDenied        OutcomeKind = "denied"
	OutcomeSystemFault   OutcomeKind = "system_fault"
)

// DenyReason says why credentials were rejected. It is never shown to the caller.
type DenyReason string

const (
	ReasonUserNotFound       DenyReason = "user_not_found"
	ReasonCredentialNotFound DenyReason = "credential_not_found"
	ReasonPasswordMismatch   DenyReason = "password_mismatch"
)

// LoginEvent describes a finished login attempt. It never carries the password.
type LoginEvent struct {
	Kind       OutcomeKind
	Email      string
	UserID     int64
	Reason     DenyReason
	OccurredAt time.Time
}
