package authentication

import (
	"context"

	"auth-srv/internal/model"
)

// UseCase authenticates users by email and password.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Login returns a signed access token for valid credentials.
	// Every failure, whatever its cause, is ErrAuthenticationFailed.
	Login(ctx context.Context, input LoginInput) (AuthResult, error)
	// Logout always returns ErrLogoutNotSupported. Tokens stay valid until they expire.
	Logout(ctx context.Context, userID string) error
}

// Directory is the part of the user directory the login flow reads.
type Directory interface {
	GetUserSummaryByEmail(ctx context.Context, email string) (model.UserSummary, error)
	GetCredentialRecordByEmail(ctx context.Context, email string) (model.UserCredential, error)
}

// EventPublisher receives one event per login attempt.
//
//go:generate mockery --name EventPublisher
type EventPublisher interface {
	PublishLoginEvent(ctx context.Context, event LoginEvent) error
}
