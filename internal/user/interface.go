package user

import (
	"context"

	"auth-srv/internal/model"
)

// UseCase is the user directory.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// GetUserSummaryByEmail returns the non-sensitive view of an active user.
	GetUserSummaryByEmail(ctx context.Context, email string) (model.UserSummary, error)
	// GetCredentialRecordByEmail returns the password hash of an active user. Never cached.
	GetCredentialRecordByEmail(ctx context.Context, email string) (model.UserCredential, error)
	// Create registers a new user, hashing the password before it is stored.
	Create(ctx context.Context, input CreateInput) (model.User, error)
}
