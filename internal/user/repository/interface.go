package repository

import (
	"context"
	"time"

	"auth-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	// GetUserByEmail returns the active user with the given normalized email.
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	CreateUser(ctx context.Context, opts CreateUserOptions) (model.User, error)
}

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetSummary(ctx context.Context, email string) (model.UserSummary, error)
	SaveSummary(ctx context.Context, summary model.UserSummary, ttl time.Duration) error
	DeleteSummary(ctx context.Context, email string) error
}
