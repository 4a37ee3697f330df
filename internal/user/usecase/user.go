package usecase

import (
	"context"
	"errors"
	"fmt"

	"auth-srv/internal/model"
	"auth-srv/internal/user"
	"auth-srv/internal/user/repository"
)

func (uc *implUseCase) cacheEnabled() bool {
	return uc.cacheRepo != nil && uc.cfg.SummaryCacheTTL > 0
}

// GetUserSummaryByEmail - Read through the summary cache, falling back to Postgres.
func (uc *implUseCase) GetUserSummaryByEmail(ctx context.Context, email string) (model.UserSummary, error) {
	email = user.NormalizeEmail(email)
	if email == "" {
		return model.UserSummary{}, user.ErrUserNotFound
	}

	if uc.cacheEnabled() {
		summary, err := uc.cacheRepo.GetSummary(ctx, email)
		if err == nil {
			return summary, nil
		}
		if !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "user.usecase.GetUserSummaryByEmail: cache lookup failed: %v", err)
		}
	}

	u, err := uc.getUser(ctx, email)
	if err != nil {
		return model.UserSummary{}, err
	}

	summary := u.Summary()
	if uc.cacheEnabled() {
		if err := uc.cacheRepo.SaveSummary(ctx, summary, uc.cfg.SummaryCacheTTL); err != nil {
			uc.l.Warnf(ctx, "user.usecase.GetUserSummaryByEmail: cache save failed: %v", err)
		}
	}

	return summary, nil
}

// GetCredentialRecordByEmail - Always read from Postgres. Hashes are never cached.
func (uc *implUseCase) GetCredentialRecordByEmail(ctx context.Context, email string) (model.UserCredential, error) {
	email = user.NormalizeEmail(email)
	if email == "" {
		return model.UserCredential{}, user.ErrUserNotFound
	}

	u, err := uc.getUser(ctx, email)
	if err != nil {
		return model.UserCredential{}, err
	}

	return u.Credential(), nil
}

func (uc *implUseCase) getUser(ctx context.Context, email string) (model.User, error) {
	u, err := uc.repo.GetUserByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return model.User{}, user.ErrUserNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.getUser: repo.GetUserByEmail failed: %v", err)
		return model.User{}, fmt.Errorf("user directory lookup: %w", err)
	}
	return u, nil
}
