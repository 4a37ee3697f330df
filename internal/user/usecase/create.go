package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"auth-srv/internal/model"
	"auth-srv/internal/user"
	"auth-srv/internal/user/repository"
)

// Create - Validate input, hash the password and insert the user.
func (uc *implUseCase) Create(ctx context.Context, input user.CreateInput) (model.User, error) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = user.NormalizeEmail(input.Email)
	input.RoleName = strings.ToUpper(strings.TrimSpace(input.RoleName))
	if input.RoleName == "" {
		input.RoleName = uc.cfg.DefaultRole
	}

	if err := uc.validateCreate(input); err != nil {
		return model.User{}, err
	}

	hash, err := uc.hashPool.Hash(ctx, input.Password)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Create: hashPool.Hash failed: %v", err)
		return model.User{}, user.ErrCreateFailed
	}

	u, err := uc.repo.CreateUser(ctx, repository.CreateUserOptions{
		FullName:     input.FullName,
		Email:        input.Email,
		PasswordHash: hash,
		RoleName:     input.RoleName,
	})
	if errors.Is(err, repository.ErrDuplicateEmail) {
		return model.User{}, user.ErrEmailAlreadyExists
	}
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Create: repo.CreateUser failed: %v", err)
		return model.User{}, user.ErrCreateFailed
	}

	if uc.cacheEnabled() {
		if err := uc.cacheRepo.DeleteSummary(ctx, u.Email); err != nil {
			uc.l.Warnf(ctx, "user.usecase.Create: cache invalidation failed: %v", err)
		}
	}

	return u, nil
}

func (uc *implUseCase) validateCreate(input user.CreateInput) error {
	if input.FullName == "" || utf8.RuneCountInString(input.FullName) > user.MaxFullNameLen {
		return user.ErrInvalidInput
	}
	if err := getValidator().Var(input.Email, "required,email"); err != nil {
		return user.ErrInvalidInput
	}
	if n := len(input.Password); n < user.MinPasswordLen || n > user.MaxPasswordLen {
		return user.ErrInvalidInput
	}
	return nil
}
