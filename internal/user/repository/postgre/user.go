package postgre

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"auth-srv/internal/model"
	"auth-srv/internal/user/repository"
)

// GetUserByEmail - Get an active user with its role name.
func (r *implRepository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, queryGetUserByEmail, email))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, repository.ErrUserNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "user.repository.postgre.GetUserByEmail: Failed to get user: %v", err)
		return model.User{}, err
	}

	return u, nil
}

// CreateUser - Insert a new user. The role is resolved by name.
func (r *implRepository) CreateUser(ctx context.Context, opts repository.CreateUserOptions) (model.User, error) {
	u := model.User{
		FullName:     opts.FullName,
		Email:        opts.Email,
		PasswordHash: opts.PasswordHash,
		RoleName:     opts.RoleName,
	}

	err := r.db.QueryRowContext(ctx, queryCreateUser,
		opts.FullName,
		opts.Email,
		opts.PasswordHash,
		opts.RoleName,
	).Scan(&u.ID, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		r.l.Errorf(ctx, "user.repository.postgre.CreateUser: role %q does not exist", opts.RoleName)
		return model.User{}, repository.ErrRoleNotFound
	}
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return model.User{}, repository.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "user.repository.postgre.CreateUser: Failed to insert user: %v", err)
		return model.User{}, repository.ErrUserCreateFailed
	}

	return u, nil
}
