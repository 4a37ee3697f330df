package repository

import "errors"

var (
	ErrUserNotFound     = errors.New("repository: user not found")
	ErrDuplicateEmail   = errors.New("repository: email already exists")
	ErrUserCreateFailed = errors.New("repository: failed to create user")
	ErrRoleNotFound     = errors.New("repository: role not found")
	ErrCacheMiss        = errors.New("repository: cache miss")
)
