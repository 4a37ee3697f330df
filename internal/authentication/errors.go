package authentication

import "errors"

var (
	ErrAuthenticationFailed = errors.New("invalid email or password")
	ErrLogoutNotSupported   = errors.New("logout is not supported")
)
