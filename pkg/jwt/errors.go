package jwt

import "errors"

var (
	// ErrInvalidSigningConfig means the secret, issuer or audience cannot be used for signing.
	ErrInvalidSigningConfig = errors.New("jwt: invalid signing configuration")
	ErrInvalidToken         = errors.New("jwt: invalid token")
)
