package http

import (
	"errors"
	"net/http"

	"auth-srv/internal/authentication"
	pkgErrors "auth-srv/pkg/errors"
)

var (
	errInvalidCredentials = pkgErrors.NewHTTPError(
		http.StatusUnauthorized, "Invalid email or password",
	)
	errLogoutNotSupported = pkgErrors.NewHTTPError(
		http.StatusNotImplemented, "Logout is not supported; discard the token client-side",
	)
	errInvalidRequest = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Invalid request body",
	)
	errUnauthorized = pkgErrors.NewHTTPError(
		http.StatusUnauthorized, "Unauthorized",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, authentication.ErrAuthenticationFailed):
		return errInvalidCredentials
	case errors.Is(err, authentication.ErrLogoutNotSupported):
		return errLogoutNotSupported
	default:
		panic(err)
	}
}
