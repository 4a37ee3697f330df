package http

import (
	"errors"
	"net/http"

	"auth-srv/internal/user"
	pkgErrors "auth-srv/pkg/errors"
)

var (
	errEmailAlreadyExists = pkgErrors.NewHTTPError(
		http.StatusConflict, "Email already exists",
	)
	errInvalidUser = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Invalid user data",
	)
	errCreateFailed = pkgErrors.NewHTTPError(
		http.StatusInternalServerError, "Failed to create user",
	)
	errInvalidRequest = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Invalid request body",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrEmailAlreadyExists):
		return errEmailAlreadyExists
	case errors.Is(err, user.ErrInvalidInput):
		return errInvalidUser
	case errors.Is(err, user.ErrCreateFailed):
		return errCreateFailed
	default:
		panic(err)
	}
}
