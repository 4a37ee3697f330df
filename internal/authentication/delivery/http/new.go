package http

import (
	"auth-srv/internal/authentication"
	"auth-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler serves the authentication endpoints.
type Handler interface {
	Login(c *gin.Context)
	Logout(c *gin.Context)
	Me(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc authentication.UseCase
}

// New - Factory
func New(l log.Logger, uc authentication.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
