package http

import (
	"auth-srv/internal/user"
	"auth-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	Create(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc user.UseCase
}

func New(l log.Logger, uc user.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
