package http

import (
	"auth-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// MapAuthRoutes registers the authentication endpoints on r.
func MapAuthRoutes(r *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	r.POST("/login", h.Login)
	r.POST("/logout", mw.Auth(), h.Logout)
	r.GET("/me", mw.Auth(), h.Me)
}
