package http

import "github.com/gin-gonic/gin"

// MapUserRoutes registers the registration endpoint. It is public.
func MapUserRoutes(r *gin.RouterGroup, h Handler) {
	r.POST("", h.Create)
}
