package middleware

import (
	"auth-srv/pkg/log"
	"auth-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500 envelope and logs it.
func Recovery(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				logger.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)

				response.PanicError(c, err)
				c.Abort()
			}
		}()
		c.Next()
	}
}
