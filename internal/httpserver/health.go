package httpserver

import (
	"net/http"

	"auth-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "auth-srv"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready only when Postgres and Redis answer a ping.
// Kafka is optional: its state is reported but never fails readiness.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if err := srv.postgresDB.PingContext(ctx); err != nil {
		srv.l.Warnf(ctx, "httpserver.readyCheck: postgres ping failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "Database connection failed",
		})
		return
	}
	if err := srv.redisClient.Ping(ctx); err != nil {
		srv.l.Warnf(ctx, "httpserver.readyCheck: redis ping failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "Redis connection failed",
		})
		return
	}
	response.OK(c, gin.H{
		"status":   "ready",
		"version":  HealthVersion,
		"service":  ServiceName,
		"database": "connected",
		"redis":    "connected",
		"kafka":    srv.kafkaStatus(c),
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": ServiceName,
	})
}

func (srv HTTPServer) kafkaStatus(c *gin.Context) string {
	if srv.eventProducer == nil {
		return "disabled"
	}
	if err := srv.eventProducer.HealthCheck(); err != nil {
		srv.l.Warnf(c.Request.Context(), "httpserver.readyCheck: kafka health check failed: %v", err)
		return "unavailable"
	}
	return "connected"
}
