package http

import (
	"auth-srv/pkg/errors"
	"auth-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processLoginRequest(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.NewValidationErrors(err) != nil {
			return req, err
		}
		return req, errInvalidRequest
	}
	return req, nil
}

func (h *handler) processPayload(c *gin.Context) (scope.Payload, error) {
	payload, ok := scope.GetPayloadFromContext(c.Request.Context())
	if !ok {
		return scope.Payload{}, errUnauthorized
	}
	return payload, nil
}
