package http

import (
	"auth-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

func (h *handler) processCreateRequest(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.NewValidationErrors(err) != nil {
			return req, err
		}
		return req, errInvalidRequest
	}
	return req, nil
}
