package http

import (
	"auth-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Create - Register a new user
// @Summary Register user
// @Description Create an active user with the default role.
// @Tags Users
// @Accept json
// @Produce json
// @Param body body createReq true "New user"
// @Success 201 {object} userResp
// @Failure 400 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /users [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "user.delivery.http.Create: processCreateRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	u, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newUserResp(u))
}
