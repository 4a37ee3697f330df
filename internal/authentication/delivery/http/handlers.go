package http

import (
	"auth-srv/pkg/response"
	"auth-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Login - Exchange email and password for an access token
// @Summary Login
// @Description Authenticate with email and password. Every failure returns the same 401.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body loginReq true "Credentials"
// @Success 200 {object} loginResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /authentication/login [post]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "authentication.delivery.http.Login: processLoginRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	res, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLoginResp(res))
}

// Logout - End the current session
// @Summary Logout
// @Description Tokens are stateless and cannot be revoked; always 501.
// @Tags Authentication
// @Produce json
// @Security Bearer
// @Failure 401 {object} response.Resp
// @Failure 501 {object} response.Resp
// @Router /authentication/logout [post]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	payload, err := h.processPayload(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Logout(ctx, payload.UserID); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Me - Show the claims of the presented token
// @Summary Current token
// @Tags Authentication
// @Produce json
// @Security Bearer
// @Success 200 {object} meResp
// @Failure 401 {object} response.Resp
// @Router /authentication/me [get]
func (h *handler) Me(c *gin.Context) {
	if _, err := h.processPayload(c); err != nil {
		response.Error(c, err)
		return
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	response.OK(c, h.newMeResp(sc))
}
