package http

import (
	"time"

	"auth-srv/internal/authentication"
	"auth-srv/internal/model"
	"auth-srv/pkg/response"
)

// =====================================================
// Request DTOs
// =====================================================

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() authentication.LoginInput {
	return authentication.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

// =====================================================
// Response DTOs
// =====================================================

type userResp struct {
	UserID   int64  `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type loginResp struct {
	Token     string            `json:"token"`
	ExpiresAt response.DateTime `json:"expires_at"`
	User      userResp          `json:"user"`
}

type meResp struct {
	UserID    string            `json:"user_id"`
	Email     string            `json:"email"`
	Role      string            `json:"role,omitempty"`
	TokenID   string            `json:"token_id"`
	ExpiresAt response.DateTime `json:"expires_at"`
}

func (h *handler) newLoginResp(res authentication.AuthResult) loginResp {
	return loginResp{
		Token:     res.Token,
		ExpiresAt: response.DateTime(res.ExpiresAt),
		User: userResp{
			UserID:   res.User.UserID,
			FullName: res.User.FullName,
			Email:    res.User.Email,
		},
	}
}

func (h *handler) newMeResp(sc model.Scope) meResp {
	return meResp{
		UserID:    sc.UserID,
		Email:     sc.Email,
		Role:      sc.Role,
		TokenID:   sc.TokenID,
		ExpiresAt: response.DateTime(time.Unix(sc.ExpiresAt, 0)),
	}
}
