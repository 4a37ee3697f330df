package http

import (
	"auth-srv/internal/model"
	"auth-srv/internal/user"
	"auth-srv/pkg/response"
)

type createReq struct {
	FullName string `json:"full_name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

func (r createReq) toInput() user.CreateInput {
	return user.CreateInput{
		FullName: r.FullName,
		Email:    r.Email,
		Password: r.Password,
	}
}

type userResp struct {
	UserID    int64             `json:"user_id"`
	FullName  string            `json:"full_name"`
	Email     string            `json:"email"`
	Role      string            `json:"role"`
	IsActive  bool              `json:"is_active"`
	CreatedAt response.DateTime `json:"created_at"`
}

func (h *handler) newUserResp(u model.User) userResp {
	return userResp{
		UserID:    u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.RoleName,
		IsActive:  u.IsActive,
		CreatedAt: response.DateTime(u.CreatedAt),
	}
}
