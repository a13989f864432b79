package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/miufukumura/edushift/internal/api/middleware"
	"github.com/miufukumura/edushift/internal/dto"
	"github.com/miufukumura/edushift/internal/model"
	"github.com/miufukumura/edushift/pkg/response"
)

// Login POST /api/v1/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "メールアドレスとパスワードを入力してください。")
		return
	}

	token, user, err := h.svc.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, dto.LoginResponse{
		Token: token,
		User: dto.UserInfo{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  string(user.Role),
		},
	})
}

// Register POST /api/v1/auth/register — セルフサービスの講師登録。
// 役割は常に teacher になる（管理者アカウントは管理操作でのみ作成）
func (h *Handler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "登録内容を確認してください。")
		return
	}

	user, err := h.svc.Auth.Register(c.Request.Context(), req.Name, req.Email, req.Password, model.RoleTeacher)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Created(c, dto.UserInfo{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	})
}

// Logout POST /api/v1/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	token := c.GetString(middleware.ContextTokenKey)
	if err := h.svc.Auth.Logout(c.Request.Context(), token); err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, nil)
}

// Me GET /api/v1/auth/me — セッションスナップショットの確認用
func (h *Handler) Me(c *gin.Context) {
	identity, ok := mustGetIdentity(c)
	if !ok {
		return
	}
	response.OK(c, gin.H{
		"user_id": identity.UserID,
		"name":    identity.Name,
		"role":    string(identity.Role),
	})
}
