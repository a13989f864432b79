package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/miufukumura/edushift/internal/dto"
	"github.com/miufukumura/edushift/pkg/response"
)

// Manage POST /api/v1/admin/manage — 管理操作をひとつの口で受ける。
// 受信 JSON はここで一度だけバリアントへ解読する
func (h *Handler) Manage(c *gin.Context) {
	identity, ok := mustGetIdentity(c)
	if !ok {
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.BadRequest(c, 40000, "リクエストの読み込みに失敗しました。")
		return
	}

	action, err := dto.DecodeManageAction(body)
	if err != nil {
		response.BadRequest(c, 40002, "管理操作の内容が正しくありません。")
		return
	}

	if err := h.svc.Admin.Apply(c.Request.Context(), identity, action); err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, nil)
}

// ListAccounts GET /api/v1/admin/accounts
func (h *Handler) ListAccounts(c *gin.Context) {
	identity, ok := mustGetIdentity(c)
	if !ok {
		return
	}

	users, err := h.svc.Admin.ListAccounts(c.Request.Context(), identity)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, users)
}

// Dashboard GET /api/v1/admin/dashboard
func (h *Handler) Dashboard(c *gin.Context) {
	identity, ok := mustGetIdentity(c)
	if !ok {
		return
	}

	view, err := h.svc.Dashboard.Overview(c.Request.Context(), identity)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, view)
}
