package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/miufukumura/edushift/internal/dto"
	"github.com/miufukumura/edushift/pkg/response"
)

// ListShifts GET /api/v1/shifts — 自分のシフト一覧。
// 管理者は ?user_id= で他の講師分を閲覧できる
func (h *Handler) ListShifts(c *gin.Context) {
	identity, ok := mustGetIdentity(c)
	if !ok {
		return
	}

	var targetUserID uint
	if raw := c.Query("user_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.BadRequest(c, 40000, "ユーザー ID が正しくありません。")
			return
		}
		targetUserID = uint(id)
	}

	shifts, err := h.svc.Shift.List(c.Request.Context(), identity, targetUserID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, shifts)
}

// UpsertShift POST /api/v1/shifts — 登録と編集を 1 本のフォームで受ける
func (h *Handler) UpsertShift(c *gin.Context) {
	identity, ok := mustGetIdentity(c)
	if !ok {
		return
	}

	var form dto.ShiftForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, 40000, "登録内容を確認してください。")
		return
	}

	if err := h.svc.Shift.Upsert(c.Request.Context(), identity, form); err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, nil)
}

// DeleteShift DELETE /api/v1/shifts/:id
func (h *Handler) DeleteShift(c *gin.Context) {
	identity, ok := mustGetIdentity(c)
	if !ok {
		return
	}

	shiftID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, 40000, "シフト ID が正しくありません。")
		return
	}

	if err := h.svc.Shift.Delete(c.Request.Context(), identity, uint(shiftID)); err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, nil)
}
