package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/miufukumura/edushift/internal/dto"
	"github.com/miufukumura/edushift/pkg/response"
)

// ListLessons GET /api/v1/lessons — 直近の授業記録
func (h *Handler) ListLessons(c *gin.Context) {
	identity, ok := mustGetIdentity(c)
	if !ok {
		return
	}

	lessons, err := h.svc.Lesson.ListRecent(c.Request.Context(), identity)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, lessons)
}

// CreateLesson POST /api/v1/lessons
func (h *Handler) CreateLesson(c *gin.Context) {
	identity, ok := mustGetIdentity(c)
	if !ok {
		return
	}

	var form dto.LessonForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, 40000, "登録内容を確認してください。")
		return
	}

	if err := h.svc.Lesson.Create(c.Request.Context(), identity, form); err != nil {
		h.respondError(c, err)
		return
	}
	response.Created(c, nil)
}

// LessonOptions GET /api/v1/lessons/options — 登録フォームの選択肢
func (h *Handler) LessonOptions(c *gin.Context) {
	identity, ok := mustGetIdentity(c)
	if !ok {
		return
	}

	opts, err := h.svc.Lesson.Options(c.Request.Context(), identity)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, opts)
}
