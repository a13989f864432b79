// Package handler HTTP ハンドラー層。リクエストの解読と
// サービス層エラーの HTTP ステータスへの写像を担う
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/miufukumura/edushift/internal/service"
	"github.com/miufukumura/edushift/pkg/response"
)

// Handler 全ハンドラーの集約
type Handler struct {
	svc    *service.Service
	logger *zap.Logger
}

// NewHandler ハンドラー集約を生成する
func NewHandler(svc *service.Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// respondError サービス層のエラーを HTTP レスポンスへ写像する
func (h *Handler) respondError(c *gin.Context, err error) {
	if ve, ok := service.AsValidationError(err); ok {
		if ve.Form != nil {
			// フォーム内容をエコーバックして再入力に使わせる
			response.ErrorWithData(c, http.StatusBadRequest, 40001, ve.Message, ve.Form)
			return
		}
		response.BadRequest(c, 40001, ve.Message)
		return
	}

	switch {
	case errors.Is(err, service.ErrAuthFailed):
		response.Unauthorized(c, 40102, err.Error())
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, 40301, err.Error())
	case errors.Is(err, service.ErrShiftNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 40401, err.Error())
	case errors.Is(err, service.ErrDuplicateEmail):
		response.Conflict(c, 40901, err.Error())
	case errors.Is(err, service.ErrLessonCreate):
		response.Error(c, http.StatusInternalServerError, 50001, err.Error())
	default:
		response.InternalError(c)
	}
}
