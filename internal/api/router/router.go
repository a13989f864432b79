// Package router ルーティング定義。ミドルウェアの適用順と
// エンドポイントの対応をここに集約する
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/miufukumura/edushift/config"
	"github.com/miufukumura/edushift/internal/api/handler"
	"github.com/miufukumura/edushift/internal/api/middleware"
	"github.com/miufukumura/edushift/internal/model"
	"github.com/miufukumura/edushift/internal/session"
	"github.com/miufukumura/edushift/pkg/redis"
)

// リクエストボディの上限
const maxBodyBytes = 1 << 20

// ログインレート制限: 1 分あたりの試行回数
const loginRateLimit = 10

// Setup ルーターを構築する。redisClient は nil 可（縮退運転）
func Setup(cfg *config.Config, h *handler.Handler, sessions session.Store, redisClient *redis.Client, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	// ── 認証不要 ──
	api.POST("/auth/login",
		middleware.LoginRateLimit(redisClient, logger, loginRateLimit, time.Minute),
		h.Login,
	)
	api.POST("/auth/register", h.Register)

	// ── 要ログイン ──
	authed := api.Group("")
	authed.Use(middleware.SessionAuth(sessions))

	authed.POST("/auth/logout", h.Logout)
	authed.GET("/auth/me", h.Me)

	shifts := authed.Group("/shifts")
	{
		shifts.GET("", h.ListShifts)
		shifts.POST("", h.UpsertShift)
		shifts.DELETE("/:id", h.DeleteShift)
		shifts.GET("/calendar.ics", h.ExportShiftsICS)
	}

	lessons := authed.Group("/lessons")
	{
		lessons.GET("", h.ListLessons)
		lessons.POST("", h.CreateLesson)
		lessons.GET("/options", h.LessonOptions)
	}

	// ── 管理者のみ ──
	admin := authed.Group("/admin", middleware.RoleAuth(model.RoleAdmin))
	{
		admin.POST("/manage", h.Manage)
		admin.GET("/accounts", h.ListAccounts)
		admin.GET("/dashboard", h.Dashboard)
	}

	export := authed.Group("/export", middleware.RoleAuth(model.RoleAdmin))
	{
		export.GET("/shifts.xlsx", h.ExportShiftsXLSX)
	}

	return r
}
