package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/miufukumura/edushift/pkg/redis"
	"github.com/miufukumura/edushift/pkg/response"
)

// LoginRateLimit ログイン試行を送信元 IP ごとに制限する。
// Redis 未接続（縮退運転）時は制限なしで通す
func LoginRateLimit(client *redis.Client, logger *zap.Logger, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:login:%s", c.ClientIP())
		ok, err := client.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			// 制限の判定に失敗してもログインは通す
			logger.Warn("レート制限の判定に失敗", zap.Error(err))
			c.Next()
			return
		}
		if !ok {
			response.Error(c, http.StatusTooManyRequests, 42900, "ログイン試行が多すぎます。しばらくしてから再度お試しください。")
			c.Abort()
			return
		}

		c.Next()
	}
}
