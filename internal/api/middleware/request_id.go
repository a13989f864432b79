package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextRequestIDKey リクエスト ID のコンテキストキー
const ContextRequestIDKey = "requestID"

// リクエスト ID のレスポンスヘッダー
const headerRequestID = "X-Request-ID"

// RequestID 各リクエストに ID を割り当てる。クライアント指定があれば引き継ぐ
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}
