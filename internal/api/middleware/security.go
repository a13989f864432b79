package middleware

import "github.com/gin-gonic/gin"

// SecurityHeaders 基本的なセキュリティヘッダーを付与する
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "no-referrer")
		c.Next()
	}
}
