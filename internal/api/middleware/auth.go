package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/miufukumura/edushift/internal/model"
	"github.com/miufukumura/edushift/internal/session"
	"github.com/miufukumura/edushift/pkg/response"
)

// コンテキストキー
const (
	// ContextIdentityKey 認証済み Identity
	ContextIdentityKey = "identity"
	// ContextTokenKey リクエストのセッショントークン
	ContextTokenKey = "sessionToken"
)

// SessionAuth Bearer トークンをセッションストアで解決し、
// Identity をコンテキストに載せる。無効・期限切れは 401
func SessionAuth(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, 40100, "ログインしてください。")
			c.Abort()
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(c, 40100, "ログインしてください。")
			c.Abort()
			return
		}

		identity, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			response.Unauthorized(c, 40101, "セッションが無効です。再度ログインしてください。")
			c.Abort()
			return
		}

		c.Set(ContextIdentityKey, identity)
		c.Set(ContextTokenKey, token)
		c.Next()
	}
}

// RoleAuth 指定した役割のみ通す。SessionAuth の後段で使う
func RoleAuth(roles ...model.Role) gin.HandlerFunc {
	allowed := make(map[model.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		v, exists := c.Get(ContextIdentityKey)
		if !exists {
			response.Unauthorized(c, 40100, "ログインしてください。")
			c.Abort()
			return
		}

		identity, ok := v.(session.Identity)
		if !ok {
			response.Unauthorized(c, 40100, "ログインしてください。")
			c.Abort()
			return
		}

		if _, ok := allowed[identity.Role]; !ok {
			response.Forbidden(c, 40301, "この操作を行う権限がありません。")
			c.Abort()
			return
		}

		c.Next()
	}
}
