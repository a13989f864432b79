package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/miufukumura/edushift/internal/api/middleware"
	"github.com/miufukumura/edushift/internal/session"
	"github.com/miufukumura/edushift/pkg/response"
)

// mustGetIdentity コンテキストから Identity を取り出す。
// SessionAuth を通っていないルートで呼ばれた場合は 401 を返し false
func mustGetIdentity(c *gin.Context) (session.Identity, bool) {
	v, exists := c.Get(middleware.ContextIdentityKey)
	if !exists {
		response.Unauthorized(c, 40100, "ログインしてください。")
		return session.Identity{}, false
	}
	identity, ok := v.(session.Identity)
	if !ok {
		response.Unauthorized(c, 40100, "ログインしてください。")
		return session.Identity{}, false
	}
	return identity, true
}
