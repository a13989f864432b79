// Package session ログインセッションの確立・解決・破棄を提供する。
// トークンは不透明な UUID で、本人情報のスナップショットを
// サーバー側ストアに TTL 付きで保持する。
package session

import (
	"context"
	"errors"

	"github.com/miufukumura/edushift/internal/model"
)

// ErrSessionNotFound トークンが無効または期限切れ
var ErrSessionNotFound = errors.New("セッションが存在しません")

// Identity 認証済みユーザーのスナップショット。
// ログイン時点の情報を保持し、以降のリクエストで権限判定に使用する
type Identity struct {
	UserID uint       `json:"user_id"`
	Name   string     `json:"name"`
	Role   model.Role `json:"role"`
}

// Store セッションストアの抽象。
// Redis 実装が本番用、メモリ実装はフォールバックとテスト用
type Store interface {
	// Establish スナップショットを保存し、新しいトークンを発行する
	Establish(ctx context.Context, identity Identity) (string, error)
	// Resolve トークンからスナップショットを復元する。
	// 無効・期限切れなら ErrSessionNotFound
	Resolve(ctx context.Context, token string) (Identity, error)
	// Revoke セッションを破棄する。存在しないトークンは no-op
	Revoke(ctx context.Context, token string) error
}
