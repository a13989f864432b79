package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/miufukumura/edushift/config"
)

// ErrNotFound キーが存在しない
var ErrNotFound = errors.New("キーが存在しません")

// Client Redis クライアントラッパー
// 現在はセッションストアとログインのレート制限に使用
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient Redis に接続し Ping で疎通確認する
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis 接続に失敗: %w", err)
	}

	logger.Info("Redis 接続成功", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── セッションストレージ ──

const sessionPrefix = "session:"

// SetSession セッションスナップショットを TTL 付きで保存する
func (c *Client) SetSession(ctx context.Context, token string, data []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, sessionPrefix+token, data, ttl).Err()
}

// GetSession セッションスナップショットを取得する。存在しなければ ErrNotFound
func (c *Client) GetSession(ctx context.Context, token string) ([]byte, error) {
	data, err := c.rdb.Get(ctx, sessionPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// DeleteSession セッションを破棄する。存在しないトークンは no-op
func (c *Client) DeleteSession(ctx context.Context, token string) error {
	return c.rdb.Del(ctx, sessionPrefix+token).Err()
}

// ── レート制限 ──

// CheckRateLimit 固定ウィンドウ方式のレート制限。
// ウィンドウ内の回数が limit 以下なら true を返す
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	count, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		// ウィンドウ開始時のみ有効期限を設定
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(limit), nil
}

// Close Redis 接続を閉じる
func (c *Client) Close() error {
	return c.rdb.Close()
}
