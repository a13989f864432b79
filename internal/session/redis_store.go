package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/miufukumura/edushift/pkg/redis"
)

// RedisStore Redis をバックエンドとするセッションストア
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore Redis セッションストアを生成する
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Establish(ctx context.Context, identity Identity) (string, error) {
	token := uuid.NewString()

	data, err := json.Marshal(identity)
	if err != nil {
		return "", fmt.Errorf("セッションの直列化に失敗: %w", err)
	}

	if err := s.client.SetSession(ctx, token, data, s.ttl); err != nil {
		return "", fmt.Errorf("セッションの保存に失敗: %w", err)
	}

	return token, nil
}

func (s *RedisStore) Resolve(ctx context.Context, token string) (Identity, error) {
	data, err := s.client.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return Identity{}, ErrSessionNotFound
		}
		return Identity{}, fmt.Errorf("セッションの取得に失敗: %w", err)
	}

	var identity Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return Identity{}, fmt.Errorf("セッションの復元に失敗: %w", err)
	}

	return identity, nil
}

func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	return s.client.DeleteSession(ctx, token)
}
