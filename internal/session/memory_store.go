package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore プロセス内メモリのセッションストア。
// Redis 未接続時の縮退運転とテストで使用する。
// プロセス再起動で全セッションが失われる
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

type memoryEntry struct {
	identity  Identity
	expiresAt time.Time
}

// NewMemoryStore メモリセッションストアを生成する
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
	}
}

func (s *MemoryStore) Establish(_ context.Context, identity Identity) (string, error) {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = memoryEntry{
		identity:  identity,
		expiresAt: time.Now().Add(s.ttl),
	}

	return token, nil
}

func (s *MemoryStore) Resolve(_ context.Context, token string) (Identity, error) {
	s.mu.RLock()
	entry, ok := s.entries[token]
	s.mu.RUnlock()

	if !ok {
		return Identity{}, ErrSessionNotFound
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, token)
		s.mu.Unlock()
		return Identity{}, ErrSessionNotFound
	}

	return entry.identity, nil
}

func (s *MemoryStore) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}
