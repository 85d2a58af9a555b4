package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"espuma/utils"

	"github.com/go-redis/redis/v8"
)

// CartStore persists serialized cart state keyed by session.
type CartStore interface {
	Load(ctx context.Context, sessionID string) ([]byte, error) // nil when absent
	Save(ctx context.Context, sessionID string, data []byte) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisCartStore is the production CartStore, one key per session with a
// sliding TTL refreshed on every save.
type RedisCartStore struct {
	Client *redis.Client
}

// NewRedisCartStore returns a CartStore over the shared cart cache client.
func NewRedisCartStore() *RedisCartStore {
	return &RedisCartStore{Client: utils.GetCartCacheClient()}
}

func (s *RedisCartStore) Load(ctx context.Context, sessionID string) ([]byte, error) {
	data, err := s.Client.Get(ctx, utils.CartCachePrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart for session %s: %w", sessionID, err)
	}
	return data, nil
}

func (s *RedisCartStore) Save(ctx context.Context, sessionID string, data []byte) error {
	if err := s.Client.Set(ctx, utils.CartCachePrefix+sessionID, data, utils.CartCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to save cart for session %s: %w", sessionID, err)
	}
	return nil
}

func (s *RedisCartStore) Delete(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, utils.CartCachePrefix+sessionID).Err()
}

// MemoryCartStore is an in-process CartStore for tests.
type MemoryCartStore struct {
	mu    sync.Mutex
	carts map[string][]byte
}

// NewMemoryCartStore returns an empty in-memory store.
func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[string][]byte)}
}

func (s *MemoryCartStore) Load(_ context.Context, sessionID string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.carts[sessionID]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *MemoryCartStore) Save(_ context.Context, sessionID string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	saved := make([]byte, len(data))
	copy(saved, data)
	s.carts[sessionID] = saved
	return nil
}

func (s *MemoryCartStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}
