package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"quickmenu/internal/domain"
	"quickmenu/internal/service"
)

// RedisCartStore keeps one cart snapshot per cafe and session, TTL-bounded so
// abandoned carts expire on their own.
type RedisCartStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{Client: client, TTL: ttl}
}

func (s *RedisCartStore) cartKey(cafeID, sessionID string) string {
	return "cart:" + cafeID + ":" + sessionID
}

func (s *RedisCartStore) GetCart(ctx context.Context, cafeID, sessionID string) (*domain.Cart, error) {
	payload, err := s.Client.Get(ctx, s.cartKey(cafeID, sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &domain.Cart{CafeID: cafeID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(payload, &cart); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return &cart, nil
}

// SaveCart writes the snapshot, dropping the key entirely once the last line
// is removed.
func (s *RedisCartStore) SaveCart(ctx context.Context, sessionID string, cart *domain.Cart) error {
	key := s.cartKey(cart.CafeID, sessionID)
	if cart.Empty() {
		return s.Client.Del(ctx, key).Err()
	}
	payload, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	return s.Client.Set(ctx, key, payload, s.TTL).Err()
}

func (s *RedisCartStore) DeleteCart(ctx context.Context, cafeID, sessionID string) error {
	return s.Client.Del(ctx, s.cartKey(cafeID, sessionID)).Err()
}

var _ service.CartStore = (*RedisCartStore)(nil)
