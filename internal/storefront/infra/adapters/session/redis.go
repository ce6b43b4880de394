package session

import (
	"context"
	"time"

	"github.com/jcmexdev/cangroo-storefront/internal/pkg/cache"
	"github.com/jcmexdev/cangroo-storefront/internal/storefront/core/domain/entity"
	"github.com/jcmexdev/cangroo-storefront/internal/storefront/core/ports"
)

var _ ports.CartStore = (*RedisStore)(nil)

const cartOperation = "cart"

// RedisStore keeps each cart as a JSON string under "<service>:cart:<visitor>".
// Every save refreshes the TTL.
type RedisStore struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisStore stores carts in c, expiring them after ttl of inactivity.
func NewRedisStore(c cache.Cache, ttl time.Duration) *RedisStore {
	return &RedisStore{cache: c, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, visitorID string) (entity.Cart, error) {
	payload, err := s.cache.Get(ctx, s.cache.GenerateKey(cartOperation, visitorID))
	if err != nil {
		return nil, err
	}
	return DecodeCart(payload)
}

func (s *RedisStore) Save(ctx context.Context, visitorID string, cart entity.Cart) error {
	key := s.cache.GenerateKey(cartOperation, visitorID)
	if len(cart) == 0 {
		return s.cache.Delete(ctx, key)
	}

	payload, err := EncodeCart(cart)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, key, payload, s.ttl)
}
