package session

import (
	"context"
	"sync"

	"github.com/jcmexdev/cangroo-storefront/internal/storefront/core/domain/entity"
	"github.com/jcmexdev/cangroo-storefront/internal/storefront/core/ports"
)

var _ ports.CartStore = (*MemoryStore)(nil)

// MemoryStore keeps carts in process memory. Carts are lost on restart.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]entity.Cart
}

// NewMemoryStore returns an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]entity.Cart)}
}

func (s *MemoryStore) Load(_ context.Context, visitorID string) (entity.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[visitorID]
	if !ok {
		return entity.NewCart(), nil
	}
	return cart.Clone(), nil
}

func (s *MemoryStore) Save(_ context.Context, visitorID string, cart entity.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(cart) == 0 {
		delete(s.carts, visitorID)
		return nil
	}
	s.carts[visitorID] = cart.Sanitize()
	return nil
}
