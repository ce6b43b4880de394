package ports

import (
	"context"

	"github.com/jcmexdev/cangroo-storefront/internal/storefront/core/domain/entity"
)

// CartStore keeps one cart per visitor between requests.
// Load of an unknown visitor returns an empty cart, not an error.
// Concurrent saves for the same visitor are last-write-wins.
type CartStore interface {
	Load(ctx context.Context, visitorID string) (entity.Cart, error)
	Save(ctx context.Context, visitorID string, cart entity.Cart) error
}
