// Package session provides ports.CartStore implementations backed by process
// memory and Redis. The SQLite store lives in the sqlite subpackage.
package session

import (
	"encoding/json"
	"fmt"

	"github.com/jcmexdev/cangroo-storefront/internal/storefront/core/domain/entity"
)

// EncodeCart serialises a cart as a JSON object of product ID to quantity.
func EncodeCart(cart entity.Cart) (string, error) {
	b, err := json.Marshal(cart.Sanitize())
	if err != nil {
		return "", fmt.Errorf("session: encode cart: %w", err)
	}
	return string(b), nil
}

// DecodeCart parses a stored cart. An empty payload is an empty cart and
// non-positive quantities are dropped.
func DecodeCart(payload string) (entity.Cart, error) {
	if payload == "" {
		return entity.NewCart(), nil
	}

	var cart entity.Cart
	if err := json.Unmarshal([]byte(payload), &cart); err != nil {
		return nil, fmt.Errorf("session: decode cart: %w", err)
	}
	return cart.Sanitize(), nil
}
