package cartstore

import (
	"encoding/json"
	"fmt"

	"rocketshoes-cart/internal/domain"
)

// Encode serializes the cart as a JSON array of line items.
func Encode(cart domain.Cart) ([]byte, error) {
	if cart == nil {
		cart = domain.Cart{}
	}
	blob, err := json.Marshal(cart)
	if err != nil {
		return nil, fmt.Errorf("encode cart: %w", err)
	}
	return blob, nil
}

// Decode parses a snapshot and rejects one that breaks the cart invariants:
// duplicate ids or an amount below one.
func Decode(blob []byte) (domain.Cart, error) {
	var cart domain.Cart
	if err := json.Unmarshal(blob, &cart); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	if cart == nil {
		return domain.Cart{}, nil
	}
	seen := make(map[int64]struct{}, len(cart))
	for _, item := range cart {
		if item.Amount < 1 {
			return nil, fmt.Errorf("decode cart: product %d has amount %d", item.ID, item.Amount)
		}
		if _, dup := seen[item.ID]; dup {
			return nil, fmt.Errorf("decode cart: duplicate product %d", item.ID)
		}
		seen[item.ID] = struct{}{}
	}
	return cart, nil
}
