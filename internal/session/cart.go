package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/anujthakur2004/Fashion-Hub/internal/model"
)

const cartField = "cart"

// CartStore is a flat persistence shim over the session store. It does
// no validation; the cart service owns the business rules.
type CartStore struct {
	store Store
}

func NewCartStore(store Store) *CartStore {
	return &CartStore{store: store}
}

func (c *CartStore) Load(ctx context.Context, sessionID string) (model.Cart, error) {
	data, err := c.store.Get(ctx, sessionID, cartField)
	if errors.Is(err, ErrNoValue) {
		return model.Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	var cart model.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return cart, nil
}

func (c *CartStore) Save(ctx context.Context, sessionID string, cart model.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := c.store.Set(ctx, sessionID, cartField, data); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (c *CartStore) Clear(ctx context.Context, sessionID string) error {
	return c.store.Delete(ctx, sessionID, cartField)
}
