package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"market-api/models"

	"github.com/redis/go-redis/v9"
)

// ErrStoreUnavailable is returned when the cart store cannot be reached.
// A missing cart is not an error; Fetch reports it as a nil cart.
var ErrStoreUnavailable = errors.New("cart store unavailable")

type CartRepository struct {
	client *redis.Client
}

func NewCartRepository(client *redis.Client) *CartRepository {
	return &CartRepository{client: client}
}

func cartKey(customerID int64) string {
	return fmt.Sprintf("cart:%d", customerID)
}

// Fetch returns the stored cart for the customer, or nil when none exists.
func (r *CartRepository) Fetch(ctx context.Context, customerID int64) (*models.Cart, error) {
	data, err := r.client.Get(ctx, cartKey(customerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("failed to decode stored cart: %w", err)
	}

	return &cart, nil
}

// Replace unconditionally overwrites the stored cart for the customer.
// There is no version check; concurrent writers can overwrite each other.
func (r *CartRepository) Replace(ctx context.Context, customerID int64, cart *models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := r.client.Set(ctx, cartKey(customerID), data, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return nil
}
