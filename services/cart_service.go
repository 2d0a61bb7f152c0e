package services

import (
	"context"
	"market-api/models"
	"sync"
)

// CartStore is the narrow get/put capability the aggregator needs from the
// key-value store. Fetch returns a nil cart when the customer has none.
type CartStore interface {
	Fetch(ctx context.Context, customerID int64) (*models.Cart, error)
	Replace(ctx context.Context, customerID int64, cart *models.Cart) error
}

type CartService struct {
	store CartStore

	// Per-customer write serialization, off by default. Without it the
	// fetch-merge-replace below is an unguarded read-modify-write: two
	// concurrent AddToCart calls for one customer can lose an update.
	serialize bool
	locks     sync.Map // customerID -> *sync.Mutex
}

func NewCartService(store CartStore) *CartService {
	return &CartService{store: store}
}

// SerializeCustomerWrites makes AddToCart hold a per-customer mutex around
// the fetch-merge-replace cycle. This only serializes writers inside this
// process; it is an enhancement, not part of the original behavior.
func (s *CartService) SerializeCustomerWrites() {
	s.serialize = true
}

func (s *CartService) lockCustomer(customerID int64) func() {
	if !s.serialize {
		return func() {}
	}
	v, _ := s.locks.LoadOrStore(customerID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// GetCart returns the stored cart, or an empty cart bound to the customer
// when none exists. Nothing is written to the store either way.
func (s *CartService) GetCart(ctx context.Context, customerID int64) (*models.Cart, error) {
	cart, err := s.store.Fetch(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return models.NewCart(customerID), nil
	}
	return cart, nil
}

// ReplaceCart overwrites the stored cart verbatim and returns it.
func (s *CartService) ReplaceCart(ctx context.Context, customerID int64, cart *models.Cart) (*models.Cart, error) {
	if err := s.store.Replace(ctx, customerID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// AddToCart merges the submitted product into the customer's cart and
// persists the result.
//
// A product id not yet in the cart is appended as-is. For a product already
// in the cart, unknown item ids are appended and known item ids accumulate
// their count. The name and price checks below compare with == on purpose:
// the system this reimplements notifies when the stored and incoming values
// are equal, and that behavior is kept verbatim.
func (s *CartService) AddToCart(ctx context.Context, customerID int64, form models.AddProductCartForm) (*models.Cart, error) {
	unlock := s.lockCustomer(customerID)
	defer unlock()

	cart, err := s.store.Fetch(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = models.NewCart(customerID)
	}

	product := cart.FindProduct(form.ID)
	if product == nil {
		cart.Products = append(cart.Products, models.ProductFromForm(form))
	} else {
		s.mergeProduct(cart, product, form)
	}

	if err := s.store.Replace(ctx, customerID, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (s *CartService) mergeProduct(cart *models.Cart, product *models.Product, form models.AddProductCartForm) {
	existing := make(map[string]*models.ProductItem, len(product.Items))
	for _, item := range product.Items {
		existing[item.ID] = item
	}

	if product.Name == form.Name {
		cart.AddMessage(product.Name + "의 정보가 변경되었습니다. 확인부탁드립니다.")
	}

	for _, itemForm := range form.Items {
		item := models.ProductItemFromForm(itemForm)

		stored, ok := existing[item.ID]
		if !ok {
			product.Items = append(product.Items, item)
			continue
		}

		if stored.Price == item.Price {
			cart.AddMessage(product.Name + "의 가격이 변경되었습니다. 확인부탁드립니다.")
		}
		stored.Count += item.Count
	}
}
