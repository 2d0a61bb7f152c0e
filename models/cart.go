package models

// Cart is the per-customer aggregate stored in Redis. Products keep the
// order in which they were first added; product ids are unique within a
// cart and item ids are unique within a product.
type Cart struct {
	CustomerID int64      `json:"customer_id"`
	Products   []*Product `json:"products"`
	Messages   []string   `json:"messages"`
}

type Product struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Items []*ProductItem `json:"items"`
}

type ProductItem struct {
	ID    string `json:"id"`
	Price int64  `json:"price"`
	Count int    `json:"count"`
}

// NewCart returns an empty cart bound to the customer. An absent cart is
// always surfaced to callers as this empty aggregate, never as nil.
func NewCart(customerID int64) *Cart {
	return &Cart{
		CustomerID: customerID,
		Products:   []*Product{},
		Messages:   []string{},
	}
}

func (c *Cart) AddMessage(msg string) {
	c.Messages = append(c.Messages, msg)
}

// FindProduct returns the product with the given id, or nil.
func (c *Cart) FindProduct(productID string) *Product {
	for _, p := range c.Products {
		if p.ID == productID {
			return p
		}
	}
	return nil
}

type AddProductCartForm struct {
	ID    string                   `json:"id" binding:"required"`
	Name  string                   `json:"name"`
	Items []AddProductCartItemForm `json:"items"`
}

type AddProductCartItemForm struct {
	ID    string `json:"id" binding:"required"`
	Price int64  `json:"price"`
	Count int    `json:"count"`
}

// ProductItemFromForm converts a submitted item into its stored form.
func ProductItemFromForm(form AddProductCartItemForm) *ProductItem {
	return &ProductItem{
		ID:    form.ID,
		Price: form.Price,
		Count: form.Count,
	}
}

// ProductFromForm converts a submitted product, items included, into its
// stored form. Counts are taken from the form verbatim.
func ProductFromForm(form AddProductCartForm) *Product {
	items := make([]*ProductItem, 0, len(form.Items))
	for _, it := range form.Items {
		items = append(items, ProductItemFromForm(it))
	}
	return &Product{
		ID:    form.ID,
		Name:  form.Name,
		Items: items,
	}
}
