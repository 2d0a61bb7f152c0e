package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCart(t *testing.T) {
	cart := NewCart(42)

	assert.Equal(t, int64(42), cart.CustomerID)
	assert.NotNil(t, cart.Products)
	assert.NotNil(t, cart.Messages)
	assert.Empty(t, cart.Products)
	assert.Empty(t, cart.Messages)
}

func TestProductFromForm(t *testing.T) {
	form := AddProductCartForm{
		ID:   "P1",
		Name: "Shoe",
		Items: []AddProductCartItemForm{
			{ID: "I1", Price: 100, Count: 1},
			{ID: "I2", Price: 150, Count: 2},
		},
	}

	product := ProductFromForm(form)

	assert.Equal(t, "P1", product.ID)
	assert.Equal(t, "Shoe", product.Name)
	require.Len(t, product.Items, 2)
	assert.Equal(t, &ProductItem{ID: "I1", Price: 100, Count: 1}, product.Items[0])
	assert.Equal(t, &ProductItem{ID: "I2", Price: 150, Count: 2}, product.Items[1])
}

func TestFindProduct(t *testing.T) {
	cart := NewCart(1)
	cart.Products = append(cart.Products,
		&Product{ID: "P1"},
		&Product{ID: "P2"},
	)

	assert.Same(t, cart.Products[1], cart.FindProduct("P2"))
	assert.Nil(t, cart.FindProduct("P3"))
}
