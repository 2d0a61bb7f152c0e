package services

import (
	"context"
	"testing"

	"market-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCustomerFinder struct {
	customers map[int64]*models.Customer
}

func (f *fakeCustomerFinder) FindByID(_ context.Context, id int64) (*models.Customer, error) {
	return f.customers[id], nil
}

func TestFindByIDAndEmail(t *testing.T) {
	finder := &fakeCustomerFinder{customers: map[int64]*models.Customer{
		1: {ID: 1, Email: "buyer@example.com"},
	}}
	service := NewCustomerService(finder)
	ctx := context.Background()

	customer, err := service.FindByIDAndEmail(ctx, 1, "buyer@example.com")
	require.NoError(t, err)
	require.NotNil(t, customer)
	assert.Equal(t, int64(1), customer.ID)

	customer, err = service.FindByIDAndEmail(ctx, 1, "other@example.com")
	require.NoError(t, err)
	assert.Nil(t, customer)

	customer, err = service.FindByIDAndEmail(ctx, 99, "buyer@example.com")
	require.NoError(t, err)
	assert.Nil(t, customer)
}
