package services

import (
	"context"
	"market-api/models"
)

type CustomerFinder interface {
	FindByID(ctx context.Context, id int64) (*models.Customer, error)
}

type CustomerService struct {
	customers CustomerFinder
}

func NewCustomerService(customers CustomerFinder) *CustomerService {
	return &CustomerService{customers: customers}
}

// FindByIDAndEmail returns the customer only when both id and email match.
func (s *CustomerService) FindByIDAndEmail(ctx context.Context, id int64, email string) (*models.Customer, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.Email != email {
		return nil, nil
	}
	return customer, nil
}
