package service

import (
	"context"

	"rentalmanager-backend/internal/domain"
	"rentalmanager-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) AddCustomer(ctx context.Context, customer *domain.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	return s.customerRepo.Create(ctx, customer)
}

func (s *customerService) GetCustomer(ctx context.Context, id int32) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	return s.customerRepo.Update(ctx, customer)
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}
