package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"gstbook/internal/domain"
	"gstbook/internal/port"
)

// CreateCustomerInput is the DTO for creating a customer.
type CreateCustomerInput struct {
	Name      string `json:"name" binding:"required"`
	GSTIN     string `json:"gstin"`
	StateCode string `json:"state_code"`
	Address   string `json:"address"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// UpdateCustomerInput is the DTO for updating a customer.
type UpdateCustomerInput struct {
	Name      *string `json:"name"`
	GSTIN     *string `json:"gstin"`
	StateCode *string `json:"state_code"`
	Address   *string `json:"address"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

// CustomerService defines the customer management contract.
type CustomerService interface {
	Create(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, query string, offset, limit int) ([]domain.Customer, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateCustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerService struct {
	repo port.CustomerRepository
}

// NewCustomerService creates a new CustomerService implementation.
func NewCustomerService(repo port.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) Create(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error) {
	customer := &domain.Customer{
		Name:      strings.TrimSpace(input.Name),
		GSTIN:     input.GSTIN,
		StateCode: input.StateCode,
		Address:   strings.TrimSpace(input.Address),
		Email:     strings.TrimSpace(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
	}
	if err := validateCustomer(customer); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *customerService) List(ctx context.Context, query string, offset, limit int) ([]domain.Customer, int, error) {
	return s.repo.List(ctx, strings.TrimSpace(query), offset, limit)
}

func (s *customerService) Update(ctx context.Context, id uuid.UUID, input UpdateCustomerInput) (*domain.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&customer.Name, input.Name)
	applyString(&customer.GSTIN, input.GSTIN)
	applyString(&customer.StateCode, input.StateCode)
	applyString(&customer.Address, input.Address)
	applyString(&customer.Email, input.Email)
	applyString(&customer.Phone, input.Phone)

	if err := validateCustomer(customer); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func validateCustomer(c *domain.Customer) error {
	if c.Name == "" {
		return domain.ErrCustomerNameRequired
	}
	return normalizeParty(&c.GSTIN, &c.StateCode)
}
