package service

import (
	"context"
	"errors"

	"gstbook/internal/domain"
	"gstbook/internal/port"
)

// UpdateBusinessInput is the DTO for editing the seller profile. Nil fields
// are left unchanged.
type UpdateBusinessInput struct {
	Name          *string `json:"name"`
	GSTIN         *string `json:"gstin"`
	PAN           *string `json:"pan"`
	StateCode     *string `json:"state_code"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	Pincode       *string `json:"pincode"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	BankName      *string `json:"bank_name"`
	AccountNumber *string `json:"account_number"`
	IFSC          *string `json:"ifsc"`
	InvoicePrefix *string `json:"invoice_prefix"`
}

// BusinessService manages the seller profile.
type BusinessService interface {
	Get(ctx context.Context) (*domain.BusinessProfile, error)
	Update(ctx context.Context, input UpdateBusinessInput) (*domain.BusinessProfile, error)
}

type businessService struct {
	repo port.BusinessRepository
}

// NewBusinessService creates a new BusinessService implementation.
func NewBusinessService(repo port.BusinessRepository) BusinessService {
	return &businessService{repo: repo}
}

// Get returns an empty profile until one has been saved.
func (s *businessService) Get(ctx context.Context) (*domain.BusinessProfile, error) {
	profile, err := s.repo.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.BusinessProfile{NextInvoiceSeq: 1}, nil
	}
	return profile, err
}

func (s *businessService) Update(ctx context.Context, input UpdateBusinessInput) (*domain.BusinessProfile, error) {
	profile, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	applyString(&profile.Name, input.Name)
	applyString(&profile.GSTIN, input.GSTIN)
	applyString(&profile.PAN, input.PAN)
	applyString(&profile.StateCode, input.StateCode)
	applyString(&profile.Address, input.Address)
	applyString(&profile.City, input.City)
	applyString(&profile.Pincode, input.Pincode)
	applyString(&profile.Phone, input.Phone)
	applyString(&profile.Email, input.Email)
	applyString(&profile.BankName, input.BankName)
	applyString(&profile.AccountNumber, input.AccountNumber)
	applyString(&profile.IFSC, input.IFSC)
	applyString(&profile.InvoicePrefix, input.InvoicePrefix)

	if err := normalizeParty(&profile.GSTIN, &profile.StateCode); err != nil {
		return nil, err
	}

	if err := s.repo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
