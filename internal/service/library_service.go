package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gstbook/internal/domain"
	"gstbook/internal/gst"
	"gstbook/internal/port"
)

const defaultUnit = "Nos"

// LibraryItemInput is the DTO for creating a library item.
type LibraryItemInput struct {
	Description string          `json:"description" binding:"required"`
	HSNCode     string          `json:"hsn_code"`
	SACCode     string          `json:"sac_code"`
	GSTRate     decimal.Decimal `json:"gst_rate"`
	Unit        string          `json:"unit"`
	Category    string          `json:"category"`
	IsActive    *bool           `json:"is_active"`
}

// UpdateLibraryItemInput is the DTO for updating a library item.
type UpdateLibraryItemInput struct {
	Description *string          `json:"description"`
	HSNCode     *string          `json:"hsn_code"`
	SACCode     *string          `json:"sac_code"`
	GSTRate     *decimal.Decimal `json:"gst_rate"`
	Unit        *string          `json:"unit"`
	Category    *string          `json:"category"`
	IsActive    *bool            `json:"is_active"`
}

// ItemLibraryService manages the saved item library.
type ItemLibraryService interface {
	Create(ctx context.Context, input LibraryItemInput) (*domain.LibraryItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.LibraryItem, error)
	List(ctx context.Context, query string) ([]domain.LibraryItem, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateLibraryItemInput) (*domain.LibraryItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type itemLibraryService struct {
	repo port.LibraryItemRepository
}

// NewItemLibraryService creates a new ItemLibraryService implementation.
func NewItemLibraryService(repo port.LibraryItemRepository) ItemLibraryService {
	return &itemLibraryService{repo: repo}
}

func (s *itemLibraryService) Create(ctx context.Context, input LibraryItemInput) (*domain.LibraryItem, error) {
	item := &domain.LibraryItem{
		Description: strings.TrimSpace(input.Description),
		HSNCode:     strings.TrimSpace(input.HSNCode),
		SACCode:     strings.TrimSpace(input.SACCode),
		GSTRate:     input.GSTRate,
		Unit:        strings.TrimSpace(input.Unit),
		Category:    strings.TrimSpace(input.Category),
		IsActive:    input.IsActive == nil || *input.IsActive,
	}
	if err := validateLibraryItem(item); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemLibraryService) GetByID(ctx context.Context, id uuid.UUID) (*domain.LibraryItem, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *itemLibraryService) List(ctx context.Context, query string) ([]domain.LibraryItem, error) {
	return s.repo.List(ctx, strings.TrimSpace(query))
}

func (s *itemLibraryService) Update(ctx context.Context, id uuid.UUID, input UpdateLibraryItemInput) (*domain.LibraryItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&item.Description, input.Description)
	applyString(&item.HSNCode, input.HSNCode)
	applyString(&item.SACCode, input.SACCode)
	applyString(&item.Unit, input.Unit)
	applyString(&item.Category, input.Category)
	if input.GSTRate != nil {
		item.GSTRate = *input.GSTRate
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := validateLibraryItem(item); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemLibraryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func validateLibraryItem(item *domain.LibraryItem) error {
	if item.Description == "" {
		return domain.ErrDescriptionRequired
	}
	if !gst.ValidRate(item.GSTRate) {
		return domain.ErrInvalidGSTRate
	}
	if item.Unit == "" {
		item.Unit = defaultUnit
	}
	return nil
}
