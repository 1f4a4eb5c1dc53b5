package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstbook/internal/domain"
	"gstbook/internal/service"
)

// MockItemLibraryService is a mock implementation of service.ItemLibraryService.
type MockItemLibraryService struct {
	mock.Mock
}

func (m *MockItemLibraryService) Create(ctx context.Context, input service.LibraryItemInput) (*domain.LibraryItem, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LibraryItem), args.Error(1)
}

func (m *MockItemLibraryService) GetByID(ctx context.Context, id uuid.UUID) (*domain.LibraryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LibraryItem), args.Error(1)
}

func (m *MockItemLibraryService) List(ctx context.Context, query string) ([]domain.LibraryItem, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LibraryItem), args.Error(1)
}

func (m *MockItemLibraryService) Update(ctx context.Context, id uuid.UUID, input service.UpdateLibraryItemInput) (*domain.LibraryItem, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LibraryItem), args.Error(1)
}

func (m *MockItemLibraryService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMasterDataService is a mock implementation of service.MasterDataService.
type MockMasterDataService struct {
	mock.Mock
}

func (m *MockMasterDataService) SearchServices(ctx context.Context, input service.MasterSearchInput) ([]domain.MasterService, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MasterService), args.Error(1)
}

func (m *MockMasterDataService) ServiceCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockMasterDataService) RecordServiceUsage(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMasterDataService) SearchProducts(ctx context.Context, input service.MasterSearchInput) ([]domain.HSNCode, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HSNCode), args.Error(1)
}

func (m *MockMasterDataService) ProductCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockMasterDataService) Search(ctx context.Context, input service.MasterSearchInput) ([]domain.MasterDataResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MasterDataResult), args.Error(1)
}

func (m *MockMasterDataService) Categories(ctx context.Context) (*domain.MasterDataCategories, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MasterDataCategories), args.Error(1)
}

// MockTemplateService is a mock implementation of service.TemplateService.
type MockTemplateService struct {
	mock.Mock
}

func (m *MockTemplateService) Create(ctx context.Context, input service.CreateTemplateInput) (*domain.InvoiceTemplate, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceTemplate), args.Error(1)
}

func (m *MockTemplateService) GetByID(ctx context.Context, id uuid.UUID) (*domain.InvoiceTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceTemplate), args.Error(1)
}

func (m *MockTemplateService) List(ctx context.Context) ([]domain.InvoiceTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceTemplate), args.Error(1)
}

func (m *MockTemplateService) Update(ctx context.Context, id uuid.UUID, input service.UpdateTemplateInput) (*domain.InvoiceTemplate, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceTemplate), args.Error(1)
}

func (m *MockTemplateService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
