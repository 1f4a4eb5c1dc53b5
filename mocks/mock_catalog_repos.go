package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstbook/internal/domain"
)

// MockLibraryItemRepo is a mock implementation of port.LibraryItemRepository.
type MockLibraryItemRepo struct {
	mock.Mock
}

func (m *MockLibraryItemRepo) Create(ctx context.Context, item *domain.LibraryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockLibraryItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.LibraryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LibraryItem), args.Error(1)
}

func (m *MockLibraryItemRepo) List(ctx context.Context, query string) ([]domain.LibraryItem, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LibraryItem), args.Error(1)
}

func (m *MockLibraryItemRepo) Update(ctx context.Context, item *domain.LibraryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockLibraryItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMasterServiceRepo is a mock implementation of port.MasterServiceRepository.
type MockMasterServiceRepo struct {
	mock.Mock
}

func (m *MockMasterServiceRepo) Search(ctx context.Context, filter *domain.MasterServiceFilter) ([]domain.MasterService, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MasterService), args.Error(1)
}

func (m *MockMasterServiceRepo) Match(ctx context.Context, filter *domain.MasterServiceFilter) ([]domain.MasterService, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MasterService), args.Error(1)
}

func (m *MockMasterServiceRepo) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockMasterServiceRepo) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTemplateRepo is a mock implementation of port.InvoiceTemplateRepository.
type MockTemplateRepo struct {
	mock.Mock
}

func (m *MockTemplateRepo) Create(ctx context.Context, tmpl *domain.InvoiceTemplate) error {
	args := m.Called(ctx, tmpl)
	return args.Error(0)
}

func (m *MockTemplateRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.InvoiceTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceTemplate), args.Error(1)
}

func (m *MockTemplateRepo) List(ctx context.Context) ([]domain.InvoiceTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceTemplate), args.Error(1)
}

func (m *MockTemplateRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockTemplateRepo) Update(ctx context.Context, tmpl *domain.InvoiceTemplate) error {
	args := m.Called(ctx, tmpl)
	return args.Error(0)
}

func (m *MockTemplateRepo) SetDefault(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTemplateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
