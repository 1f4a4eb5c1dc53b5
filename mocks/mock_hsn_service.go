package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstbook/internal/domain"
	"gstbook/internal/hsn"
	"gstbook/internal/service"
)

// MockHSNService is a mock implementation of service.HSNService.
type MockHSNService struct {
	mock.Mock
}

func (m *MockHSNService) Suggest(ctx context.Context, query string) ([]hsn.Match, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]hsn.Match), args.Error(1)
}

func (m *MockHSNService) Search(ctx context.Context, input service.HSNSearchInput) ([]domain.HSNCode, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HSNCode), args.Error(1)
}

func (m *MockHSNService) Lookup(ctx context.Context, code string) ([]hsn.Code, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]hsn.Code), args.Error(1)
}

func (m *MockHSNService) RecordUsage(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockHSNService) Reload(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockHSNService) CheckLines(ctx context.Context, items []domain.InvoiceItem) []service.LineWarning {
	args := m.Called(ctx, items)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]service.LineWarning)
}
