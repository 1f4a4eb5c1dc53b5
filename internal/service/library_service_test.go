package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gstbook/internal/domain"
	"gstbook/internal/service"
	"gstbook/mocks"
)

func TestItemLibraryService_Create_DefaultsUnit(t *testing.T) {
	repo := new(mocks.MockLibraryItemRepo)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.LibraryItem")).Return(nil)

	item, err := service.NewItemLibraryService(repo).Create(context.Background(), service.LibraryItemInput{
		Description: "  Website maintenance ",
		SACCode:     "998314",
		GSTRate:     money("18"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Website maintenance", item.Description)
	assert.Equal(t, "Nos", item.Unit)
	assert.True(t, item.IsActive)
	repo.AssertExpectations(t)
}

func TestItemLibraryService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input service.LibraryItemInput
		want  error
	}{
		{"blank description", service.LibraryItemInput{Description: " ", GSTRate: money("18")}, domain.ErrDescriptionRequired},
		{"rate off slab", service.LibraryItemInput{Description: "Rice", GSTRate: money("3")}, domain.ErrInvalidGSTRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockLibraryItemRepo)

			_, err := service.NewItemLibraryService(repo).Create(context.Background(), tt.input)

			assert.ErrorIs(t, err, tt.want)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestItemLibraryService_List_TrimsQuery(t *testing.T) {
	repo := new(mocks.MockLibraryItemRepo)
	repo.On("List", mock.Anything, "rice").Return([]domain.LibraryItem{{Description: "Rice"}}, nil)

	items, err := service.NewItemLibraryService(repo).List(context.Background(), "  rice ")

	require.NoError(t, err)
	assert.Len(t, items, 1)
	repo.AssertExpectations(t)
}

func TestItemLibraryService_Update(t *testing.T) {
	repo := new(mocks.MockLibraryItemRepo)
	existing := &domain.LibraryItem{ID: uuid.New(), Description: "Rice", GSTRate: money("5"), Unit: "Kg", IsActive: true}
	repo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)
	rate := money("12")
	inactive := false

	item, err := service.NewItemLibraryService(repo).Update(context.Background(), existing.ID, service.UpdateLibraryItemInput{
		Category: strPtr("Grains"),
		GSTRate:  &rate,
		IsActive: &inactive,
	})

	require.NoError(t, err)
	assert.Equal(t, "Grains", item.Category)
	assert.Equal(t, "Kg", item.Unit)
	assertMoney(t, "12.00", item.GSTRate)
	assert.False(t, item.IsActive)
	repo.AssertExpectations(t)
}

func TestItemLibraryService_Update_RejectsOffSlabRate(t *testing.T) {
	repo := new(mocks.MockLibraryItemRepo)
	existing := &domain.LibraryItem{ID: uuid.New(), Description: "Rice", GSTRate: money("5"), Unit: "Kg"}
	repo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	rate := money("0.25")

	_, err := service.NewItemLibraryService(repo).Update(context.Background(), existing.ID, service.UpdateLibraryItemInput{GSTRate: &rate})

	assert.ErrorIs(t, err, domain.ErrInvalidGSTRate)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestItemLibraryService_Update_NotFound(t *testing.T) {
	repo := new(mocks.MockLibraryItemRepo)
	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrLibraryItemNotFound)

	_, err := service.NewItemLibraryService(repo).Update(context.Background(), id, service.UpdateLibraryItemInput{})

	assert.ErrorIs(t, err, domain.ErrLibraryItemNotFound)
}
