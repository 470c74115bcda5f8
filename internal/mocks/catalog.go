package mocks

import (
	"context"

	"github.com/pageza/alchemorsel-console/internal/model"
	"github.com/pageza/alchemorsel-console/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockCatalogService is a mock implementation of the catalog service
type MockCatalogService struct {
	mock.Mock
}

// AddRecipe mocks the AddRecipe method
func (m *MockCatalogService) AddRecipe(ctx context.Context, recipe *model.CatalogRecipe) (*model.CatalogRecipe, error) {
	args := m.Called(ctx, recipe)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CatalogRecipe), args.Error(1)
}

// ListRecipes mocks the ListRecipes method
func (m *MockCatalogService) ListRecipes(ctx context.Context) ([]*model.CatalogRecipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.CatalogRecipe), args.Error(1)
}

// GetRecipe mocks the GetRecipe method
func (m *MockCatalogService) GetRecipe(ctx context.Context, name string) (*model.CatalogRecipe, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CatalogRecipe), args.Error(1)
}

// Summarize mocks the Summarize method
func (m *MockCatalogService) Summarize(ctx context.Context, name string) (*service.RecipeSummary, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RecipeSummary), args.Error(1)
}

var _ service.ICatalogService = (*MockCatalogService)(nil)
