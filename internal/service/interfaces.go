package service

import (
	"context"

	"github.com/pageza/alchemorsel-console/internal/model"
)

// ICatalogService defines the interface for catalog operations
type ICatalogService interface {
	AddRecipe(ctx context.Context, recipe *model.CatalogRecipe) (*model.CatalogRecipe, error)
	ListRecipes(ctx context.Context) ([]*model.CatalogRecipe, error)
	GetRecipe(ctx context.Context, name string) (*model.CatalogRecipe, error)
	Summarize(ctx context.Context, name string) (*RecipeSummary, error)
}

var _ ICatalogService = (*CatalogService)(nil)
