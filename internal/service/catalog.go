package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pageza/alchemorsel-console/internal/model"
)

// RecipeSummary is a recipe with its calorie total and whether that total
// is over the warning threshold.
type RecipeSummary struct {
	Recipe           *model.CatalogRecipe
	TotalCalories    int
	Threshold        int
	ExceedsThreshold bool
}

// CatalogService handles catalog operations for a single session
type CatalogService struct {
	catalog          *model.Catalog
	calorieThreshold int
	logger           *slog.Logger
}

// NewCatalogService creates a new CatalogService with an empty catalog
func NewCatalogService(calorieThreshold int, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{
		catalog:          model.NewCatalog(),
		calorieThreshold: calorieThreshold,
		logger:           logger,
	}
}

// AddRecipe appends a recipe, giving it an ID if it has none
func (s *CatalogService) AddRecipe(ctx context.Context, recipe *model.CatalogRecipe) (*model.CatalogRecipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if recipe.ID == uuid.Nil {
		recipe.ID = uuid.New()
	}
	s.catalog.Add(recipe)
	s.logger.DebugContext(ctx, "recipe added",
		"id", recipe.ID,
		"name", recipe.Name,
		"ingredients", len(recipe.Ingredients))
	return recipe, nil
}

// ListRecipes sorts the catalog by name and returns it
func (s *CatalogService) ListRecipes(ctx context.Context) ([]*model.CatalogRecipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.catalog.SortByName()
	return s.catalog.Recipes(), nil
}

// GetRecipe retrieves the first recipe with exactly this name
func (s *CatalogService) GetRecipe(ctx context.Context, name string) (*model.CatalogRecipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	recipe, err := s.catalog.Find(name)
	if err != nil {
		s.logger.DebugContext(ctx, "recipe lookup missed", "name", name)
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	// Names are not unique; the ID says which of the namesakes was picked.
	var shadowed []uuid.UUID
	for _, other := range s.catalog.Recipes() {
		if other.Name == name && other.ID != recipe.ID {
			shadowed = append(shadowed, other.ID)
		}
	}
	if len(shadowed) > 0 {
		s.logger.DebugContext(ctx, "recipe name is shared, using first match",
			"name", name,
			"id", recipe.ID,
			"shadowed", shadowed)
	}
	return recipe, nil
}

// Summarize looks a recipe up and totals its calories against the threshold
func (s *CatalogService) Summarize(ctx context.Context, name string) (*RecipeSummary, error) {
	recipe, err := s.GetRecipe(ctx, name)
	if err != nil {
		return nil, err
	}
	total := recipe.TotalCalories()
	return &RecipeSummary{
		Recipe:           recipe,
		TotalCalories:    total,
		Threshold:        s.calorieThreshold,
		ExceedsThreshold: total > s.calorieThreshold,
	}, nil
}
