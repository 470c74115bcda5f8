package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// ErrRecipeNotFound is returned when no catalog recipe has the requested name.
var ErrRecipeNotFound = errors.New("recipe not found")

// CatalogIngredient is an ingredient with its calorie count and food group.
type CatalogIngredient struct {
	Name      string `json:"name"`
	Calories  int    `json:"calories"`
	FoodGroup string `json:"food_group"`
}

// String renders the ingredient as "<name> (<calories> calories, <food group>)".
func (i CatalogIngredient) String() string {
	return fmt.Sprintf("%s (%d calories, %s)", i.Name, i.Calories, i.FoodGroup)
}

// CatalogRecipe is a named recipe in the catalog. Names are not unique.
type CatalogRecipe struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Ingredients []CatalogIngredient `json:"ingredients"`
}

// NewCatalogRecipe returns an empty recipe called name.
func NewCatalogRecipe(name string) *CatalogRecipe {
	return &CatalogRecipe{
		Name:        name,
		Ingredients: []CatalogIngredient{},
	}
}

// AddIngredient appends an ingredient.
func (r *CatalogRecipe) AddIngredient(name string, calories int, foodGroup string) {
	r.Ingredients = append(r.Ingredients, CatalogIngredient{
		Name:      name,
		Calories:  calories,
		FoodGroup: foodGroup,
	})
}

// TotalCalories sums the calories of every ingredient.
func (r *CatalogRecipe) TotalCalories() int {
	total := 0
	for _, ingredient := range r.Ingredients {
		total += ingredient.Calories
	}
	return total
}

// Catalog is an ordered, growable list of recipes.
type Catalog struct {
	recipes []*CatalogRecipe
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Add appends recipe to the end of the catalog.
func (c *Catalog) Add(recipe *CatalogRecipe) {
	c.recipes = append(c.recipes, recipe)
}

// Len returns the number of recipes.
func (c *Catalog) Len() int {
	return len(c.recipes)
}

// Recipes returns the recipes in their current order.
func (c *Catalog) Recipes() []*CatalogRecipe {
	return c.recipes
}

// SortByName orders recipes by name, byte-wise. Recipes with equal names
// keep their insertion order.
func (c *Catalog) SortByName() {
	sort.SliceStable(c.recipes, func(i, j int) bool {
		return strings.Compare(c.recipes[i].Name, c.recipes[j].Name) < 0
	})
}

// Find returns the first recipe whose name equals name exactly.
func (c *Catalog) Find(name string) (*CatalogRecipe, error) {
	for _, recipe := range c.recipes {
		if recipe.Name == name {
			return recipe, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, ErrRecipeNotFound)
}

// Names returns the recipe names in their current order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.recipes))
	for i, recipe := range c.recipes {
		names[i] = recipe.Name
	}
	return names
}
