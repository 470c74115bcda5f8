package model

import (
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// resetFactor is a quarter: Reset divides by 4 by multiplying, which is
// exact at any scale. It only undoes a scale by exactly 4; other factors
// leave original*factor/4 behind.
var resetFactor = decimal.New(25, -2)

var (
	// ErrIndexOutOfRange is returned when adding outside the declared bounds.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNegativeSize is returned when a recipe is declared with a negative count.
	ErrNegativeSize = errors.New("size must not be negative")
)

// Ingredient is a named quantity of something in a unit of measurement.
type Ingredient struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
}

// String renders the ingredient as "<quantity> <unit> <name>".
func (i Ingredient) String() string {
	return fmt.Sprintf("%s %s %s", FormatQuantity(i.Quantity), i.Unit, i.Name)
}

// FormatQuantity prints d with as many decimal places as it carries, so an
// entered 200.50 stays 200.50 and 200.50 scaled by 2 prints 401.00.
func FormatQuantity(d decimal.Decimal) string {
	places := -d.Exponent()
	if places < 0 {
		places = 0
	}
	return d.StringFixed(places)
}

// trimScale drops trailing fractional zeros: 100.2500 becomes 100.25.
func trimScale(d decimal.Decimal) decimal.Decimal {
	return decimal.RequireFromString(d.String())
}

// Step is a single instruction in a recipe.
type Step struct {
	Description string `json:"description"`
}

func (s Step) String() string {
	return s.Description
}

// Recipe holds a fixed number of ingredient and step slots declared up
// front. A nil slot has not been filled yet.
type Recipe struct {
	ingredients []*Ingredient
	steps       []*Step
}

// NewRecipe allocates a recipe with numIngredients and numSteps empty slots.
func NewRecipe(numIngredients, numSteps int) (*Recipe, error) {
	if numIngredients < 0 {
		return nil, fmt.Errorf("ingredients: %w, got %d", ErrNegativeSize, numIngredients)
	}
	if numSteps < 0 {
		return nil, fmt.Errorf("steps: %w, got %d", ErrNegativeSize, numSteps)
	}
	return &Recipe{
		ingredients: make([]*Ingredient, numIngredients),
		steps:       make([]*Step, numSteps),
	}, nil
}

// AddIngredient stores an ingredient at index, replacing whatever was there.
func (r *Recipe) AddIngredient(index int, name string, quantity decimal.Decimal, unit string) error {
	if index < 0 || index >= len(r.ingredients) {
		return fmt.Errorf("ingredient %d of %d: %w", index, len(r.ingredients), ErrIndexOutOfRange)
	}
	r.ingredients[index] = &Ingredient{Name: name, Quantity: quantity, Unit: unit}
	return nil
}

// AddStep stores a step at index, replacing whatever was there.
func (r *Recipe) AddStep(index int, description string) error {
	if index < 0 || index >= len(r.steps) {
		return fmt.Errorf("step %d of %d: %w", index, len(r.steps), ErrIndexOutOfRange)
	}
	r.steps[index] = &Step{Description: description}
	return nil
}

// Ingredients returns the ingredient slots in order. Empty slots are nil.
func (r *Recipe) Ingredients() []*Ingredient {
	return r.ingredients
}

// Steps returns the step slots in order. Empty slots are nil.
func (r *Recipe) Steps() []*Step {
	return r.steps
}

// Display writes the ingredient list followed by the numbered steps.
// Empty slots are skipped; step numbers stay positional.
func (r *Recipe) Display(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Ingredients:"); err != nil {
		return err
	}
	for _, ingredient := range r.ingredients {
		if ingredient == nil {
			continue
		}
		if _, err := fmt.Fprintln(w, ingredient.String()); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "Steps:"); err != nil {
		return err
	}
	for i, step := range r.steps {
		if step == nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, step.String()); err != nil {
			return err
		}
	}
	return nil
}

// Scale multiplies every quantity by factor in place.
func (r *Recipe) Scale(factor decimal.Decimal) {
	for _, ingredient := range r.ingredients {
		if ingredient != nil {
			ingredient.Quantity = ingredient.Quantity.Mul(factor)
		}
	}
}

// Reset divides every quantity by 4, keeping only the decimal places the
// result needs. It does not remember the quantities from before Scale.
func (r *Recipe) Reset() {
	for _, ingredient := range r.ingredients {
		if ingredient != nil {
			ingredient.Quantity = trimScale(ingredient.Quantity.Mul(resetFactor))
		}
	}
}

// Clear drops every ingredient and step, keeping the declared sizes.
func (r *Recipe) Clear() {
	r.ingredients = make([]*Ingredient, len(r.ingredients))
	r.steps = make([]*Step, len(r.steps))
}
