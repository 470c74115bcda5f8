package model

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func newFlourSugarRecipe(t *testing.T) *Recipe {
	t.Helper()
	recipe, err := NewRecipe(2, 1)
	require.NoError(t, err)
	require.NoError(t, recipe.AddIngredient(0, "Flour", dec(t, "200"), "g"))
	require.NoError(t, recipe.AddIngredient(1, "Sugar", dec(t, "100"), "g"))
	require.NoError(t, recipe.AddStep(0, "Mix"))
	return recipe
}

func quantities(r *Recipe) []string {
	var out []string
	for _, ingredient := range r.Ingredients() {
		if ingredient != nil {
			out = append(out, ingredient.Quantity.String())
		}
	}
	return out
}

func TestNewRecipe(t *testing.T) {
	recipe, err := NewRecipe(3, 2)
	require.NoError(t, err)
	assert.Len(t, recipe.Ingredients(), 3)
	assert.Len(t, recipe.Steps(), 2)
	for _, ingredient := range recipe.Ingredients() {
		assert.Nil(t, ingredient)
	}

	_, err = NewRecipe(-1, 0)
	assert.ErrorIs(t, err, ErrNegativeSize)
	_, err = NewRecipe(0, -2)
	assert.ErrorIs(t, err, ErrNegativeSize)
}

func TestAddOutOfRange(t *testing.T) {
	recipe, err := NewRecipe(1, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, recipe.AddIngredient(1, "Salt", dec(t, "1"), "tsp"), ErrIndexOutOfRange)
	assert.ErrorIs(t, recipe.AddIngredient(-1, "Salt", dec(t, "1"), "tsp"), ErrIndexOutOfRange)
	assert.ErrorIs(t, recipe.AddStep(1, "Stir"), ErrIndexOutOfRange)
	assert.ErrorIs(t, recipe.AddStep(-1, "Stir"), ErrIndexOutOfRange)
}

func TestAddOverwrites(t *testing.T) {
	recipe, err := NewRecipe(1, 1)
	require.NoError(t, err)

	require.NoError(t, recipe.AddIngredient(0, "Salt", dec(t, "1"), "tsp"))
	require.NoError(t, recipe.AddIngredient(0, "Pepper", dec(t, "2"), "pinch"))
	require.NoError(t, recipe.AddStep(0, "Stir"))
	require.NoError(t, recipe.AddStep(0, "Whisk"))

	assert.Equal(t, "2 pinch Pepper", recipe.Ingredients()[0].String())
	assert.Equal(t, "Whisk", recipe.Steps()[0].String())
}

func TestDisplay(t *testing.T) {
	recipe := newFlourSugarRecipe(t)

	var buf bytes.Buffer
	require.NoError(t, recipe.Display(&buf))
	assert.Equal(t, "Ingredients:\n200 g Flour\n100 g Sugar\nSteps:\n1. Mix\n", buf.String())
}

func TestDisplaySkipsEmptySlots(t *testing.T) {
	recipe, err := NewRecipe(2, 3)
	require.NoError(t, err)
	require.NoError(t, recipe.AddIngredient(1, "Eggs", dec(t, "2"), "whole"))
	require.NoError(t, recipe.AddStep(2, "Bake"))

	var buf bytes.Buffer
	require.NoError(t, recipe.Display(&buf))
	assert.Equal(t, "Ingredients:\n2 whole Eggs\nSteps:\n3. Bake\n", buf.String())
}

func TestScaleResetClearScenario(t *testing.T) {
	recipe := newFlourSugarRecipe(t)

	recipe.Scale(dec(t, "2"))
	assert.Equal(t, []string{"400", "200"}, quantities(recipe))

	recipe.Reset()
	assert.Equal(t, []string{"100", "50"}, quantities(recipe))

	recipe.Clear()
	assert.Len(t, recipe.Ingredients(), 2)
	assert.Len(t, recipe.Steps(), 1)
	for _, ingredient := range recipe.Ingredients() {
		assert.Nil(t, ingredient)
	}
	for _, step := range recipe.Steps() {
		assert.Nil(t, step)
	}
}

func TestResetIsOriginalTimesFactorOverFour(t *testing.T) {
	for _, factor := range []string{"0.5", "2", "3", "4", "0", "-1.5"} {
		t.Run(factor, func(t *testing.T) {
			recipe := newFlourSugarRecipe(t)
			f := dec(t, factor)

			recipe.Scale(f)
			recipe.Reset()

			quarter := dec(t, "0.25")
			assert.True(t, dec(t, "200").Mul(f).Mul(quarter).Equal(recipe.Ingredients()[0].Quantity))
			assert.True(t, dec(t, "100").Mul(f).Mul(quarter).Equal(recipe.Ingredients()[1].Quantity))
		})
	}
}

func TestResetIsExactForSmallQuantities(t *testing.T) {
	recipe, err := NewRecipe(1, 0)
	require.NoError(t, err)
	require.NoError(t, recipe.AddIngredient(0, "Salt", dec(t, "0.000000000000001"), "g"))

	recipe.Scale(dec(t, "1"))
	recipe.Reset()

	got := recipe.Ingredients()[0].Quantity
	assert.True(t, dec(t, "0.00000000000000025").Equal(got), "got %s", got.String())
}

func TestResetAfterRepeatedHalving(t *testing.T) {
	recipe, err := NewRecipe(1, 0)
	require.NoError(t, err)
	original := dec(t, "3")
	require.NoError(t, recipe.AddIngredient(0, "Yeast", original, "g"))

	half := dec(t, "0.5")
	expected := original
	for i := 0; i < 30; i++ {
		recipe.Scale(half)
		expected = expected.Mul(half)
	}
	recipe.Reset()

	got := recipe.Ingredients()[0].Quantity
	assert.True(t, expected.Mul(dec(t, "0.25")).Equal(got), "got %s", got.String())
}

func TestScaleKeepsFractions(t *testing.T) {
	recipe, err := NewRecipe(1, 0)
	require.NoError(t, err)
	require.NoError(t, recipe.AddIngredient(0, "Milk", dec(t, "250"), "ml"))

	recipe.Scale(dec(t, "0.5"))
	assert.Equal(t, "125.0 ml Milk", recipe.Ingredients()[0].String())

	recipe.Scale(dec(t, "0.5"))
	assert.Equal(t, "62.50 ml Milk", recipe.Ingredients()[0].String())
}

func TestQuantityKeepsEnteredScale(t *testing.T) {
	recipe, err := NewRecipe(1, 0)
	require.NoError(t, err)
	require.NoError(t, recipe.AddIngredient(0, "Butter", dec(t, "200.50"), "g"))
	assert.Equal(t, "200.50 g Butter", recipe.Ingredients()[0].String())

	recipe.Scale(dec(t, "2"))
	assert.Equal(t, "401.00 g Butter", recipe.Ingredients()[0].String())

	recipe.Reset()
	assert.Equal(t, "100.25 g Butter", recipe.Ingredients()[0].String())
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "200", FormatQuantity(dec(t, "200")))
	assert.Equal(t, "0.50", FormatQuantity(dec(t, "0.50")))
	assert.Equal(t, "-1.5", FormatQuantity(dec(t, "-1.5")))
	assert.Equal(t, "1000", FormatQuantity(decimal.New(1, 3)))
}
