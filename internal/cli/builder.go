package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/pageza/alchemorsel-console/internal/console"
	"github.com/pageza/alchemorsel-console/internal/model"
	"github.com/spf13/cobra"
)

func newBuilderCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "builder",
		Short: "Enter ingredients and steps, then scale, reset and clear them",
		Long: `Prompts for the number of ingredients and steps, then for each of them.

The recipe is shown, scaled by a factor you enter, shown again, reset and
shown a last time before it is cleared. Reset divides every quantity by 4,
so it only gives back the entered quantities after a scale by 4.

Any answer that is not a valid number ends the session with an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := runBuilder(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), opts.logger)
			return err
		},
	}
}

// runBuilder runs one builder session and returns the (cleared) recipe.
func runBuilder(ctx context.Context, in io.Reader, out io.Writer, logger *slog.Logger) (*model.Recipe, error) {
	p := console.NewPrompter(in, out)

	numIngredients, err := p.AskInt(ctx, "Enter the number of ingredients:", "number of ingredients")
	if err != nil {
		return nil, err
	}
	numSteps, err := p.AskInt(ctx, "Enter the number of steps:", "number of steps")
	if err != nil {
		return nil, err
	}

	recipe, err := model.NewRecipe(numIngredients, numSteps)
	if err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	logger.DebugContext(ctx, "builder session started", "ingredients", numIngredients, "steps", numSteps)

	for i := 0; i < numIngredients; i++ {
		name, err := p.Ask(ctx, fmt.Sprintf("Enter the name of ingredient #%d:", i+1))
		if err != nil {
			return nil, err
		}
		quantity, err := p.AskDecimal(ctx,
			fmt.Sprintf("Enter the quantity of %s (in grams, milliliters, etc.):", name),
			"quantity")
		if err != nil {
			return nil, err
		}
		unit, err := p.Ask(ctx, fmt.Sprintf(
			"Enter the unit of measurement for %s %s (e.g. grams, milliliters, tablespoons):",
			model.FormatQuantity(quantity), name))
		if err != nil {
			return nil, err
		}
		if err := recipe.AddIngredient(i, name, quantity, unit); err != nil {
			return nil, err
		}
	}

	for i := 0; i < numSteps; i++ {
		description, err := p.Ask(ctx, fmt.Sprintf("Enter step #%d:", i+1))
		if err != nil {
			return nil, err
		}
		if err := recipe.AddStep(i, description); err != nil {
			return nil, err
		}
	}

	if err := recipe.Display(out); err != nil {
		return nil, err
	}

	factor, err := p.AskDecimal(ctx, "Enter the scaling factor (0.5, 2, or 3):", "scaling factor")
	if err != nil {
		return nil, err
	}
	recipe.Scale(factor)
	logger.DebugContext(ctx, "recipe scaled", "factor", factor.String())
	if err := recipe.Display(out); err != nil {
		return nil, err
	}

	if _, err := fmt.Fprintln(out, "Resetting the quantities to the original values..."); err != nil {
		return nil, err
	}
	recipe.Reset()
	if err := recipe.Display(out); err != nil {
		return nil, err
	}

	if _, err := fmt.Fprintln(out, "Clearing the recipe..."); err != nil {
		return nil, err
	}
	recipe.Clear()
	logger.DebugContext(ctx, "builder session finished")

	return recipe, nil
}
