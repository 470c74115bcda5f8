package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pageza/alchemorsel-console/internal/console"
	"github.com/pageza/alchemorsel-console/internal/model"
	"github.com/pageza/alchemorsel-console/internal/service"
	"github.com/spf13/cobra"
)

const quitAnswer = "q"

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Enter recipes with calorie data, list them and show one",
		Long: `Prompts for recipe names until you answer q, and for each recipe its
ingredients (name, calories, food group) until you answer q.

The recipes are then listed alphabetically. Enter a name exactly as listed
to see its ingredients and total calories; totals above the calorie
threshold (default 300) get a warning.

Any calorie answer that is not a whole number ends the session with an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewCatalogService(opts.cfg.CalorieThreshold, opts.logger)
			session := newCatalogSession(cmd.InOrStdin(), cmd.OutOrStdout(), svc, opts.logger)
			session.pause = opts.cfg.PauseOnExit
			session.printer = console.NewPrinter(cmd.OutOrStdout(), opts.cfg.Color)
			return session.run(cmd.Context())
		},
	}
}

type catalogSession struct {
	prompter *console.Prompter
	printer  *console.Printer
	service  service.ICatalogService
	logger   *slog.Logger
	pause    bool
}

// newCatalogSession returns a session with plain output and no final pause.
func newCatalogSession(in io.Reader, out io.Writer, svc service.ICatalogService, logger *slog.Logger) *catalogSession {
	return &catalogSession{
		prompter: console.NewPrompter(in, out),
		printer:  console.NewPrinter(out, false),
		service:  svc,
		logger:   logger,
	}
}

func isQuit(answer string) bool {
	return strings.EqualFold(answer, quitAnswer)
}

func (s *catalogSession) run(ctx context.Context) error {
	if err := s.collect(ctx); err != nil {
		return err
	}
	if err := s.list(ctx); err != nil {
		return err
	}
	if err := s.show(ctx); err != nil {
		return err
	}
	if s.pause {
		return s.prompter.Pause()
	}
	return nil
}

// collect reads recipes until the user quits.
func (s *catalogSession) collect(ctx context.Context) error {
	for {
		name, err := s.prompter.Ask(ctx, "Enter the name of the recipe (or 'q' to quit):")
		if err != nil {
			return err
		}
		if isQuit(name) {
			return nil
		}

		recipe := model.NewCatalogRecipe(name)
		if err := s.collectIngredients(ctx, recipe); err != nil {
			return err
		}
		if _, err := s.service.AddRecipe(ctx, recipe); err != nil {
			return fmt.Errorf("failed to add recipe %q: %w", name, err)
		}
	}
}

func (s *catalogSession) collectIngredients(ctx context.Context, recipe *model.CatalogRecipe) error {
	for {
		name, err := s.prompter.Ask(ctx, "Enter the ingredient name (or 'q' to finish the recipe):")
		if err != nil {
			return err
		}
		if isQuit(name) {
			return nil
		}

		calories, err := s.prompter.AskInt(ctx, "Enter the number of calories for the ingredient:", "calories")
		if err != nil {
			return err
		}
		foodGroup, err := s.prompter.Ask(ctx, "Enter the food group for the ingredient:")
		if err != nil {
			return err
		}
		recipe.AddIngredient(name, calories, foodGroup)
	}
}

func (s *catalogSession) list(ctx context.Context) error {
	recipes, err := s.service.ListRecipes(ctx)
	if err != nil {
		return fmt.Errorf("failed to list recipes: %w", err)
	}
	if err := s.printer.Println("Recipes:"); err != nil {
		return err
	}
	for _, recipe := range recipes {
		if err := s.printer.Println(recipe.Name); err != nil {
			return err
		}
	}
	return nil
}

// show asks for one recipe and prints its ingredients and calorie total.
// A name that is not in the catalog is reported, not returned.
func (s *catalogSession) show(ctx context.Context) error {
	name, err := s.prompter.Ask(ctx, "Enter the name of the recipe to display:")
	if err != nil {
		return err
	}

	summary, err := s.service.Summarize(ctx, name)
	if errors.Is(err, model.ErrRecipeNotFound) {
		s.logger.DebugContext(ctx, "requested recipe not in catalog", "name", name)
		return s.printer.Println("Recipe not found.")
	}
	if err != nil {
		return err
	}

	if err := s.printer.Printf("Ingredients of %s:\n", summary.Recipe.Name); err != nil {
		return err
	}
	for _, ingredient := range summary.Recipe.Ingredients {
		if err := s.printer.Println(ingredient.String()); err != nil {
			return err
		}
	}
	if err := s.printer.Printf("Total calories: %d\n", summary.TotalCalories); err != nil {
		return err
	}
	if summary.ExceedsThreshold {
		return s.printer.Warn(fmt.Sprintf("This recipe exceeds %d calories.", summary.Threshold))
	}
	return nil
}
