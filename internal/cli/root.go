// Package cli wires the recipe sessions to cobra commands.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pageza/alchemorsel-console/config"
	"github.com/pageza/alchemorsel-console/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootOptions is shared by every subcommand; cfg and logger are filled in
// before any subcommand runs.
type rootOptions struct {
	viper   *viper.Viper
	noPause bool
	noColor bool
	cfg     *config.Config
	logger  *slog.Logger
}

// NewRootCmd builds the recipes command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{viper: config.NewViper()}

	rootCmd := &cobra.Command{
		Use:   "recipes",
		Short: "Enter, scale and browse recipes from the console",
		Long: `recipes runs one of two independent console sessions.

  builder   enter a fixed number of ingredients and steps, then scale,
            reset and clear the quantities
  catalog   enter named recipes with per-ingredient calories, then list
            them alphabetically and look one up

Nothing is saved between runs.

EXAMPLES:
  # Build a recipe
  recipes builder

  # Browse a catalog and warn above 500 calories
  recipes catalog --calorie-threshold 500

  # Feed a scripted session without the final pause
  recipes catalog --no-pause < catalog.txt`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "warn", "diagnostic log level (debug|info|warn|error), written to stderr")
	flags.Int("calorie-threshold", config.DefaultCalorieThreshold, "warn when a recipe's total calories exceed this")
	flags.BoolVar(&opts.noPause, "no-pause", false, "exit without waiting for enter at the end of a catalog session")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable coloured output")

	_ = opts.viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = opts.viper.BindPFlag(config.KeyCalorieThreshold, flags.Lookup("calorie-threshold"))

	rootCmd.AddCommand(newBuilderCmd(opts))
	rootCmd.AddCommand(newCatalogCmd(opts))

	return rootCmd
}

// Execute runs the root command with ctx
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func (o *rootOptions) load(cmd *cobra.Command) error {
	if cmd.Flags().Changed("no-pause") {
		o.viper.Set(config.KeyPauseOnExit, !o.noPause)
	}
	if cmd.Flags().Changed("no-color") {
		o.viper.Set(config.KeyColor, !o.noColor)
	}

	cfg, err := config.LoadConfig(o.viper)
	if err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	slog.SetDefault(logger)

	o.cfg = cfg
	o.logger = logger
	logger.Debug("configuration loaded",
		"environment", cfg.Environment,
		"calorie_threshold", cfg.CalorieThreshold,
		"pause_on_exit", cfg.PauseOnExit)
	return nil
}
