package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Configuration keys, also used as flag names after bind.
const (
	KeyLogLevel         = "log_level"
	KeyCalorieThreshold = "calorie_threshold"
	KeyPauseOnExit      = "pause_on_exit"
	KeyColor            = "color"
)

// EnvPrefix is prepended to every key when read from the environment,
// e.g. RECIPES_CALORIE_THRESHOLD.
const EnvPrefix = "RECIPES"

// DefaultCalorieThreshold is the total above which the catalog warns.
const DefaultCalorieThreshold = 300

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Logging
	LogLevel string

	// Catalog
	CalorieThreshold int
	PauseOnExit      bool

	// Output
	Color bool
}

// NewViper returns a viper instance with defaults for the current
// environment and environment variable lookup enabled.
func NewViper() *viper.Viper {
	env := GetEnvironment()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyCalorieThreshold, DefaultCalorieThreshold)
	// Scripted runs in CI and tests have nobody to press enter.
	v.SetDefault(KeyPauseOnExit, env.Interactive())
	v.SetDefault(KeyColor, env.Interactive())
	return v
}

// LoadConfig creates a new Config from v, or from a fresh NewViper when v
// is nil, and validates it.
func LoadConfig(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = NewViper()
	}

	cfg := &Config{
		Environment:      GetEnvironment(),
		LogLevel:         strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		CalorieThreshold: v.GetInt(KeyCalorieThreshold),
		PauseOnExit:      v.GetBool(KeyPauseOnExit),
		Color:            v.GetBool(KeyColor),
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("failed to load %s configuration: %w", cfg.Environment, err)
	}

	return cfg, nil
}
