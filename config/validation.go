package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// ValidateConfig checks every field and reports all problems at once.
func ValidateConfig(cfg *Config) error {
	var errs []string

	if !validLogLevels[cfg.LogLevel] {
		errs = append(errs, ValidationError{
			Field:   KeyLogLevel,
			Message: fmt.Sprintf("unknown level %q (must be debug, info, warn or error)", cfg.LogLevel),
		}.Error())
	}

	if cfg.CalorieThreshold < 0 {
		errs = append(errs, ValidationError{
			Field:   KeyCalorieThreshold,
			Message: fmt.Sprintf("must not be negative, got %d", cfg.CalorieThreshold),
		}.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errs, "\n"))
	}

	return nil
}
