package config

import (
	"fmt"
	"strings"
)

// validateConfig collects every problem so users can fix the file in one pass.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateTLP(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateHistory(config)...)
	validationErrors = append(validationErrors, validateUI(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateTLP(config *Config) []string {
	var validationErrors []string
	if config.TLP.ConfigFile == "" {
		validationErrors = append(validationErrors, "tlp.config_file must not be empty")
	}
	if config.TLP.StatCommand == "" {
		validationErrors = append(validationErrors, "tlp.stat_command must not be empty")
	}
	if config.TLP.StatTimeoutSeconds < 1 {
		validationErrors = append(validationErrors, "tlp.stat_timeout_seconds must be at least 1")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return nil
	default:
		return []string{fmt.Sprintf("logging.level %q is not one of trace, debug, info, warn, error", config.Logging.Level)}
	}
}

func validateHistory(config *Config) []string {
	if config.History.Limit < 1 {
		return []string{"history.limit must be at least 1"}
	}
	return nil
}

func validateUI(config *Config) []string {
	var validationErrors []string
	if config.UI.WindowWidth < 320 {
		validationErrors = append(validationErrors, "ui.window_width must be at least 320")
	}
	if config.UI.WindowHeight < 240 {
		validationErrors = append(validationErrors, "ui.window_height must be at least 240")
	}
	switch config.UI.ColorScheme {
	case "default", "prefer-dark", "prefer-light":
	default:
		validationErrors = append(validationErrors, "ui.color_scheme must be default, prefer-dark or prefer-light")
	}
	return validationErrors
}
