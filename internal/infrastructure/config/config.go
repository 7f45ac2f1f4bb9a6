// Package config loads the tlpui application configuration with viper.
package config

import (
	"github.com/bnema/tlpui/internal/infrastructure/tlpconf"
	"github.com/bnema/tlpui/internal/infrastructure/tlpstat"
)

// Config is the tlpui application configuration.
type Config struct {
	TLP     TLPConfig     `mapstructure:"tlp" toml:"tlp" json:"tlp"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	History HistoryConfig `mapstructure:"history" toml:"history" json:"history"`
	UI      UIConfig      `mapstructure:"ui" toml:"ui" json:"ui"`
}

// TLPConfig locates the files and tools tlpui works with.
type TLPConfig struct {
	// ConfigFile is the TLP configuration edited by default.
	ConfigFile string `mapstructure:"config_file" toml:"config_file" json:"config_file" jsonschema:"description=TLP configuration file to edit"`
	// CategoriesFile overrides the built-in category document when set.
	CategoriesFile     string   `mapstructure:"categories_file" toml:"categories_file" json:"categories_file" jsonschema:"description=Category document (JSON or YAML); empty uses the built-in one"`
	StatCommand        string   `mapstructure:"stat_command" toml:"stat_command" json:"stat_command"`
	StatArgs           []string `mapstructure:"stat_args" toml:"stat_args" json:"stat_args"`
	StatTimeoutSeconds int      `mapstructure:"stat_timeout_seconds" toml:"stat_timeout_seconds" json:"stat_timeout_seconds" jsonschema:"minimum=1"`
	// WatchConfigFile reloads the editor when the file changes on disk.
	WatchConfigFile bool `mapstructure:"watch_config_file" toml:"watch_config_file" json:"watch_config_file"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format        string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
}

// HistoryConfig controls the save history database.
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	Path    string `mapstructure:"path" toml:"path" json:"path"`
	// Limit is the default number of records listed.
	Limit int `mapstructure:"limit" toml:"limit" json:"limit" jsonschema:"minimum=1"`
}

// UIConfig holds window preferences.
type UIConfig struct {
	WindowWidth      int  `mapstructure:"window_width" toml:"window_width" json:"window_width" jsonschema:"minimum=320"`
	WindowHeight     int  `mapstructure:"window_height" toml:"window_height" json:"window_height" jsonschema:"minimum=240"`
	ShowDescriptions bool `mapstructure:"show_descriptions" toml:"show_descriptions" json:"show_descriptions"`
	// ColorScheme is "default" (follow the desktop), "prefer-dark" or "prefer-light".
	ColorScheme string `mapstructure:"color_scheme" toml:"color_scheme" json:"color_scheme" jsonschema:"enum=default,enum=prefer-dark,enum=prefer-light"`
}

const (
	defaultStatTimeoutSeconds = 15
	defaultHistoryLimit       = 20
	defaultWindowWidth        = 900
	defaultWindowHeight       = 640
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		TLP: TLPConfig{
			ConfigFile:         tlpconf.DefaultPath,
			StatCommand:        tlpstat.DefaultCommand,
			StatArgs:           append([]string(nil), tlpstat.DefaultArgs...),
			StatTimeoutSeconds: defaultStatTimeoutSeconds,
			WatchConfigFile:    true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		History: HistoryConfig{
			Enabled: true,
			Limit:   defaultHistoryLimit,
		},
		UI: UIConfig{
			WindowWidth:      defaultWindowWidth,
			WindowHeight:     defaultWindowHeight,
			ShowDescriptions: true,
			ColorScheme:      "default",
		},
	}
}
