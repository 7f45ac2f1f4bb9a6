package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
	created        bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// TLPUI_TLP_CONFIG_FILE, TLPUI_HISTORY_ENABLED, ...
	v.SetEnvPrefix("TLPUI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Shorter names for the most used overrides
	bindings := map[string]string{
		"logging.level":   "TLPUI_LOG_LEVEL",
		"logging.format":  "TLPUI_LOG_FORMAT",
		"tlp.config_file": "TLPUI_CONFIG_FILE",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default file is written on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensurePaths(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf("failed to create default config at %s: %w", configDir, createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(), err,
		)
	}
	return config, nil
}

// ensurePaths fills in XDG locations left empty in the file.
func ensurePaths(config *Config) error {
	if config.History.Path == "" {
		p, err := GetHistoryFile()
		if err != nil {
			return fmt.Errorf("failed to get history path: %w", err)
		}
		config.History.Path = p
	}
	if config.Logging.LogDir == "" {
		p, err := GetLogDir()
		if err != nil {
			return fmt.Errorf("failed to get log dir: %w", err)
		}
		config.Logging.LogDir = p
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}

	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = "console"
	}

	config.TLP.ConfigFile = strings.TrimSpace(config.TLP.ConfigFile)
	config.TLP.CategoriesFile = strings.TrimSpace(config.TLP.CategoriesFile)
	config.TLP.StatCommand = strings.TrimSpace(config.TLP.StatCommand)
	config.UI.ColorScheme = strings.ToLower(strings.TrimSpace(config.UI.ColorScheme))
	if config.UI.ColorScheme == "" {
		config.UI.ColorScheme = "default"
	}
	if config.TLP.ConfigFile != "" {
		config.TLP.ConfigFile = expandHome(config.TLP.ConfigFile)
	}
	if config.TLP.CategoriesFile != "" {
		config.TLP.CategoriesFile = expandHome(config.TLP.CategoriesFile)
	}
}

func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.TLP.StatArgs = append([]string(nil), m.config.TLP.StatArgs...)
	return &configCopy
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	path := m.viper.ConfigFileUsed()
	if path == "" {
		var err error
		if path, err = GetConfigFile(); err != nil {
			return err
		}
	}

	if m.watching {
		m.skipNextReload = true
	}
	if err := WriteConfigOrdered(cfg, path); err != nil {
		m.skipNextReload = false
		return err
	}

	saved := *cfg
	m.config = &saved
	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// Created reports whether Load wrote a fresh default file.
func (m *Manager) Created() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.created
}

// createDefaultConfig writes the default configuration and its JSON schema.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	defaults := DefaultConfig()
	if err := WriteConfigOrdered(defaults, configFile); err != nil {
		return err
	}
	if err := GenerateSchemaFile(filepath.Dir(configFile)); err != nil {
		return err
	}

	m.viper.SetConfigFile(configFile)
	m.created = true
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("tlp.config_file", defaults.TLP.ConfigFile)
	m.viper.SetDefault("tlp.categories_file", defaults.TLP.CategoriesFile)
	m.viper.SetDefault("tlp.stat_command", defaults.TLP.StatCommand)
	m.viper.SetDefault("tlp.stat_args", defaults.TLP.StatArgs)
	m.viper.SetDefault("tlp.stat_timeout_seconds", defaults.TLP.StatTimeoutSeconds)
	m.viper.SetDefault("tlp.watch_config_file", defaults.TLP.WatchConfigFile)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)

	m.viper.SetDefault("history.enabled", defaults.History.Enabled)
	m.viper.SetDefault("history.path", defaults.History.Path)
	m.viper.SetDefault("history.limit", defaults.History.Limit)

	m.viper.SetDefault("ui.window_width", defaults.UI.WindowWidth)
	m.viper.SetDefault("ui.window_height", defaults.UI.WindowHeight)
	m.viper.SetDefault("ui.show_descriptions", defaults.UI.ShowDescriptions)
	m.viper.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)
}
