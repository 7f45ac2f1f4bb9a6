package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"slices"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/bnema/tlpui/internal/application/port"
)

// Migrator implements port.ConfigMigrator for comparing and merging config files.
type Migrator struct {
	// defaultViper holds a Viper instance with all defaults set.
	defaultViper *viper.Viper
	// configFile overrides the XDG location when set.
	configFile string
}

// NewMigrator creates a Migrator for the standard config file.
func NewMigrator() *Migrator {
	v := viper.New()
	v.SetConfigType("toml")

	// A bare manager is enough to register the defaults.
	m := &Manager{viper: v}
	m.setDefaults()

	return &Migrator{defaultViper: v}
}

// NewMigratorForFile creates a Migrator working on path.
func NewMigratorForFile(path string) *Migrator {
	m := NewMigrator()
	m.configFile = path
	return m
}

func (m *Migrator) path() (string, error) {
	if m.configFile != "" {
		return m.configFile, nil
	}
	return GetConfigFile()
}

// CheckMigration checks if user config is missing any default keys.
// Returns nil if the config file does not exist yet.
func (m *Migrator) CheckMigration() (*port.MigrationResult, error) {
	configFile, err := m.path()
	if err != nil {
		return nil, fmt.Errorf("failed to get config file path: %w", err)
	}

	userKeys, err := readUserKeys(configFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse user config: %w", err)
	}

	defaultKeys := m.defaultViper.AllKeys()
	sort.Strings(defaultKeys)

	result := &port.MigrationResult{ConfigFile: configFile}
	for _, key := range defaultKeys {
		if _, ok := userKeys[key]; !ok {
			result.MissingKeys = append(result.MissingKeys, key)
		}
	}
	for key := range userKeys {
		if !slices.Contains(defaultKeys, key) {
			result.UnknownKeys = append(result.UnknownKeys, key)
		}
	}
	sort.Strings(result.UnknownKeys)
	return result, nil
}

// Migrate adds missing default keys to the user's config file.
// Existing values are kept as they are.
func (m *Migrator) Migrate() ([]string, error) {
	result, err := m.CheckMigration()
	if err != nil {
		return nil, err
	}
	if result == nil || len(result.MissingKeys) == 0 {
		return nil, nil
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(result.ConfigFile)
	for _, key := range m.defaultViper.AllKeys() {
		v.SetDefault(key, m.defaultViper.Get(key))
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := WriteConfigOrdered(cfg, result.ConfigFile); err != nil {
		return nil, err
	}
	return result.MissingKeys, nil
}

// GetKeyInfo returns detailed information about a config key.
func (m *Migrator) GetKeyInfo(key string) port.KeyInfo {
	value := m.defaultViper.Get(key)
	info := port.KeyInfo{Key: key, Type: "unknown"}
	if value != nil {
		info.Type = reflect.TypeOf(value).String()
	}
	info.DefaultValue = formatValue(value)
	return info
}

// readUserKeys flattens the TOML file into dot-notation keys.
func readUserKeys(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	keys := make(map[string]any)
	flattenKeys("", raw, keys)
	return keys, nil
}

func flattenKeys(prefix string, tree map[string]any, out map[string]any) {
	for k, v := range tree {
		key := strings.ToLower(k)
		if prefix != "" {
			key = prefix + "." + key
		}
		if sub, ok := v.(map[string]any); ok {
			flattenKeys(key, sub, out)
			continue
		}
		out[key] = v
	}
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "(unset)"
	case string:
		if v == "" {
			return `""`
		}
		return fmt.Sprintf("%q", v)
	case []string:
		return fmt.Sprintf("[%s]", strings.Join(v, ", "))
	default:
		return fmt.Sprintf("%v", v)
	}
}

var _ port.ConfigMigrator = (*Migrator)(nil)
