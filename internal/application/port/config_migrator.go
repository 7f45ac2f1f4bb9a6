package port

// MigrationResult contains the result of a config migration check.
type MigrationResult struct {
	// MissingKeys exist in the defaults but not in the user file.
	MissingKeys []string
	// UnknownKeys exist in the user file but tlpui does not read them.
	UnknownKeys []string
	// ConfigFile is the path to the user's config file.
	ConfigFile string
}

// KeyInfo contains metadata about a config key for display purposes.
type KeyInfo struct {
	// Key is the dot-notation key path (e.g., "tlp.stat_command").
	Key string
	// Type is the Go type of the value (e.g., "bool", "int", "string").
	Type string
	// DefaultValue is a string representation of the default value.
	DefaultValue string
}

// ConfigMigrator checks for and applies config migrations.
type ConfigMigrator interface {
	// CheckMigration compares the user file with the defaults.
	// Returns nil when the file does not exist yet.
	CheckMigration() (*MigrationResult, error)

	// Migrate adds missing default keys to the user's config file and returns them.
	Migrate() ([]string, error)

	// GetKeyInfo returns detailed information about a config key.
	GetKeyInfo(key string) KeyInfo
}
