package usecase

import (
	"context"

	"github.com/bnema/tlpui/internal/application/port"
	"github.com/bnema/tlpui/internal/logging"
)

// CheckConfigMigrationInput holds the input for checking config migration.
type CheckConfigMigrationInput struct{}

// CheckConfigMigrationOutput holds the result of the migration check.
type CheckConfigMigrationOutput struct {
	// NeedsMigration is true if there are missing keys.
	NeedsMigration bool
	// MissingKeys contains info about each missing key.
	MissingKeys []port.KeyInfo
	// UnknownKeys are set in the file but ignored by tlpui.
	UnknownKeys []string
	// ConfigFile is the path to the config file, empty when it does not exist.
	ConfigFile string
}

// MigrateConfigInput holds the input for migrating config.
type MigrateConfigInput struct{}

// MigrateConfigOutput holds the result of the migration.
type MigrateConfigOutput struct {
	AddedKeys  []string
	ConfigFile string
}

// MigrateConfigUseCase handles config migration operations.
type MigrateConfigUseCase struct {
	migrator port.ConfigMigrator
}

// NewMigrateConfigUseCase creates a new migrate config use case.
func NewMigrateConfigUseCase(migrator port.ConfigMigrator) *MigrateConfigUseCase {
	return &MigrateConfigUseCase{migrator: migrator}
}

// Check checks if the user config is missing any default keys.
func (uc *MigrateConfigUseCase) Check(ctx context.Context, _ CheckConfigMigrationInput) (*CheckConfigMigrationOutput, error) {
	log := logging.FromContext(ctx)

	result, err := uc.migrator.CheckMigration()
	if err != nil {
		log.Warn().Err(err).Msg("config migration check failed")
		return nil, err
	}
	if result == nil {
		log.Debug().Msg("no config file yet, nothing to migrate")
		return &CheckConfigMigrationOutput{}, nil
	}

	keyInfos := make([]port.KeyInfo, 0, len(result.MissingKeys))
	for _, key := range result.MissingKeys {
		keyInfos = append(keyInfos, uc.migrator.GetKeyInfo(key))
	}

	log.Debug().
		Int("missing_keys", len(result.MissingKeys)).
		Int("unknown_keys", len(result.UnknownKeys)).
		Str("config_file", result.ConfigFile).
		Msg("config migration check completed")

	return &CheckConfigMigrationOutput{
		NeedsMigration: len(keyInfos) > 0,
		MissingKeys:    keyInfos,
		UnknownKeys:    result.UnknownKeys,
		ConfigFile:     result.ConfigFile,
	}, nil
}

// Execute adds missing default keys to the user's config file.
func (uc *MigrateConfigUseCase) Execute(ctx context.Context, _ MigrateConfigInput) (*MigrateConfigOutput, error) {
	log := logging.FromContext(ctx)

	result, err := uc.migrator.CheckMigration()
	if err != nil {
		return nil, err
	}
	if result == nil || len(result.MissingKeys) == 0 {
		log.Debug().Msg("no migration needed")
		return &MigrateConfigOutput{}, nil
	}

	added, err := uc.migrator.Migrate()
	if err != nil {
		log.Error().Err(err).Msg("config migration failed")
		return nil, err
	}

	log.Info().
		Int("added_keys", len(added)).
		Str("config_file", result.ConfigFile).
		Msg("config migration completed")

	return &MigrateConfigOutput{
		AddedKeys:  added,
		ConfigFile: result.ConfigFile,
	}, nil
}
