package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tlpui/internal/application/port"
	"github.com/bnema/tlpui/internal/application/port/mocks"
	"github.com/bnema/tlpui/internal/application/usecase"
)

func TestMigrateConfigUseCase_Check_NoConfigFile(t *testing.T) {
	migrator := mocks.NewMockConfigMigrator(t)
	migrator.EXPECT().CheckMigration().Return(nil, nil)

	uc := usecase.NewMigrateConfigUseCase(migrator)
	out, err := uc.Check(testContext(), usecase.CheckConfigMigrationInput{})

	require.NoError(t, err)
	assert.False(t, out.NeedsMigration)
	assert.Empty(t, out.ConfigFile)
}

func TestMigrateConfigUseCase_Check_MigrationNeeded(t *testing.T) {
	migrator := mocks.NewMockConfigMigrator(t)
	migrator.EXPECT().CheckMigration().Return(&port.MigrationResult{
		MissingKeys: []string{"ui.color_scheme"},
		UnknownKeys: []string{"tlp.legacy"},
		ConfigFile:  "/home/me/.config/tlpui/config.toml",
	}, nil)
	migrator.EXPECT().GetKeyInfo("ui.color_scheme").Return(port.KeyInfo{
		Key:          "ui.color_scheme",
		Type:         "string",
		DefaultValue: `"default"`,
	})

	uc := usecase.NewMigrateConfigUseCase(migrator)
	out, err := uc.Check(testContext(), usecase.CheckConfigMigrationInput{})

	require.NoError(t, err)
	assert.True(t, out.NeedsMigration)
	require.Len(t, out.MissingKeys, 1)
	assert.Equal(t, "string", out.MissingKeys[0].Type)
	assert.Equal(t, []string{"tlp.legacy"}, out.UnknownKeys)
	assert.Equal(t, "/home/me/.config/tlpui/config.toml", out.ConfigFile)
}

func TestMigrateConfigUseCase_Check_Error(t *testing.T) {
	migrator := mocks.NewMockConfigMigrator(t)
	migrator.EXPECT().CheckMigration().Return(nil, errors.New("bad toml"))

	uc := usecase.NewMigrateConfigUseCase(migrator)
	_, err := uc.Check(testContext(), usecase.CheckConfigMigrationInput{})

	require.EqualError(t, err, "bad toml")
}

func TestMigrateConfigUseCase_Execute_NothingMissing(t *testing.T) {
	migrator := mocks.NewMockConfigMigrator(t)
	migrator.EXPECT().CheckMigration().Return(&port.MigrationResult{ConfigFile: "/c.toml"}, nil)

	uc := usecase.NewMigrateConfigUseCase(migrator)
	out, err := uc.Execute(testContext(), usecase.MigrateConfigInput{})

	require.NoError(t, err)
	assert.Empty(t, out.AddedKeys)
}

func TestMigrateConfigUseCase_Execute_AddsKeys(t *testing.T) {
	migrator := mocks.NewMockConfigMigrator(t)
	migrator.EXPECT().CheckMigration().Return(&port.MigrationResult{
		MissingKeys: []string{"history.limit"},
		ConfigFile:  "/c.toml",
	}, nil)
	migrator.EXPECT().Migrate().Return([]string{"history.limit"}, nil)

	uc := usecase.NewMigrateConfigUseCase(migrator)
	out, err := uc.Execute(testContext(), usecase.MigrateConfigInput{})

	require.NoError(t, err)
	assert.Equal(t, []string{"history.limit"}, out.AddedKeys)
	assert.Equal(t, "/c.toml", out.ConfigFile)
}
