package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeUserConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMigrator_CheckMigration_MissingFile(t *testing.T) {
	m := NewMigratorForFile(filepath.Join(t.TempDir(), "absent.toml"))

	result, err := m.CheckMigration()

	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestMigrator_CheckMigration_ReportsMissingAndUnknown(t *testing.T) {
	path := writeUserConfig(t, `
[tlp]
config_file = "/srv/tlp.conf"
legacy_option = true

[ui]
window_width = 1000
`)
	m := NewMigratorForFile(path)

	result, err := m.CheckMigration()

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, path, result.ConfigFile)
	assert.Contains(t, result.MissingKeys, "tlp.stat_command")
	assert.Contains(t, result.MissingKeys, "history.limit")
	assert.NotContains(t, result.MissingKeys, "tlp.config_file")
	assert.NotContains(t, result.MissingKeys, "ui.window_width")
	assert.Equal(t, []string{"tlp.legacy_option"}, result.UnknownKeys)
}

func TestMigrator_Migrate_KeepsUserValues(t *testing.T) {
	path := writeUserConfig(t, `
[tlp]
config_file = "/srv/tlp.conf"

[ui]
window_width = 1000
`)
	m := NewMigratorForFile(path)

	added, err := m.Migrate()
	require.NoError(t, err)
	assert.Contains(t, added, "history.enabled")

	again, err := m.CheckMigration()
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Empty(t, again.MissingKeys)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "/srv/tlp.conf")
	assert.Contains(t, string(data), "window_width = 1000")
}

func TestMigrator_GetKeyInfo(t *testing.T) {
	m := NewMigrator()

	info := m.GetKeyInfo("tlp.stat_command")

	assert.Equal(t, "tlp.stat_command", info.Key)
	assert.Equal(t, "string", info.Type)
	assert.Equal(t, `"tlp-stat"`, info.DefaultValue)
}
