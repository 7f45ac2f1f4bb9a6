package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tlpui/internal/domain/entity"
)

const sampleConf = `# TLP user configuration
TLP_ENABLE=1
#TLP_DEFAULT_MODE=AC

CPU_SCALING_GOVERNOR_ON_AC=powersave
USB_AUTOSUSPEND=1
`

// setupEnv points every XDG directory at a temp dir and writes a TLP file.
func setupEnv(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))

	path := filepath.Join(root, "tlp.conf")
	require.NoError(t, os.WriteFile(path, []byte(sampleConf), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	tlpFile = ""
	showCategory, showChangedOnly, showDescriptions = "", false, false
	setEnable, setDisable, setYes, setDryRun = nil, nil, false, false
	historyLimit, historyName = 0, ""
	categoriesSchema, configYes, statSection = false, false, ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestShow(t *testing.T) {
	path := setupEnv(t)

	out, err := execute(t, "show", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "General")
	assert.Contains(t, out, "TLP_ENABLE = 1")
	assert.Contains(t, out, "TLP_DEFAULT_MODE = AC")
}

func TestShow_ChangedOnlyHidesCommentedSettings(t *testing.T) {
	path := setupEnv(t)

	out, err := execute(t, "show", "--file", path, "--changed-only")
	require.NoError(t, err)
	assert.Contains(t, out, "TLP_ENABLE = 1")
	assert.NotContains(t, out, "TLP_DEFAULT_MODE")
}

func TestShow_UnknownCategory(t *testing.T) {
	path := setupEnv(t)

	_, err := execute(t, "show", "--file", path, "--category", "no-such-category")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-category")
}

func TestShow_MissingFile(t *testing.T) {
	path := setupEnv(t)

	_, err := execute(t, "show", "--file", path+".missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestSet_WritesOnlyChangedLine(t *testing.T) {
	path := setupEnv(t)

	out, err := execute(t, "set", "--file", path, "--yes", "CPU_SCALING_GOVERNOR_ON_AC=performance")
	require.NoError(t, err)
	assert.Contains(t, out, "Pending changes (1):")
	assert.Contains(t, out, "Saved 1 change")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		strings.Replace(sampleConf, "CPU_SCALING_GOVERNOR_ON_AC=powersave", "CPU_SCALING_GOVERNOR_ON_AC=performance", 1),
		string(data))
}

func TestSet_EnableCommentedSetting(t *testing.T) {
	path := setupEnv(t)

	out, err := execute(t, "set", "--file", path, "--yes", "--enable", "TLP_DEFAULT_MODE")
	require.NoError(t, err)
	assert.Contains(t, out, "(enabled)")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\nTLP_DEFAULT_MODE=AC\n")
	assert.NotContains(t, string(data), "#TLP_DEFAULT_MODE")
}

func TestSet_RejectsInvalidValue(t *testing.T) {
	path := setupEnv(t)

	_, err := execute(t, "set", "--file", path, "--yes", "CPU_SCALING_GOVERNOR_ON_AC=turbo")
	require.ErrorIs(t, err, entity.ErrInvalidValue)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleConf, string(data))
}

func TestSet_DryRunLeavesFileAlone(t *testing.T) {
	path := setupEnv(t)

	out, err := execute(t, "set", "--file", path, "--dry-run", "USB_AUTOSUSPEND=0")
	require.NoError(t, err)
	assert.Contains(t, out, "USB_AUTOSUSPEND = 0")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleConf, string(data))
}

func TestSet_RequiresYesWithoutTerminal(t *testing.T) {
	path := setupEnv(t)

	_, err := execute(t, "set", "--file", path, "USB_AUTOSUSPEND=0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
}

func TestSet_NothingToChange(t *testing.T) {
	path := setupEnv(t)

	_, err := execute(t, "set", "--file", path)
	require.Error(t, err)
}

func TestHistory_ListsSavedChange(t *testing.T) {
	path := setupEnv(t)

	_, err := execute(t, "set", "--file", path, "--yes", "USB_AUTOSUSPEND=0")
	require.NoError(t, err)

	out, err := execute(t, "history", "--name", "USB_AUTOSUSPEND")
	require.NoError(t, err)
	assert.Contains(t, out, "USB_AUTOSUSPEND")
}

func TestCategories_Schema(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "categories", "--schema")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))
}

func TestCategories_List(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "categories")
	require.NoError(t, err)
	assert.Contains(t, out, "General")
	assert.Contains(t, out, "embedded")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dev")
}

func TestMatchesCategory(t *testing.T) {
	assert.True(t, matchesCategory("Battery Care", ""))
	assert.True(t, matchesCategory("Battery Care", " battery "))
	assert.False(t, matchesCategory("Battery Care", "usb"))
}
