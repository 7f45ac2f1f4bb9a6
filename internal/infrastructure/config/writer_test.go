package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigOrdered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, WriteConfigOrdered(DefaultConfig(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var headers []string
	for _, line := range strings.Split(string(content), "\n") {
		if strings.HasPrefix(line, "[") {
			headers = append(headers, line)
		}
	}
	assert.Equal(t, []string{"[history]", "[logging]", "[tlp]", "[ui]"}, headers)

	var decoded Config
	require.NoError(t, toml.Unmarshal(content, &decoded))
	assert.Equal(t, "/etc/tlp.conf", decoded.TLP.ConfigFile)
	assert.Equal(t, defaultWindowHeight, decoded.UI.WindowHeight)
}

func TestWriteConfigOrdered_Nil(t *testing.T) {
	assert.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "x.toml")))
}

func TestSortTOMLSections(t *testing.T) {
	input := "top = 1\n\n[zeta]\n  a = 1\n\n[alpha]\n  b = 2\n"

	got := sortTOMLSections(input)

	assert.Equal(t, "top = 1\n\n[alpha]\n  b = 2\n\n[zeta]\n  a = 1\n", got)
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)
	assert.Contains(t, string(data), "tlpui configuration")
	assert.Contains(t, string(data), "stat_timeout_seconds")
}
