package logging

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewWithFile_WritesJSON(t *testing.T) {
	dir := t.TempDir()
	logger, cleanup, err := NewWithFile(DefaultConfig(), FileConfig{Enabled: true, Dir: dir})
	require.NoError(t, err)

	logger.Info().Str("config_path", "/etc/tlp.conf").Msg("loaded")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"config_path":"/etc/tlp.conf"`)
	assert.Contains(t, string(data), `"message":"loaded"`)
}

func TestNewWithFile_DisabledIsQuiet(t *testing.T) {
	logger, cleanup, err := NewWithFile(DefaultConfig(), FileConfig{})
	require.NoError(t, err)
	defer cleanup()
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestWithComponent(t *testing.T) {
	dir := t.TempDir()
	logger, cleanup, err := NewWithFile(DefaultConfig(), FileConfig{Enabled: true, Dir: dir})
	require.NoError(t, err)

	ctx := WithComponent(WithContext(context.Background(), logger), "save")
	FromContext(ctx).Info().Msg("hello")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"save"`)
}
