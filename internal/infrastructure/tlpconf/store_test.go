package tlpconf

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tlpui/internal/domain/entity"
	"github.com/bnema/tlpui/internal/domain/service"
)

func readFixture(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "tlp.conf"))
	require.NoError(t, err)
	return data
}

func writeTemp(t *testing.T, data []byte, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tlp.conf")
	require.NoError(t, os.WriteFile(path, data, mode))
	require.NoError(t, os.Chmod(path, mode))
	return path
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := NewStore()

	_, err := store.Load(context.Background(), filepath.Join(t.TempDir(), "missing.conf"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStore_RoundtripWithoutEditsIsByteIdentical(t *testing.T) {
	ctx := context.Background()
	data := readFixture(t)
	path := writeTemp(t, data, 0o644)
	store := NewStore()

	entries, err := store.Load(ctx, path)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, path, service.ComputeChanges(entries)))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestStore_SaveAndReload(t *testing.T) {
	ctx := context.Background()
	path := writeTemp(t, readFixture(t), 0o640)
	store := NewStore()

	entries, err := store.Load(ctx, path)
	require.NoError(t, err)
	registry := entity.NewRegistry(entries)

	require.NoError(t, registry.SetValue("CPU_SCALING_GOVERNOR_ON_AC", "performance"))
	require.NoError(t, registry.SetActive("TLP_DEFAULT_MODE", true))
	require.NoError(t, store.Save(ctx, path, service.ComputeChanges(registry.Entries())))

	reloaded, err := store.Load(ctx, path)
	require.NoError(t, err)
	again := entity.NewRegistry(reloaded)

	gov, ok := again.Get("CPU_SCALING_GOVERNOR_ON_AC")
	require.True(t, ok)
	assert.Equal(t, "performance", gov.Value)
	assert.False(t, gov.Changed())

	mode, ok := again.Get("TLP_DEFAULT_MODE")
	require.True(t, ok)
	assert.True(t, mode.Active)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
}

func TestStore_SaveRejectsValueThatWouldDropTheSetting(t *testing.T) {
	ctx := context.Background()
	data := []byte("DISK_DEVICES=\"nvme0n1 sda\"\nTLP_ENABLE=1\n")
	path := writeTemp(t, data, 0o644)
	store := NewStore()

	entries, err := store.Load(ctx, path)
	require.NoError(t, err)
	registry := entity.NewRegistry(entries)
	require.NoError(t, registry.SetValue("DISK_DEVICES", `nvme0n1 "sda`))

	err = store.Save(ctx, path, service.ComputeChanges(registry.Entries()))
	require.ErrorIs(t, err, entity.ErrInvalidValue)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	reloaded, err := store.Load(ctx, path)
	require.NoError(t, err)
	disks, ok := entity.NewRegistry(reloaded).Get("DISK_DEVICES")
	require.True(t, ok)
	assert.Equal(t, "nvme0n1 sda", disks.Value)
}

func TestStore_DisableWithCommentedDuplicateReadsBack(t *testing.T) {
	ctx := context.Background()
	path := writeTemp(t, []byte("TLP_ENABLE=1\n\n# Default: 1\n#TLP_ENABLE=0\n"), 0o644)
	store := NewStore()

	entries, err := store.Load(ctx, path)
	require.NoError(t, err)
	registry := entity.NewRegistry(entries)
	require.NoError(t, registry.SetActive("TLP_ENABLE", false))
	require.NoError(t, store.Save(ctx, path, service.ComputeChanges(registry.Entries())))

	reloaded, err := store.Load(ctx, path)
	require.NoError(t, err)
	e, ok := entity.NewRegistry(reloaded).Get("TLP_ENABLE")
	require.True(t, ok)
	assert.False(t, e.Active)
	assert.Equal(t, "1", e.Value)
}

func TestStore_SaveKeepsConcurrentEdits(t *testing.T) {
	ctx := context.Background()
	path := writeTemp(t, []byte("A=1\nB=2\n"), 0o644)
	store := NewStore()

	entries, err := store.Load(ctx, path)
	require.NoError(t, err)
	entries[0].Value = "10"

	// Another editor touches B after we loaded.
	require.NoError(t, os.WriteFile(path, []byte("A=1\nB=20\n"), 0o644))

	require.NoError(t, store.Save(ctx, path, service.ComputeChanges(entries)))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "A=10\nB=20\n", string(got))
}

func TestStore_Writable(t *testing.T) {
	store := NewStore()
	path := writeTemp(t, []byte("A=1\n"), 0o644)

	assert.True(t, store.Writable(path))
	assert.False(t, store.Writable(filepath.Join(t.TempDir(), "nope", "tlp.conf")))
}
