package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tlpui/internal/domain/entity"
)

func TestNewConfigEntry_StartsUnchanged(t *testing.T) {
	e := entity.NewConfigEntry("TLP_ENABLE", "1", true, false, 3)

	assert.Equal(t, "1", e.OriginalValue)
	assert.True(t, e.OriginalActive)
	assert.Equal(t, 3, e.Line)
	assert.False(t, e.Changed())
}

func TestConfigEntry_Changed(t *testing.T) {
	t.Run("value edit", func(t *testing.T) {
		e := entity.NewConfigEntry("CPU_SCALING_GOVERNOR_ON_AC", "powersave", true, false, 0)
		e.Value = "performance"
		assert.True(t, e.Changed())
	})

	t.Run("edit back to original", func(t *testing.T) {
		e := entity.NewConfigEntry("CPU_SCALING_GOVERNOR_ON_AC", "powersave", true, false, 0)
		e.Value = "performance"
		e.Value = "powersave"
		assert.False(t, e.Changed())
	})

	t.Run("activity edit", func(t *testing.T) {
		e := entity.NewConfigEntry("SOUND_POWER_SAVE_ON_BAT", "1", false, false, 0)
		e.Active = true
		assert.True(t, e.Changed())
	})

	t.Run("reset", func(t *testing.T) {
		e := entity.NewConfigEntry("SOUND_POWER_SAVE_ON_BAT", "1", false, false, 0)
		e.Active = true
		e.Value = "0"
		e.Reset()
		assert.False(t, e.Changed())
	})
}

func TestChange_String(t *testing.T) {
	tests := []struct {
		name   string
		change entity.Change
		want   string
	}{
		{
			name:   "value only",
			change: entity.Change{Name: "A", NewValue: "2", OriginalActive: true, NewActive: true},
			want:   "A -> 2",
		},
		{
			name:   "enabled",
			change: entity.Change{Name: "A", NewValue: "2", OriginalActive: false, NewActive: true},
			want:   "A -> 2 (enabled)",
		},
		{
			name:   "disabled",
			change: entity.Change{Name: "A", NewValue: "2", OriginalActive: true, NewActive: false},
			want:   "A -> 2 (disabled)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.change.String())
		})
	}
}

func TestRegistry(t *testing.T) {
	entries := []*entity.ConfigEntry{
		entity.NewConfigEntry("TLP_ENABLE", "1", true, false, 0),
		entity.NewConfigEntry("TLP_DEFAULT_MODE", "AC", false, false, 1),
		nil,
		entity.NewConfigEntry("TLP_ENABLE", "0", true, false, 2),
	}
	r := entity.NewRegistry(entries)

	require.Equal(t, 2, r.Len())
	assert.Equal(t, "TLP_ENABLE", r.Entries()[0].Name)
	assert.Equal(t, "0", r.Entries()[0].Value, "later duplicate replaces earlier one in place")

	t.Run("set value", func(t *testing.T) {
		require.NoError(t, r.SetValue("TLP_DEFAULT_MODE", "BAT"))
		e, ok := r.Get("TLP_DEFAULT_MODE")
		require.True(t, ok)
		assert.Equal(t, "BAT", e.Value)
	})

	t.Run("set active", func(t *testing.T) {
		require.NoError(t, r.SetActive("TLP_DEFAULT_MODE", true))
		e, _ := r.Get("TLP_DEFAULT_MODE")
		assert.True(t, e.Active)
	})

	t.Run("unknown entry", func(t *testing.T) {
		err := r.SetValue("NOPE", "1")
		require.ErrorIs(t, err, entity.ErrUnknownEntry)
		err = r.SetActive("NOPE", true)
		require.ErrorIs(t, err, entity.ErrUnknownEntry)
	})

	t.Run("reset", func(t *testing.T) {
		r.Reset()
		for _, e := range r.Entries() {
			assert.False(t, e.Changed(), e.Name)
		}
	})
}

func TestCheckValue(t *testing.T) {
	assert.NoError(t, entity.CheckValue("DISK_DEVICES", "nvme0n1 sda #1"))
	assert.NoError(t, entity.CheckValue("DISK_DEVICES", ""))

	for _, value := range []string{`nvme0n1 "sda`, "sda\nTLP_ENABLE=0", "sda\r"} {
		assert.ErrorIs(t, entity.CheckValue("DISK_DEVICES", value), entity.ErrInvalidValue, value)
	}
}
