package service_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tlpui/internal/domain/entity"
	"github.com/bnema/tlpui/internal/domain/service"
)

func TestComputeChanges_SingleEdit(t *testing.T) {
	entries := []*entity.ConfigEntry{{
		Name:           "CPU_SCALING_GOVERNOR_ON_AC",
		Value:          "performance",
		OriginalValue:  "powersave",
		Active:         true,
		OriginalActive: true,
	}}

	changes := service.ComputeChanges(entries)

	require.Len(t, changes, 1)
	assert.Equal(t, "CPU_SCALING_GOVERNOR_ON_AC", changes[0].Name)
	assert.Equal(t, "powersave", changes[0].OriginalValue)
	assert.Equal(t, "performance", changes[0].NewValue)
}

func TestComputeChanges_NoEdits(t *testing.T) {
	entries := []*entity.ConfigEntry{
		entity.NewConfigEntry("TLP_ENABLE", "1", true, false, 0),
		entity.NewConfigEntry("TLP_WARN_LEVEL", "3", false, false, 1),
		nil,
	}

	assert.Empty(t, service.ComputeChanges(entries))
	assert.Empty(t, service.ComputeChanges(nil))
}

func TestComputeChanges_CarriesLineInfo(t *testing.T) {
	e := entity.NewConfigEntry("DISK_DEVICES", "nvme0n1 sda", false, true, 41)
	e.Active = true

	changes := service.ComputeChanges([]*entity.ConfigEntry{e})

	require.Len(t, changes, 1)
	assert.Equal(t, 41, changes[0].Line)
	assert.True(t, changes[0].Quoted)
	assert.False(t, changes[0].OriginalActive)
	assert.True(t, changes[0].NewActive)
	assert.Equal(t, changes[0].OriginalValue, changes[0].NewValue)
}

// With activity untouched, the result is exactly the value-changed subset in order.
func TestComputeChanges_ValueSubsetProperty(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for round := 0; round < 200; round++ {
		n := rng.IntN(20)
		entries := make([]*entity.ConfigEntry, 0, n)
		var want []string
		for i := 0; i < n; i++ {
			orig := fmt.Sprintf("v%d", rng.IntN(3))
			cur := fmt.Sprintf("v%d", rng.IntN(3))
			active := rng.IntN(2) == 0
			name := fmt.Sprintf("KEY_%d_%d", round, i)
			entries = append(entries, &entity.ConfigEntry{
				Name:           name,
				Value:          cur,
				OriginalValue:  orig,
				Active:         active,
				OriginalActive: active,
			})
			if cur != orig {
				want = append(want, name)
			}
		}

		changes := service.ComputeChanges(entries)

		got := make([]string, 0, len(changes))
		for _, c := range changes {
			got = append(got, c.Name)
			assert.NotEqual(t, c.OriginalValue, c.NewValue)
		}
		if len(want) == 0 {
			assert.Empty(t, got)
			continue
		}
		assert.Equal(t, want, got, "round %d", round)
	}
}

func TestComputeChanges_DoesNotMutate(t *testing.T) {
	e := entity.NewConfigEntry("A", "1", true, false, 0)
	e.Value = "2"

	_ = service.ComputeChanges([]*entity.ConfigEntry{e})
	_ = service.ComputeChanges([]*entity.ConfigEntry{e})

	assert.Equal(t, "2", e.Value)
	assert.Equal(t, "1", e.OriginalValue)
}

func TestFormatChanges(t *testing.T) {
	assert.Equal(t, "No changes", service.FormatChanges(nil))

	out := service.FormatChanges([]entity.Change{
		{Name: "CPU_SCALING_GOVERNOR_ON_AC", NewValue: "performance", OriginalActive: true, NewActive: true},
		{Name: "USB_AUTOSUSPEND", NewValue: "0", OriginalActive: false, NewActive: true},
	})
	assert.Equal(t, "Changed values:\nCPU_SCALING_GOVERNOR_ON_AC -> performance\nUSB_AUTOSUSPEND -> 0 (enabled)", out)
}
