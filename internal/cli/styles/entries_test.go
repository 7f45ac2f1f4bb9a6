package styles

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/tlpui/internal/domain/entity"
)

func sampleView() entity.CategoryView {
	governor := entity.NewConfigEntry("CPU_SCALING_GOVERNOR_ON_AC", "powersave", true, false, 4)
	governor.Value = "performance"
	return entity.CategoryView{
		Label: "Processor",
		Items: []entity.ItemView{
			{
				Descriptor: entity.ItemDescriptor{ID: "TLP_ENABLE", Type: entity.WidgetBSelect, Description: "Enable TLP."},
				Entry:      entity.NewConfigEntry("TLP_ENABLE", "1", true, false, 1),
			},
			{
				Descriptor: entity.ItemDescriptor{ID: "CPU_SCALING_GOVERNOR_ON_AC", Type: entity.WidgetSelect},
				Entry:      governor,
			},
		},
	}
}

func TestEntriesRenderer_RenderEntry(t *testing.T) {
	r := NewEntriesRenderer(NewPlainTheme(), 80)

	active := r.RenderEntry(entity.NewConfigEntry("DISK_DEVICES", "nvme0n1 sda", true, true, 3))
	assert.Contains(t, active, IconToggleOn)
	assert.Contains(t, active, `DISK_DEVICES = "nvme0n1 sda"`)

	inactive := r.RenderEntry(entity.NewConfigEntry("TLP_DEFAULT_MODE", "AC", false, false, 2))
	assert.Contains(t, inactive, IconToggleOff)
	assert.Contains(t, inactive, "TLP_DEFAULT_MODE = AC")
}

func TestEntriesRenderer_RenderCategory(t *testing.T) {
	r := NewEntriesRenderer(NewPlainTheme(), 80)

	full := r.RenderCategory(sampleView(), true, false)
	assert.True(t, strings.HasPrefix(full, "Processor\n"))
	assert.Contains(t, full, "TLP_ENABLE = 1")
	assert.Contains(t, full, "      Enable TLP.")
	assert.Contains(t, full, "CPU_SCALING_GOVERNOR_ON_AC = performance")

	changed := r.RenderCategory(sampleView(), false, true)
	assert.NotContains(t, changed, "TLP_ENABLE")
	assert.Contains(t, changed, "CPU_SCALING_GOVERNOR_ON_AC")

	empty := entity.CategoryView{Label: "Radio"}
	assert.Empty(t, r.RenderCategory(empty, false, true))
	assert.Contains(t, r.RenderCategory(empty, false, false), "No settings")
}

func TestEntriesRenderer_RenderChanges(t *testing.T) {
	r := NewEntriesRenderer(NewPlainTheme(), 80)

	assert.Equal(t, "No changes", r.RenderChanges(nil))

	out := r.RenderChanges([]entity.Change{
		{Name: "TLP_DEFAULT_MODE", OriginalValue: "AC", NewValue: "BAT", OriginalActive: false, NewActive: true},
		{Name: "TLP_ENABLE", OriginalValue: "1", NewValue: "1", OriginalActive: true, NewActive: false},
	})
	assert.Contains(t, out, "Pending changes (2):")
	assert.Contains(t, out, "TLP_DEFAULT_MODE AC "+IconArrow+" BAT (enabled)")
	assert.Contains(t, out, "TLP_ENABLE 1 "+IconArrow+" 1 (disabled)")
}

func TestEntriesRenderer_RenderWarnings_SkipsUnmatched(t *testing.T) {
	r := NewEntriesRenderer(NewPlainTheme(), 80)

	out := r.RenderWarnings([]entity.Warning{
		{Kind: entity.WarningUnmatched, ItemID: "USB_AUTOSUSPEND"},
		{Kind: entity.WarningUnsupportedType, Category: "Disks", ItemID: "DISK_IOSCHED", Message: "widget type \"slider\" is not supported"},
	})

	assert.NotContains(t, out, "USB_AUTOSUSPEND")
	assert.Contains(t, out, "Skipped DISK_IOSCHED (Disks)")
}

func TestEntriesRenderer_RenderSavedAndError(t *testing.T) {
	r := NewEntriesRenderer(NewPlainTheme(), 80)

	assert.Contains(t, r.RenderSaved(1, "/etc/tlp.conf"), "Saved 1 change to /etc/tlp.conf")
	assert.Contains(t, r.RenderSaved(3, "/etc/tlp.conf"), "Saved 3 changes")
	assert.Contains(t, r.RenderError(errors.New("permission denied")), "permission denied")
}

func TestWrap(t *testing.T) {
	text := "Select the CPU scaling governor used while the laptop runs on AC power."

	out := Wrap(text, 30, "  ")

	for _, line := range strings.Split(out, "\n") {
		assert.True(t, strings.HasPrefix(line, "  "))
		assert.LessOrEqual(t, len(line), 30)
	}
	assert.Equal(t, text, strings.Join(strings.Fields(out), " "))
}
