package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tlpui/internal/domain/entity"
	"github.com/bnema/tlpui/internal/ui/component"
	"github.com/bnema/tlpui/internal/ui/layout/layouttest"
)

func governorView(active bool) entity.ItemView {
	return entity.ItemView{
		Descriptor: entity.ItemDescriptor{
			ID:          "CPU_SCALING_GOVERNOR_ON_AC",
			Type:        entity.WidgetSelect,
			Values:      []string{"powersave", "performance"},
			Description: "Scaling governor <on AC>",
		},
		Entry: entity.NewConfigEntry("CPU_SCALING_GOVERNOR_ON_AC", "powersave", active, false, 4),
	}
}

func TestConfigItem_Layout(t *testing.T) {
	f := layouttest.NewFactory()

	item, err := component.NewConfigItem(f, governorView(true), true, nil)
	require.NoError(t, err)

	root := item.Widget().(*layouttest.Widget)
	labels := root.FindAll(layouttest.ByKind("label"))
	require.Len(t, labels, 2)
	assert.Equal(t, "<b>CPU_SCALING_GOVERNOR_ON_AC</b>", labels[0].Markup())
	assert.Equal(t, "<i>Scaling governor &lt;on AC&gt;</i>", labels[1].Markup())
	assert.True(t, labels[1].Wrap)

	toggle := root.Find(layouttest.ByKind("switch"))
	require.NotNil(t, toggle)
	assert.True(t, toggle.Active())

	dd := root.Find(layouttest.ByKind("dropdown"))
	require.NotNil(t, dd)
	assert.Equal(t, 0, dd.Selected())
	assert.True(t, dd.Sensitive)
}

func TestConfigItem_HidesDescription(t *testing.T) {
	f := layouttest.NewFactory()

	item, err := component.NewConfigItem(f, governorView(true), false, nil)
	require.NoError(t, err)

	labels := item.Widget().(*layouttest.Widget).FindAll(layouttest.ByKind("label"))
	assert.Len(t, labels, 1)
}

func TestConfigItem_EditsEntry(t *testing.T) {
	f := layouttest.NewFactory()
	view := governorView(false)
	var edited []string

	item, err := component.NewConfigItem(f, view, true, func(name string, err error) {
		require.NoError(t, err)
		edited = append(edited, name)
	})
	require.NoError(t, err)

	root := item.Widget().(*layouttest.Widget)
	dd := root.Find(layouttest.ByKind("dropdown"))
	toggle := root.Find(layouttest.ByKind("switch"))
	assert.False(t, dd.Sensitive, "inactive entries start insensitive")

	toggle.SetActive(true)
	assert.True(t, view.Entry.Active)
	assert.True(t, dd.Sensitive)

	dd.SetSelected(1)
	assert.Equal(t, "performance", view.Entry.Value)
	assert.True(t, view.Entry.Changed())
	assert.Equal(t, []string{"CPU_SCALING_GOVERNOR_ON_AC", "CPU_SCALING_GOVERNOR_ON_AC"}, edited)
}

func TestConfigItem_RefreshDoesNotReportEdits(t *testing.T) {
	f := layouttest.NewFactory()
	view := governorView(true)
	edits := 0

	item, err := component.NewConfigItem(f, view, true, func(string, error) { edits++ })
	require.NoError(t, err)

	view.Entry.Value = "performance"
	view.Entry.Active = false
	item.Refresh()

	root := item.Widget().(*layouttest.Widget)
	assert.Equal(t, 1, root.Find(layouttest.ByKind("dropdown")).Selected())
	assert.False(t, root.Find(layouttest.ByKind("switch")).Active())
	assert.Zero(t, edits)
}

func TestConfigItem_RejectsUnstorableValue(t *testing.T) {
	f := layouttest.NewFactory()
	view := entity.ItemView{
		Descriptor: entity.ItemDescriptor{ID: "DISK_DEVICES", Type: entity.WidgetEntry},
		Entry:      entity.NewConfigEntry("DISK_DEVICES", "nvme0n1 sda", true, true, 2),
	}
	var errs []error

	item, err := component.NewConfigItem(f, view, false, func(name string, err error) {
		assert.Equal(t, "DISK_DEVICES", name)
		errs = append(errs, err)
	})
	require.NoError(t, err)
	text := item.Widget().(*layouttest.Widget).Find(layouttest.ByKind("entry"))
	require.NotNil(t, text)

	text.SetText(`nvme0n1 "sda`)
	assert.Equal(t, "nvme0n1 sda", view.Entry.Value)
	assert.False(t, view.Entry.Changed())

	text.SetText("nvme0n1")
	assert.Equal(t, "nvme0n1", view.Entry.Value)

	require.Len(t, errs, 2)
	assert.ErrorIs(t, errs[0], entity.ErrInvalidValue)
	assert.NoError(t, errs[1])
}

func TestCategoryPage(t *testing.T) {
	f := layouttest.NewFactory()
	view := entity.CategoryView{
		Label: "Processor",
		Items: []entity.ItemView{
			governorView(true),
			{
				Descriptor: entity.ItemDescriptor{ID: "BROKEN", Type: entity.WidgetNumeric, Values: []string{"1"}},
				Entry:      entity.NewConfigEntry("BROKEN", "1", true, false, 9),
			},
			{
				Descriptor: entity.ItemDescriptor{ID: "CPU_BOOST_ON_AC", Type: entity.WidgetBSelect, Values: []string{"0", "1"}},
				Entry:      entity.NewConfigEntry("CPU_BOOST_ON_AC", "1", true, false, 10),
			},
		},
	}

	page, warnings := component.NewCategoryPage(f, view, false, nil)

	assert.Equal(t, "Processor", page.Label())
	require.Len(t, page.Items(), 2)
	assert.Equal(t, "CPU_BOOST_ON_AC", page.Items()[1].Name())
	require.Len(t, warnings, 1)
	assert.Equal(t, "BROKEN", warnings[0].ItemID)
	assert.Len(t, page.Widget().(*layouttest.Widget).FindAll(layouttest.ByKind("separator")), 1)
}

func TestCategoryPage_Empty(t *testing.T) {
	f := layouttest.NewFactory()

	page, warnings := component.NewCategoryPage(f, entity.CategoryView{Label: "USB"}, true, nil)

	assert.Empty(t, warnings)
	assert.Empty(t, page.Items())
	assert.NotNil(t, page.Widget().(*layouttest.Widget).Find(layouttest.ByKind("label")))
}
