package component_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tlpui/internal/domain/entity"
	"github.com/bnema/tlpui/internal/ui/component"
	"github.com/bnema/tlpui/internal/ui/layout/layouttest"
)

func TestActionBar(t *testing.T) {
	f := layouttest.NewFactory()
	saved := 0

	bar := component.NewActionBar(f, component.ActionBarCallbacks{OnSave: func() { saved++ }})
	root := bar.Widget().(*layouttest.Widget)
	save := root.Find(layouttest.ByLabel("Save"))
	discard := root.Find(layouttest.ByLabel("Discard"))
	require.NotNil(t, save)
	require.NotNil(t, discard)

	assert.False(t, save.Sensitive)
	bar.SetDirty(true)
	assert.True(t, save.Sensitive)
	assert.True(t, discard.Sensitive)

	save.Click()
	discard.Click()
	assert.Equal(t, 1, saved)

	status := root.Find(layouttest.ByKind("label"))
	bar.SetStatus(component.StatusWarning, "config file changed on disk")
	bar.SetStatus(component.StatusError, "save failed")
	assert.Equal(t, "save failed", status.Text())
	assert.Contains(t, status.Classes, "status-error")
	assert.NotContains(t, status.Classes, "status-warning")
}

func TestActionBar_Open(t *testing.T) {
	f := layouttest.NewFactory()
	opened := 0

	bar := component.NewActionBar(f, component.ActionBarCallbacks{OnOpen: func() { opened++ }})
	open := bar.Widget().(*layouttest.Widget).Find(layouttest.ByLabel("Open"))
	require.NotNil(t, open)

	bar.SetDirty(false)
	open.Click()
	assert.Equal(t, 1, opened)
	assert.True(t, open.Sensitive, "Open does not depend on pending edits")
}

func TestStatView(t *testing.T) {
	f := layouttest.NewFactory()
	refreshed := 0

	v := component.NewStatView(f, func() { refreshed++ })
	root := v.Widget().(*layouttest.Widget)
	text := root.Find(layouttest.ByKind("textview"))
	refresh := root.Find(layouttest.ByLabel("Refresh"))

	refresh.Click()
	assert.Equal(t, 1, refreshed)

	v.SetLoading(true)
	assert.False(t, refresh.Sensitive)

	v.ShowReport(&entity.StatReport{
		Command:   "tlp-stat -s",
		FetchedAt: time.Date(2026, 1, 2, 10, 30, 0, 0, time.UTC),
		Sections: []entity.StatSection{
			{Title: "TLP Status", Lines: []string{"State = enabled", "Mode = AC"}},
			{Title: "Battery", Lines: []string{"BAT0 = 80%"}},
		},
	})
	assert.True(t, refresh.Sensitive)
	assert.Equal(t, "TLP Status\n----------\nState = enabled\nMode = AC\n\nBattery\n-------\nBAT0 = 80%\n", text.Text())

	v.ShowError(errors.New("tlp-stat unavailable: not installed"))
	assert.Equal(t, "tlp-stat unavailable: not installed", text.Text())
}
