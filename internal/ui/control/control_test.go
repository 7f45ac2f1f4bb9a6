package control_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tlpui/internal/domain/entity"
	"github.com/bnema/tlpui/internal/ui/control"
	"github.com/bnema/tlpui/internal/ui/layout"
	"github.com/bnema/tlpui/internal/ui/layout/mocks"
)

// recorder collects the values passed to onChange.
type recorder struct {
	values []string
}

func (r *recorder) onChange(v string) { r.values = append(r.values, v) }

func TestNew_Entry(t *testing.T) {
	factory := mocks.NewMockWidgetFactory(t)
	entry := mocks.NewMockEntryWidget(t)
	rec := &recorder{}

	var changed func(string)
	factory.EXPECT().NewEntry().Return(entry).Once()
	entry.EXPECT().SetText("nvme0n1 sda").Once()
	entry.EXPECT().SetHexpand(true).Once()
	entry.EXPECT().ConnectChanged(mock.Anything).Run(func(cb func(string)) { changed = cb }).Once()

	c, err := control.New(factory, entity.ItemDescriptor{ID: "DISK_DEVICES", Type: entity.WidgetEntry}, "nvme0n1 sda", rec.onChange)
	require.NoError(t, err)
	require.NotNil(t, changed)
	assert.Equal(t, entry, c.Widget())

	changed("nvme0n1")
	assert.Equal(t, []string{"nvme0n1"}, rec.values)

	// Programmatic updates fire the widget signal but not onChange.
	entry.EXPECT().SetText("sda").Run(func(text string) { changed(text) }).Once()
	c.SetValue("sda")
	assert.Equal(t, []string{"nvme0n1"}, rec.values)
}

func TestNew_BoolSelect(t *testing.T) {
	item := entity.ItemDescriptor{ID: "TLP_ENABLE", Type: entity.WidgetBSelect, Values: []string{"0", "1"}}

	tests := []struct {
		name       string
		value      string
		wantActive bool
		toggleTo   bool
		want       string
	}{
		{name: "on to off", value: "1", wantActive: true, toggleTo: false, want: "0"},
		{name: "off to on", value: "0", wantActive: false, toggleTo: true, want: "1"},
		{name: "unknown value counts as off", value: "2", wantActive: false, toggleTo: true, want: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory := mocks.NewMockWidgetFactory(t)
			sw := mocks.NewMockSwitchWidget(t)
			rec := &recorder{}

			var toggled func(bool)
			factory.EXPECT().NewSwitch().Return(sw).Once()
			sw.EXPECT().SetActive(tt.wantActive).Once()
			sw.EXPECT().ConnectToggled(mock.Anything).Run(func(cb func(bool)) { toggled = cb }).Once()

			c, err := control.New(factory, item, tt.value, rec.onChange)
			require.NoError(t, err)

			toggled(tt.toggleTo)
			assert.Equal(t, []string{tt.want}, rec.values)
			assert.Equal(t, tt.want, c.Value())
		})
	}
}

func TestNew_BoolSelectNeedsTwoValues(t *testing.T) {
	factory := mocks.NewMockWidgetFactory(t)

	_, err := control.New(factory, entity.ItemDescriptor{ID: "X", Type: entity.WidgetBSelect, Values: []string{"on"}}, "on", nil)
	assert.ErrorIs(t, err, entity.ErrInvalidDescriptor)
}

func TestNew_Select(t *testing.T) {
	item := entity.ItemDescriptor{
		ID:     "CPU_SCALING_GOVERNOR_ON_AC",
		Type:   entity.WidgetSelect,
		Values: []string{"powersave", "performance", "schedutil"},
	}

	t.Run("known value is selected", func(t *testing.T) {
		factory := mocks.NewMockWidgetFactory(t)
		dd := mocks.NewMockDropDownWidget(t)
		rec := &recorder{}

		var selected func(int)
		factory.EXPECT().NewDropDown(item.Values).Return(dd).Once()
		dd.EXPECT().SetSelected(1).Once()
		dd.EXPECT().ConnectSelected(mock.Anything).Run(func(cb func(int)) { selected = cb }).Once()

		c, err := control.New(factory, item, "performance", rec.onChange)
		require.NoError(t, err)

		selected(2)
		selected(2)
		selected(layout.NoSelection)
		assert.Equal(t, []string{"schedutil"}, rec.values)
		assert.Equal(t, "schedutil", c.Value())
	})

	t.Run("unknown value shows no selection", func(t *testing.T) {
		factory := mocks.NewMockWidgetFactory(t)
		dd := mocks.NewMockDropDownWidget(t)

		factory.EXPECT().NewDropDown(item.Values).Return(dd).Once()
		dd.EXPECT().SetSelected(layout.NoSelection).Once()
		dd.EXPECT().ConnectSelected(mock.Anything).Once()

		c, err := control.New(factory, item, "ondemand", nil)
		require.NoError(t, err)
		assert.Equal(t, "ondemand", c.Value())
	})
}

func TestNew_Check(t *testing.T) {
	item := entity.ItemDescriptor{
		ID:        "DEVICES_TO_DISABLE_ON_STARTUP",
		Type:      entity.WidgetCheck,
		Values:    []string{"bluetooth", "nfc", "wifi", "wwan"},
		Separator: " ",
	}

	factory := mocks.NewMockWidgetFactory(t)
	box := mocks.NewMockBoxWidget(t)
	rec := &recorder{}

	factory.EXPECT().NewBox(layout.OrientationHorizontal, 8).Return(box).Once()

	checks := make(map[string]*mocks.MockCheckWidget)
	toggles := make(map[string]func(bool))
	initial := map[string]bool{"bluetooth": false, "nfc": false, "wifi": true, "wwan": true}
	for _, v := range item.Values {
		cb := mocks.NewMockCheckWidget(t)
		checks[v] = cb
		factory.EXPECT().NewCheckButton(v).Return(cb).Once()
		cb.EXPECT().SetActive(initial[v]).Once()
		cb.EXPECT().ConnectToggled(mock.Anything).Run(func(fn func(bool)) { toggles[v] = fn }).Once()
		box.EXPECT().Append(cb).Once()
	}

	_, err := control.New(factory, item, "wwan,wifi", rec.onChange)
	require.NoError(t, err)

	// The user ticks bluetooth; the joined value follows allowed order.
	checks["bluetooth"].EXPECT().Active().Return(true)
	checks["nfc"].EXPECT().Active().Return(false)
	checks["wifi"].EXPECT().Active().Return(true)
	checks["wwan"].EXPECT().Active().Return(true)
	toggles["bluetooth"](true)

	assert.Equal(t, []string{"bluetooth wifi wwan"}, rec.values)
}

func TestNew_Numeric(t *testing.T) {
	item := entity.ItemDescriptor{ID: "START_CHARGE_THRESH_BAT0", Type: entity.WidgetNumeric, Values: []string{"0", "100", "1"}}

	factory := mocks.NewMockWidgetFactory(t)
	spin := mocks.NewMockSpinWidget(t)
	rec := &recorder{}

	var changed func(float64)
	factory.EXPECT().NewSpinButton(0.0, 100.0, 1.0, 0).Return(spin).Once()
	spin.EXPECT().SetValue(75.0).Once()
	spin.EXPECT().ConnectValueChanged(mock.Anything).Run(func(cb func(float64)) { changed = cb }).Once()

	c, err := control.New(factory, item, "75", rec.onChange)
	require.NoError(t, err)

	changed(75)
	changed(80)
	assert.Equal(t, []string{"80"}, rec.values)
	assert.Equal(t, "80", c.Value())
}

func TestNew_NumericFractionalStep(t *testing.T) {
	item := entity.ItemDescriptor{ID: "X", Type: entity.WidgetNumeric, Values: []string{"0", "1", "0.25"}}

	factory := mocks.NewMockWidgetFactory(t)
	spin := mocks.NewMockSpinWidget(t)
	rec := &recorder{}

	var changed func(float64)
	factory.EXPECT().NewSpinButton(0.0, 1.0, 0.25, 2).Return(spin).Once()
	spin.EXPECT().SetValue(0.0).Once()
	spin.EXPECT().ConnectValueChanged(mock.Anything).Run(func(cb func(float64)) { changed = cb }).Once()

	_, err := control.New(factory, item, "garbage", rec.onChange)
	require.NoError(t, err)

	changed(0.5)
	assert.Equal(t, []string{"0.50"}, rec.values)
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name    string
		item    entity.ItemDescriptor
		wantErr error
	}{
		{
			name:    "unknown type",
			item:    entity.ItemDescriptor{ID: "X", Type: entity.WidgetType("slider")},
			wantErr: entity.ErrUnsupportedType,
		},
		{
			name:    "numeric arity",
			item:    entity.ItemDescriptor{ID: "X", Type: entity.WidgetNumeric, Values: []string{"0", "10"}},
			wantErr: entity.ErrInvalidDescriptor,
		},
		{
			name:    "numeric not a number",
			item:    entity.ItemDescriptor{ID: "X", Type: entity.WidgetNumeric, Values: []string{"0", "ten", "1"}},
			wantErr: entity.ErrInvalidDescriptor,
		},
		{
			name:    "select without values",
			item:    entity.ItemDescriptor{ID: "X", Type: entity.WidgetSelect},
			wantErr: entity.ErrInvalidDescriptor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory := mocks.NewMockWidgetFactory(t)
			_, err := control.New(factory, tt.item, "", nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
