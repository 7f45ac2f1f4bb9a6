// Package component provides the widgets the editor window is assembled from.
package component

import (
	"fmt"
	"html"

	"github.com/bnema/tlpui/internal/domain/entity"
	"github.com/bnema/tlpui/internal/ui/control"
	"github.com/bnema/tlpui/internal/ui/layout"
)

// EditFunc is told about every edit of a row. err is set when the value was
// rejected; the entry then keeps its last accepted value.
type EditFunc func(name string, err error)

// ConfigItem is the row of one setting: bold name, on/off toggle, the input
// control and an italic description. Accepted edits are written straight into
// the entry before onEdit is called.
type ConfigItem struct {
	entry   *entity.ConfigEntry
	root    layout.BoxWidget
	toggle  layout.SwitchWidget
	control control.Control
}

// NewConfigItem builds the row for view.
func NewConfigItem(f layout.WidgetFactory, view entity.ItemView, showDescription bool, onEdit EditFunc) (*ConfigItem, error) {
	if onEdit == nil {
		onEdit = func(string, error) {}
	}
	entry := view.Entry

	ctrl, err := control.New(f, view.Descriptor, entry.Value, func(value string) {
		if err := view.Descriptor.Validate(value); err != nil {
			onEdit(entry.Name, err)
			return
		}
		entry.Value = value
		onEdit(entry.Name, nil)
	})
	if err != nil {
		return nil, err
	}

	item := &ConfigItem{
		entry:   entry,
		root:    f.NewBox(layout.OrientationVertical, 4),
		toggle:  f.NewSwitch(),
		control: ctrl,
	}
	item.root.AddCSSClass("config-item")

	header := f.NewBox(layout.OrientationHorizontal, 8)
	name := f.NewLabel(entry.Name)
	name.SetMarkup(fmt.Sprintf("<b>%s</b>", html.EscapeString(entry.Name)))
	name.SetXalign(0)
	name.SetHexpand(true)
	header.Append(name)

	item.toggle.SetTooltip("Enable or comment out this setting")
	item.toggle.SetActive(entry.Active)
	item.toggle.ConnectToggled(func(active bool) {
		if active == entry.Active {
			return
		}
		entry.Active = active
		item.control.SetSensitive(active)
		onEdit(entry.Name, nil)
	})
	header.Append(item.toggle)

	item.root.Append(header)
	item.root.Append(ctrl.Widget())
	ctrl.SetSensitive(entry.Active)

	if showDescription && view.Descriptor.Description != "" {
		desc := f.NewLabel(view.Descriptor.Description)
		desc.SetMarkup(fmt.Sprintf("<i>%s</i>", html.EscapeString(view.Descriptor.Description)))
		desc.SetWrap(true)
		desc.SetXalign(0)
		desc.AddCSSClass("dim-label")
		item.root.Append(desc)
	}

	return item, nil
}

// Widget returns the row widget.
func (i *ConfigItem) Widget() layout.Widget { return i.root }

// Name returns the setting name.
func (i *ConfigItem) Name() string { return i.entry.Name }

// Refresh shows the entry's current state without reporting an edit.
func (i *ConfigItem) Refresh() {
	i.control.SetValue(i.entry.Value)
	i.toggle.SetActive(i.entry.Active)
	i.control.SetSensitive(i.entry.Active)
}
