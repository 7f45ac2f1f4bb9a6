package control

import (
	"slices"

	"github.com/bnema/tlpui/internal/domain/entity"
	"github.com/bnema/tlpui/internal/ui/layout"
)

// selectControl is a dropdown over the allowed values. A value outside the
// list shows no selection and is kept until the user picks one.
type selectControl struct {
	syncGuard
	dd      layout.DropDownWidget
	values  []string
	current string
}

func newSelect(f layout.WidgetFactory, item entity.ItemDescriptor, value string, onChange func(string)) *selectControl {
	c := &selectControl{
		dd:      f.NewDropDown(item.Values),
		values:  item.Values,
		current: value,
	}
	c.dd.SetSelected(c.indexOf(value))
	c.dd.ConnectSelected(func(index int) {
		if c.syncing || index < 0 || index >= len(c.values) {
			return
		}
		if c.values[index] == c.current {
			return
		}
		c.current = c.values[index]
		onChange(c.current)
	})
	return c
}

func (c *selectControl) indexOf(value string) int {
	if i := slices.Index(c.values, value); i >= 0 {
		return i
	}
	return layout.NoSelection
}

func (c *selectControl) Widget() layout.Widget { return c.dd }
func (c *selectControl) Value() string         { return c.current }
func (c *selectControl) SetSensitive(s bool)   { c.dd.SetSensitive(s) }

func (c *selectControl) SetValue(value string) {
	c.current = value
	c.sync(func() { c.dd.SetSelected(c.indexOf(value)) })
}
