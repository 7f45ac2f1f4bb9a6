package control

import (
	"github.com/bnema/tlpui/internal/domain/entity"
	"github.com/bnema/tlpui/internal/ui/layout"
)

// boolSelectControl maps a switch onto two values: off is Values[0], on is Values[1].
type boolSelectControl struct {
	syncGuard
	sw      layout.SwitchWidget
	values  []string
	current string
}

func newBoolSelect(f layout.WidgetFactory, item entity.ItemDescriptor, value string, onChange func(string)) *boolSelectControl {
	c := &boolSelectControl{
		sw:      f.NewSwitch(),
		values:  item.Values,
		current: value,
	}
	c.sw.SetActive(c.isOn(value))
	c.sw.ConnectToggled(func(active bool) {
		if c.syncing || active == c.isOn(c.current) {
			return
		}
		next, err := entity.ToggleBoolSelect(c.values, c.current)
		if err != nil {
			return
		}
		c.current = next
		onChange(next)
	})
	return c
}

func (c *boolSelectControl) isOn(value string) bool { return value == c.values[1] }

func (c *boolSelectControl) Widget() layout.Widget { return c.sw }
func (c *boolSelectControl) Value() string         { return c.current }
func (c *boolSelectControl) SetSensitive(s bool)   { c.sw.SetSensitive(s) }

func (c *boolSelectControl) SetValue(value string) {
	c.current = value
	c.sync(func() { c.sw.SetActive(c.isOn(value)) })
}
