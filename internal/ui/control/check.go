package control

import (
	"slices"

	"github.com/bnema/tlpui/internal/domain/entity"
	"github.com/bnema/tlpui/internal/ui/layout"
)

// checkControl shows one check button per allowed value. The value is the
// selected subset joined with the item's separator, in allowed order.
type checkControl struct {
	syncGuard
	box    layout.BoxWidget
	checks []layout.CheckWidget
	values []string
	sep    string
}

func newCheck(f layout.WidgetFactory, item entity.ItemDescriptor, value string, onChange func(string)) *checkControl {
	c := &checkControl{
		box:    f.NewBox(layout.OrientationHorizontal, 8),
		values: item.Values,
		sep:    item.CheckSeparator(),
	}
	selected := entity.SplitCheckValue(value)
	for _, v := range item.Values {
		cb := f.NewCheckButton(v)
		cb.SetActive(slices.Contains(selected, v))
		cb.ConnectToggled(func(bool) {
			if c.syncing {
				return
			}
			onChange(c.Value())
		})
		c.box.Append(cb)
		c.checks = append(c.checks, cb)
	}
	return c
}

func (c *checkControl) Widget() layout.Widget { return c.box }
func (c *checkControl) SetSensitive(s bool)   { c.box.SetSensitive(s) }

func (c *checkControl) Value() string {
	selected := make([]string, 0, len(c.checks))
	for i, cb := range c.checks {
		if cb.Active() {
			selected = append(selected, c.values[i])
		}
	}
	return entity.JoinCheckValue(c.values, selected, c.sep)
}

func (c *checkControl) SetValue(value string) {
	selected := entity.SplitCheckValue(value)
	c.sync(func() {
		for i, cb := range c.checks {
			cb.SetActive(slices.Contains(selected, c.values[i]))
		}
	})
}
