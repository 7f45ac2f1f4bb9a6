package control

import (
	"strconv"
	"strings"

	"github.com/bnema/tlpui/internal/domain/entity"
	"github.com/bnema/tlpui/internal/ui/layout"
)

type numericControl struct {
	syncGuard
	spin  layout.SpinWidget
	rng   entity.NumericRange
	value string
}

func newNumeric(f layout.WidgetFactory, item entity.ItemDescriptor, value string, onChange func(string)) (*numericControl, error) {
	r, err := item.NumericRange()
	if err != nil {
		return nil, err
	}
	c := &numericControl{
		spin:  f.NewSpinButton(r.Min, r.Max, r.Step, r.Digits()),
		rng:   r,
		value: value,
	}
	c.spin.SetValue(c.parse(value))
	c.spin.ConnectValueChanged(func(v float64) {
		if c.syncing {
			return
		}
		formatted := c.rng.Format(v)
		if formatted == c.value {
			return
		}
		c.value = formatted
		onChange(formatted)
	})
	return c, nil
}

// parse returns the spin position for value; unparsable values show Min.
func (c *numericControl) parse(value string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return c.rng.Min
	}
	return v
}

func (c *numericControl) Widget() layout.Widget { return c.spin }
func (c *numericControl) Value() string         { return c.value }
func (c *numericControl) SetSensitive(s bool)   { c.spin.SetSensitive(s) }

func (c *numericControl) SetValue(value string) {
	c.value = value
	c.sync(func() { c.spin.SetValue(c.parse(value)) })
}
