package control

import "github.com/bnema/tlpui/internal/ui/layout"

type entryControl struct {
	syncGuard
	entry layout.EntryWidget
}

func newEntry(f layout.WidgetFactory, value string, onChange func(string)) *entryControl {
	c := &entryControl{entry: f.NewEntry()}
	c.entry.SetText(value)
	c.entry.SetHexpand(true)
	c.entry.ConnectChanged(func(text string) {
		if c.syncing {
			return
		}
		onChange(text)
	})
	return c
}

func (c *entryControl) Widget() layout.Widget { return c.entry }
func (c *entryControl) Value() string         { return c.entry.Text() }
func (c *entryControl) SetSensitive(s bool)   { c.entry.SetSensitive(s) }

func (c *entryControl) SetValue(value string) {
	c.sync(func() { c.entry.SetText(value) })
}
