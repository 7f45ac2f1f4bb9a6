// Package gtkwidget implements the layout widget interfaces with GTK4 through gotk4.
package gtkwidget

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/tlpui/internal/ui/layout"
)

// invalidListPosition is GTK_INVALID_LIST_POSITION.
const invalidListPosition uint = 4294967295

// native is implemented by every wrapper in this package.
type native interface {
	gtkWidget() gtk.Widgetter
}

// unwrap returns the GTK widget behind w. Widgets from another factory are a
// programming error.
func unwrap(w layout.Widget) gtk.Widgetter {
	n, ok := w.(native)
	if !ok {
		panic("gtkwidget: widget was not created by gtkwidget.Factory")
	}
	return n.gtkWidget()
}

func orientation(o layout.Orientation) gtk.Orientation {
	if o == layout.OrientationVertical {
		return gtk.OrientationVertical
	}
	return gtk.OrientationHorizontal
}

// base implements layout.Widget on top of any gtk.Widget.
type base struct {
	w    *gtk.Widget
	self gtk.Widgetter
}

func newBase(w *gtk.Widget, self gtk.Widgetter) base { return base{w: w, self: self} }

func (b base) SetVisible(v bool)           { b.w.SetVisible(v) }
func (b base) SetSensitive(s bool)         { b.w.SetSensitive(s) }
func (b base) IsSensitive() bool           { return b.w.Sensitive() }
func (b base) SetHexpand(e bool)           { b.w.SetHExpand(e) }
func (b base) SetVexpand(e bool)           { b.w.SetVExpand(e) }
func (b base) SetTooltip(text string)      { b.w.SetTooltipText(text) }
func (b base) AddCSSClass(class string)    { b.w.AddCSSClass(class) }
func (b base) RemoveCSSClass(class string) { b.w.RemoveCSSClass(class) }
func (b base) gtkWidget() gtk.Widgetter    { return b.self }

type box struct {
	base
	inner *gtk.Box
}

func (b *box) Append(child layout.Widget) { b.inner.Append(unwrap(child)) }
func (b *box) Remove(child layout.Widget) { b.inner.Remove(unwrap(child)) }

type label struct {
	base
	inner *gtk.Label
}

func (l *label) SetText(text string)      { l.inner.SetText(text) }
func (l *label) Text() string             { return l.inner.Text() }
func (l *label) SetMarkup(markup string)  { l.inner.SetMarkup(markup) }
func (l *label) SetWrap(wrap bool)        { l.inner.SetWrap(wrap) }
func (l *label) SetXalign(xalign float32) { l.inner.SetXAlign(xalign) }

type switchWidget struct {
	base
	inner *gtk.Switch
}

func (s *switchWidget) SetActive(active bool) { s.inner.SetActive(active) }
func (s *switchWidget) Active() bool          { return s.inner.Active() }

func (s *switchWidget) ConnectToggled(callback func(bool)) {
	s.inner.NotifyProperty("active", func() { callback(s.inner.Active()) })
}

type entry struct {
	base
	inner *gtk.Entry
}

func (e *entry) SetText(text string) { e.inner.SetText(text) }
func (e *entry) Text() string        { return e.inner.Text() }

func (e *entry) ConnectChanged(callback func(string)) {
	e.inner.ConnectChanged(func() { callback(e.inner.Text()) })
}

type dropDown struct {
	base
	inner *gtk.DropDown
}

func (d *dropDown) SetSelected(index int) {
	if index < 0 {
		d.inner.SetSelected(invalidListPosition)
		return
	}
	d.inner.SetSelected(uint(index))
}

func (d *dropDown) Selected() int {
	pos := d.inner.Selected()
	if pos == invalidListPosition {
		return layout.NoSelection
	}
	return int(pos)
}

func (d *dropDown) ConnectSelected(callback func(int)) {
	d.inner.NotifyProperty("selected", func() { callback(d.Selected()) })
}

type checkButton struct {
	base
	inner *gtk.CheckButton
}

func (c *checkButton) SetActive(active bool) { c.inner.SetActive(active) }
func (c *checkButton) Active() bool          { return c.inner.Active() }

func (c *checkButton) ConnectToggled(callback func(bool)) {
	c.inner.ConnectToggled(func() { callback(c.inner.Active()) })
}

type spinButton struct {
	base
	inner *gtk.SpinButton
}

func (s *spinButton) SetValue(value float64) { s.inner.SetValue(value) }
func (s *spinButton) Value() float64         { return s.inner.Value() }

func (s *spinButton) ConnectValueChanged(callback func(float64)) {
	s.inner.ConnectValueChanged(func() { callback(s.inner.Value()) })
}

type button struct {
	base
	inner *gtk.Button
}

func (b *button) SetLabel(text string)           { b.inner.SetLabel(text) }
func (b *button) ConnectClicked(callback func()) { b.inner.ConnectClicked(callback) }

type notebook struct {
	base
	inner *gtk.Notebook
}

func (n *notebook) AppendPage(child layout.Widget, title string) {
	n.inner.AppendPage(unwrap(child), gtk.NewLabel(title))
}

func (n *notebook) CurrentPage() int         { return n.inner.CurrentPage() }
func (n *notebook) SetCurrentPage(index int) { n.inner.SetCurrentPage(index) }

type scrolled struct {
	base
	inner *gtk.ScrolledWindow
}

func (s *scrolled) SetChild(child layout.Widget) { s.inner.SetChild(unwrap(child)) }

type textView struct {
	base
	inner *gtk.TextView
}

func (t *textView) SetText(text string) { t.inner.Buffer().SetText(text) }

var (
	_ layout.BoxWidget      = (*box)(nil)
	_ layout.LabelWidget    = (*label)(nil)
	_ layout.SwitchWidget   = (*switchWidget)(nil)
	_ layout.EntryWidget    = (*entry)(nil)
	_ layout.DropDownWidget = (*dropDown)(nil)
	_ layout.CheckWidget    = (*checkButton)(nil)
	_ layout.SpinWidget     = (*spinButton)(nil)
	_ layout.ButtonWidget   = (*button)(nil)
	_ layout.NotebookWidget = (*notebook)(nil)
	_ layout.ScrolledWidget = (*scrolled)(nil)
	_ layout.TextViewWidget = (*textView)(nil)
)
