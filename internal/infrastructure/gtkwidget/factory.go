package gtkwidget

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/tlpui/internal/ui/layout"
)

// Factory creates GTK widgets. It must only be used on the GTK main thread.
type Factory struct{}

// NewFactory returns a Factory.
func NewFactory() *Factory { return &Factory{} }

func (f *Factory) NewBox(o layout.Orientation, spacing int) layout.BoxWidget {
	w := gtk.NewBox(orientation(o), spacing)
	return &box{base: newBase(&w.Widget, w), inner: w}
}

func (f *Factory) NewNotebook() layout.NotebookWidget {
	w := gtk.NewNotebook()
	w.SetScrollable(true)
	return &notebook{base: newBase(&w.Widget, w), inner: w}
}

func (f *Factory) NewScrolled() layout.ScrolledWidget {
	w := gtk.NewScrolledWindow()
	w.SetPolicy(gtk.PolicyNever, gtk.PolicyAutomatic)
	return &scrolled{base: newBase(&w.Widget, w), inner: w}
}

func (f *Factory) NewSeparator(o layout.Orientation) layout.Widget {
	w := gtk.NewSeparator(orientation(o))
	b := newBase(&w.Widget, w)
	return &b
}

func (f *Factory) NewLabel(text string) layout.LabelWidget {
	w := gtk.NewLabel(text)
	return &label{base: newBase(&w.Widget, w), inner: w}
}

func (f *Factory) NewTextView() layout.TextViewWidget {
	w := gtk.NewTextView()
	w.SetEditable(false)
	w.SetCursorVisible(false)
	w.SetMonospace(true)
	return &textView{base: newBase(&w.Widget, w), inner: w}
}

func (f *Factory) NewSwitch() layout.SwitchWidget {
	w := gtk.NewSwitch()
	w.SetVAlign(gtk.AlignCenter)
	return &switchWidget{base: newBase(&w.Widget, w), inner: w}
}

func (f *Factory) NewEntry() layout.EntryWidget {
	w := gtk.NewEntry()
	return &entry{base: newBase(&w.Widget, w), inner: w}
}

func (f *Factory) NewDropDown(items []string) layout.DropDownWidget {
	w := gtk.NewDropDownFromStrings(items)
	w.SetHAlign(gtk.AlignStart)
	return &dropDown{base: newBase(&w.Widget, w), inner: w}
}

func (f *Factory) NewCheckButton(text string) layout.CheckWidget {
	w := gtk.NewCheckButtonWithLabel(text)
	return &checkButton{base: newBase(&w.Widget, w), inner: w}
}

func (f *Factory) NewSpinButton(min, max, step float64, digits int) layout.SpinWidget {
	w := gtk.NewSpinButtonWithRange(min, max, step)
	w.SetDigits(uint(digits))
	w.SetHAlign(gtk.AlignStart)
	return &spinButton{base: newBase(&w.Widget, w), inner: w}
}

func (f *Factory) NewButton(text string) layout.ButtonWidget {
	w := gtk.NewButtonWithLabel(text)
	return &button{base: newBase(&w.Widget, w), inner: w}
}

var _ layout.WidgetFactory = (*Factory)(nil)
