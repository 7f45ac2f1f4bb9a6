// Package layouttest provides an in-memory widget toolkit for tests.
//
// Setters fire the connected callbacks the way GTK emits signals for
// programmatic changes, so guard logic in controls is exercised.
package layouttest

import (
	"slices"

	"github.com/bnema/tlpui/internal/ui/layout"
)

// Widget is a fake implementing every layout widget interface.
type Widget struct {
	Kind      string
	Label     string
	Items     []string
	Children  []*Widget
	Pages     []string
	Tooltip   string
	Classes   []string
	Visible   bool
	Sensitive bool
	Hexpand   bool
	Vexpand   bool
	Wrap      bool
	Xalign    float32

	Min, Max, Step float64
	Digits         int

	text     string
	markup   string
	active   bool
	selected int
	value    float64
	page     int

	onToggled  []func(bool)
	onChanged  []func(string)
	onSelected []func(int)
	onValue    []func(float64)
	onClicked  []func()
}

func newWidget(kind string) *Widget {
	return &Widget{Kind: kind, Visible: true, Sensitive: true, selected: layout.NoSelection}
}

func (w *Widget) SetVisible(v bool)        { w.Visible = v }
func (w *Widget) SetSensitive(s bool)      { w.Sensitive = s }
func (w *Widget) IsSensitive() bool        { return w.Sensitive }
func (w *Widget) SetHexpand(e bool)        { w.Hexpand = e }
func (w *Widget) SetVexpand(e bool)        { w.Vexpand = e }
func (w *Widget) SetTooltip(text string)   { w.Tooltip = text }
func (w *Widget) AddCSSClass(class string) { w.Classes = append(w.Classes, class) }

func (w *Widget) RemoveCSSClass(class string) {
	w.Classes = slices.DeleteFunc(w.Classes, func(c string) bool { return c == class })
}

func (w *Widget) SetWrap(wrap bool)     { w.Wrap = wrap }
func (w *Widget) SetXalign(x float32)   { w.Xalign = x }
func (w *Widget) SetLabel(label string) { w.Label = label }

func (w *Widget) Append(child layout.Widget) {
	w.Children = append(w.Children, child.(*Widget))
}

func (w *Widget) Remove(child layout.Widget) {
	w.Children = slices.DeleteFunc(w.Children, func(c *Widget) bool { return c == child.(*Widget) })
}

func (w *Widget) SetChild(child layout.Widget) {
	w.Children = []*Widget{child.(*Widget)}
}

func (w *Widget) AppendPage(child layout.Widget, title string) {
	w.Children = append(w.Children, child.(*Widget))
	w.Pages = append(w.Pages, title)
}

func (w *Widget) CurrentPage() int         { return w.page }
func (w *Widget) SetCurrentPage(index int) { w.page = index }

func (w *Widget) SetText(text string) {
	w.text = text
	for _, cb := range w.onChanged {
		cb(text)
	}
}

func (w *Widget) Text() string             { return w.text }
func (w *Widget) SetMarkup(markup string)  { w.markup = markup }
func (w *Widget) Markup() string           { return w.markup }
func (w *Widget) Active() bool             { return w.active }
func (w *Widget) Selected() int            { return w.selected }
func (w *Widget) Value() float64           { return w.value }
func (w *Widget) ConnectClicked(cb func()) { w.onClicked = append(w.onClicked, cb) }
func (w *Widget) ConnectToggled(cb func(bool)) {
	w.onToggled = append(w.onToggled, cb)
}

func (w *Widget) ConnectChanged(cb func(string)) {
	w.onChanged = append(w.onChanged, cb)
}

func (w *Widget) ConnectSelected(cb func(int)) {
	w.onSelected = append(w.onSelected, cb)
}

func (w *Widget) ConnectValueChanged(cb func(float64)) {
	w.onValue = append(w.onValue, cb)
}

func (w *Widget) SetActive(active bool) {
	if w.active == active {
		return
	}
	w.active = active
	for _, cb := range w.onToggled {
		cb(active)
	}
}

func (w *Widget) SetSelected(index int) {
	if w.selected == index {
		return
	}
	w.selected = index
	for _, cb := range w.onSelected {
		cb(index)
	}
}

func (w *Widget) SetValue(v float64) {
	if w.value == v {
		return
	}
	w.value = v
	for _, cb := range w.onValue {
		cb(v)
	}
}

// Click simulates a button press.
func (w *Widget) Click() {
	for _, cb := range w.onClicked {
		cb()
	}
}

// Find returns the first descendant (or w itself) matching pred, depth first.
func (w *Widget) Find(pred func(*Widget) bool) *Widget {
	if pred(w) {
		return w
	}
	for _, c := range w.Children {
		if found := c.Find(pred); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant (and w itself) matching pred.
func (w *Widget) FindAll(pred func(*Widget) bool) []*Widget {
	var out []*Widget
	if pred(w) {
		out = append(out, w)
	}
	for _, c := range w.Children {
		out = append(out, c.FindAll(pred)...)
	}
	return out
}

// ByKind matches widgets created by the given factory method, e.g. "switch".
func ByKind(kind string) func(*Widget) bool {
	return func(w *Widget) bool { return w.Kind == kind }
}

// ByLabel matches buttons and check buttons by label.
func ByLabel(label string) func(*Widget) bool {
	return func(w *Widget) bool { return w.Label == label }
}

// Factory creates fake widgets.
type Factory struct {
	Created []*Widget
}

// NewFactory returns an empty Factory.
func NewFactory() *Factory { return &Factory{} }

func (f *Factory) track(w *Widget) *Widget {
	f.Created = append(f.Created, w)
	return w
}

func (f *Factory) NewBox(_ layout.Orientation, _ int) layout.BoxWidget {
	return f.track(newWidget("box"))
}

func (f *Factory) NewNotebook() layout.NotebookWidget { return f.track(newWidget("notebook")) }
func (f *Factory) NewScrolled() layout.ScrolledWidget { return f.track(newWidget("scrolled")) }
func (f *Factory) NewTextView() layout.TextViewWidget { return f.track(newWidget("textview")) }
func (f *Factory) NewSwitch() layout.SwitchWidget     { return f.track(newWidget("switch")) }
func (f *Factory) NewEntry() layout.EntryWidget       { return f.track(newWidget("entry")) }

func (f *Factory) NewSeparator(_ layout.Orientation) layout.Widget {
	return f.track(newWidget("separator"))
}

func (f *Factory) NewLabel(text string) layout.LabelWidget {
	w := newWidget("label")
	w.text = text
	return f.track(w)
}

func (f *Factory) NewDropDown(items []string) layout.DropDownWidget {
	w := newWidget("dropdown")
	w.Items = items
	return f.track(w)
}

func (f *Factory) NewCheckButton(label string) layout.CheckWidget {
	w := newWidget("check")
	w.Label = label
	return f.track(w)
}

func (f *Factory) NewSpinButton(min, max, step float64, digits int) layout.SpinWidget {
	w := newWidget("spin")
	w.Min, w.Max, w.Step, w.Digits = min, max, step, digits
	return f.track(w)
}

func (f *Factory) NewButton(label string) layout.ButtonWidget {
	w := newWidget("button")
	w.Label = label
	return f.track(w)
}

// Notice is a notice shown through Host.
type Notice struct {
	Title   string
	Message string
}

// Host is a fake layout.WindowHost.
type Host struct {
	Content *Widget
	Title   string
	Notices []Notice
	Closed  bool
	// Swaps counts SetContent calls.
	Swaps int

	// Chosen is handed to ChooseFile callbacks; empty means cancelled.
	Chosen string
	// Choosers records the current path of every ChooseFile call.
	Choosers []string
}

func (h *Host) SetContent(content layout.Widget) {
	h.Content = content.(*Widget)
	h.Swaps++
}

func (h *Host) SetTitle(title string) { h.Title = title }

func (h *Host) ShowNotice(title, message string, onClose func()) {
	h.Notices = append(h.Notices, Notice{Title: title, Message: message})
	if onClose != nil {
		onClose()
	}
}

func (h *Host) ChooseFile(_, current string, onChosen func(path string)) {
	h.Choosers = append(h.Choosers, current)
	if h.Chosen != "" {
		onChosen(h.Chosen)
	}
}

func (h *Host) Close() { h.Closed = true }

// LastNotice returns the most recent notice, or the zero Notice.
func (h *Host) LastNotice() Notice {
	if len(h.Notices) == 0 {
		return Notice{}
	}
	return h.Notices[len(h.Notices)-1]
}

var (
	_ layout.WidgetFactory  = (*Factory)(nil)
	_ layout.WindowHost     = (*Host)(nil)
	_ layout.BoxWidget      = (*Widget)(nil)
	_ layout.LabelWidget    = (*Widget)(nil)
	_ layout.SwitchWidget   = (*Widget)(nil)
	_ layout.EntryWidget    = (*Widget)(nil)
	_ layout.DropDownWidget = (*Widget)(nil)
	_ layout.CheckWidget    = (*Widget)(nil)
	_ layout.SpinWidget     = (*Widget)(nil)
	_ layout.ButtonWidget   = (*Widget)(nil)
	_ layout.NotebookWidget = (*Widget)(nil)
	_ layout.ScrolledWidget = (*Widget)(nil)
	_ layout.TextViewWidget = (*Widget)(nil)
)
