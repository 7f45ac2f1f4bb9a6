// Package layout defines the widget abstractions the editor is built from.
// It has no toolkit import so controls and components can be unit tested
// with a fake factory; the GTK implementation lives in infrastructure/gtkwidget.
package layout

// Orientation represents the orientation for container widgets.
type Orientation int

// Orientation constants.
const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

// NoSelection is reported by a DropDownWidget with nothing selected.
const NoSelection = -1

// Widget is the base interface every widget implements.
type Widget interface {
	SetVisible(visible bool)
	SetSensitive(sensitive bool)
	IsSensitive() bool
	SetHexpand(expand bool)
	SetVexpand(expand bool)
	SetTooltip(text string)
	AddCSSClass(class string)
	RemoveCSSClass(class string)
}

// BoxWidget arranges children in a single row or column.
type BoxWidget interface {
	Widget

	Append(child Widget)
	Remove(child Widget)
}

// LabelWidget displays text. SetMarkup takes Pango markup.
type LabelWidget interface {
	Widget

	SetText(text string)
	Text() string
	SetMarkup(markup string)
	SetWrap(wrap bool)
	SetXalign(xalign float32)
}

// SwitchWidget is an on/off switch.
type SwitchWidget interface {
	Widget

	SetActive(active bool)
	Active() bool
	// ConnectToggled runs callback whenever the state changes, including
	// changes made through SetActive.
	ConnectToggled(callback func(active bool))
}

// EntryWidget is a single-line text field.
type EntryWidget interface {
	Widget

	SetText(text string)
	Text() string
	ConnectChanged(callback func(text string))
}

// DropDownWidget selects one string out of a fixed list.
type DropDownWidget interface {
	Widget

	// SetSelected selects the item at index; NoSelection clears the selection.
	SetSelected(index int)
	Selected() int
	ConnectSelected(callback func(index int))
}

// CheckWidget is a labeled check button.
type CheckWidget interface {
	Widget

	SetActive(active bool)
	Active() bool
	ConnectToggled(callback func(active bool))
}

// SpinWidget edits a number inside a range.
type SpinWidget interface {
	Widget

	SetValue(value float64)
	Value() float64
	ConnectValueChanged(callback func(value float64))
}

// ButtonWidget is a clickable button with a text label.
type ButtonWidget interface {
	Widget

	SetLabel(label string)
	ConnectClicked(callback func())
}

// NotebookWidget shows one page at a time behind tabs.
type NotebookWidget interface {
	Widget

	AppendPage(child Widget, title string)
	CurrentPage() int
	SetCurrentPage(index int)
}

// ScrolledWidget scrolls a single child vertically.
type ScrolledWidget interface {
	Widget

	SetChild(child Widget)
}

// TextViewWidget shows read-only monospace text.
type TextViewWidget interface {
	Widget

	SetText(text string)
}

// WidgetFactory creates widget instances.
// Tests inject a fake factory.
type WidgetFactory interface {
	// Containers
	NewBox(orientation Orientation, spacing int) BoxWidget
	NewNotebook() NotebookWidget
	NewScrolled() ScrolledWidget
	NewSeparator(orientation Orientation) Widget

	// Display
	NewLabel(text string) LabelWidget
	NewTextView() TextViewWidget

	// Input
	NewSwitch() SwitchWidget
	NewEntry() EntryWidget
	NewDropDown(items []string) DropDownWidget
	NewCheckButton(label string) CheckWidget
	NewSpinButton(min, max, step float64, digits int) SpinWidget
	NewButton(label string) ButtonWidget
}

// WindowHost is the top-level window the editor renders into.
type WindowHost interface {
	// SetContent replaces the whole window content in one step.
	SetContent(content Widget)
	SetTitle(title string)
	// ShowNotice shows a modal message; onClose runs after it is dismissed.
	ShowNotice(title, message string, onClose func())
	// ChooseFile asks for an existing file, starting next to current.
	// onChosen only runs when the user picks one.
	ChooseFile(title, current string, onChosen func(path string))
	Close()
}
