package component

import "github.com/bnema/tlpui/internal/ui/layout"

// StatusLevel selects the style of the status line.
type StatusLevel int

const (
	StatusInfo StatusLevel = iota
	StatusWarning
	StatusError
)

func (l StatusLevel) cssClass() string {
	switch l {
	case StatusWarning:
		return "status-warning"
	case StatusError:
		return "status-error"
	default:
		return "status-info"
	}
}

// ActionBarCallbacks are the button handlers. Nil handlers are ignored.
type ActionBarCallbacks struct {
	OnOpen    func()
	OnSave    func()
	OnDiscard func()
	OnReload  func()
}

// ActionBar is the bottom row: the status line followed by the Open, Reload,
// Discard and Save buttons.
type ActionBar struct {
	root    layout.BoxWidget
	status  layout.LabelWidget
	level   StatusLevel
	save    layout.ButtonWidget
	discard layout.ButtonWidget
	reload  layout.ButtonWidget
	open    layout.ButtonWidget
}

// NewActionBar creates the bar with Save and Discard disabled.
func NewActionBar(f layout.WidgetFactory, cb ActionBarCallbacks) *ActionBar {
	b := &ActionBar{
		root:    f.NewBox(layout.OrientationHorizontal, 8),
		status:  f.NewLabel(""),
		save:    f.NewButton("Save"),
		discard: f.NewButton("Discard"),
		reload:  f.NewButton("Reload"),
		open:    f.NewButton("Open"),
	}
	b.root.AddCSSClass("action-bar")
	b.status.SetHexpand(true)
	b.status.SetXalign(0)

	connect(b.open, cb.OnOpen)
	connect(b.reload, cb.OnReload)
	connect(b.discard, cb.OnDiscard)
	connect(b.save, cb.OnSave)
	b.save.AddCSSClass("suggested-action")
	b.save.SetTooltip("Write changed settings (Ctrl+S)")
	b.reload.SetTooltip("Read the config file again (Ctrl+R)")
	b.open.SetTooltip("Edit another config file (Ctrl+O)")

	b.root.Append(b.status)
	b.root.Append(b.open)
	b.root.Append(b.reload)
	b.root.Append(b.discard)
	b.root.Append(b.save)

	b.SetDirty(false)
	return b
}

func connect(btn layout.ButtonWidget, fn func()) {
	if fn != nil {
		btn.ConnectClicked(fn)
	}
}

// Widget returns the bar widget.
func (b *ActionBar) Widget() layout.Widget { return b.root }

// SetStatus replaces the status line.
func (b *ActionBar) SetStatus(level StatusLevel, text string) {
	b.status.SetText(text)
	b.status.RemoveCSSClass(b.level.cssClass())
	b.status.AddCSSClass(level.cssClass())
	b.level = level
}

// SetDirty enables Save and Discard while there are pending edits.
func (b *ActionBar) SetDirty(dirty bool) {
	b.save.SetSensitive(dirty)
	b.discard.SetSensitive(dirty)
}
