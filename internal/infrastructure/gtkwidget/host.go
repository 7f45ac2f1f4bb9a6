package gtkwidget

import (
	"context"
	"path/filepath"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/tlpui/internal/ui/layout"
	"github.com/bnema/tlpui/internal/ui/window"
)

const (
	noticeWidth  = 420
	noticeMargin = 16
)

// Host is the application window the editor renders into.
type Host struct {
	win *gtk.ApplicationWindow
}

// NewHost creates the application window with the given default size.
func NewHost(app *gtk.Application, width, height int) *Host {
	win := gtk.NewApplicationWindow(app)
	win.SetDefaultSize(width, height)
	return &Host{win: win}
}

// Present shows the window.
func (h *Host) Present() { h.win.Present() }

// Size returns the current window size.
func (h *Host) Size() (width, height int) {
	return h.win.DefaultSize()
}

// OnCloseRequest runs fn when the window is about to close.
func (h *Host) OnCloseRequest(fn func()) {
	h.win.ConnectCloseRequest(func() bool {
		fn()
		return false
	})
}

// BindShortcuts routes key presses to handle. handle returns true when the
// shortcut was consumed.
func (h *Host) BindShortcuts(handle func(window.Shortcut) bool) {
	keys := gtk.NewEventControllerKey()
	keys.ConnectKeyPressed(func(keyval, _ uint, state gdk.ModifierType) bool {
		s := ShortcutFor(keyval, state&gdk.ControlMask != 0)
		if s == window.ShortcutNone {
			return false
		}
		return handle(s)
	})
	h.win.AddController(keys)
}

// ShortcutFor maps a key press to a window shortcut.
func ShortcutFor(keyval uint, ctrl bool) window.Shortcut {
	if !ctrl {
		return window.ShortcutNone
	}
	switch keyval {
	case gdk.KEY_q, gdk.KEY_Q:
		return window.ShortcutQuit
	case gdk.KEY_w, gdk.KEY_W:
		return window.ShortcutClose
	case gdk.KEY_s, gdk.KEY_S:
		return window.ShortcutSave
	case gdk.KEY_r, gdk.KEY_R:
		return window.ShortcutReload
	case gdk.KEY_o, gdk.KEY_O:
		return window.ShortcutOpen
	default:
		return window.ShortcutNone
	}
}

func (h *Host) SetContent(content layout.Widget) { h.win.SetChild(unwrap(content)) }
func (h *Host) SetTitle(title string)            { h.win.SetTitle(title) }
func (h *Host) Close()                           { h.win.Close() }

// ShowNotice opens a small modal window with message and an OK button.
func (h *Host) ShowNotice(title, message string, onClose func()) {
	dlg := gtk.NewWindow()
	dlg.SetTitle(title)
	dlg.SetModal(true)
	dlg.SetTransientFor(&h.win.Window)
	dlg.SetDefaultSize(noticeWidth, -1)
	dlg.SetResizable(false)

	content := gtk.NewBox(gtk.OrientationVertical, 12)
	content.SetMarginTop(noticeMargin)
	content.SetMarginBottom(noticeMargin)
	content.SetMarginStart(noticeMargin)
	content.SetMarginEnd(noticeMargin)

	text := gtk.NewLabel(message)
	text.SetWrap(true)
	text.SetSelectable(true)
	text.SetXAlign(0)
	content.Append(text)

	ok := gtk.NewButtonWithLabel("OK")
	ok.SetHAlign(gtk.AlignEnd)
	ok.ConnectClicked(func() { dlg.Close() })
	content.Append(ok)

	closed := false
	dlg.ConnectCloseRequest(func() bool {
		if !closed && onClose != nil {
			closed = true
			onClose()
		}
		return false
	})

	dlg.SetChild(content)
	dlg.Present()
}

// ChooseFile opens the portal-aware file dialog in the directory of current.
func (h *Host) ChooseFile(title, current string, onChosen func(path string)) {
	dlg := gtk.NewFileDialog()
	dlg.SetTitle(title)
	dlg.SetModal(true)
	if current != "" {
		dlg.SetInitialFolder(gio.NewFileForPath(filepath.Dir(current)))
	}

	dlg.Open(context.Background(), &h.win.Window, func(res gio.AsyncResulter) {
		file, err := dlg.OpenFinish(res)
		if err != nil || file == nil {
			// Dismissing the dialog reports an error too.
			return
		}
		if path := file.Path(); path != "" {
			onChosen(path)
		}
	})
}

var _ layout.WindowHost = (*Host)(nil)
