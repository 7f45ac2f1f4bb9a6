package gtkwidget

import "github.com/diamondburned/gotk4/pkg/glib/v2"

// RunOnMain schedules fn on the GTK main loop. It is safe to call from any goroutine.
func RunOnMain(fn func()) {
	glib.IdleAdd(func() bool {
		fn()
		return false
	})
}
