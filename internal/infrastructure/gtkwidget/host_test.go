package gtkwidget

import (
	"testing"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/tlpui/internal/ui/window"
)

func TestShortcutFor(t *testing.T) {
	tests := []struct {
		name   string
		keyval uint
		ctrl   bool
		want   window.Shortcut
	}{
		{name: "ctrl+q", keyval: gdk.KEY_q, ctrl: true, want: window.ShortcutQuit},
		{name: "ctrl+w", keyval: gdk.KEY_w, ctrl: true, want: window.ShortcutClose},
		{name: "ctrl+shift+s", keyval: gdk.KEY_S, ctrl: true, want: window.ShortcutSave},
		{name: "ctrl+r", keyval: gdk.KEY_r, ctrl: true, want: window.ShortcutReload},
		{name: "ctrl+o", keyval: gdk.KEY_o, ctrl: true, want: window.ShortcutOpen},
		{name: "plain q", keyval: gdk.KEY_q, ctrl: false, want: window.ShortcutNone},
		{name: "ctrl+x", keyval: gdk.KEY_x, ctrl: true, want: window.ShortcutNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShortcutFor(tt.keyval, tt.ctrl))
		})
	}
}
