package gtkwidget

import (
	"os"
	"strings"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

const preferDarkProperty = "gtk-application-prefer-dark-theme"

// styleProvider is installed once and reloaded on later calls. Main thread only.
var styleProvider *gtk.CSSProvider

// SystemPrefersDark reports the desktop dark preference. GTK_THEME wins when set.
func SystemPrefersDark() bool {
	if name := os.Getenv("GTK_THEME"); name != "" {
		return strings.Contains(strings.ToLower(name), "dark")
	}
	settings := gtk.SettingsGetDefault()
	if settings == nil {
		return false
	}
	dark, _ := settings.ObjectProperty(preferDarkProperty).(bool)
	return dark
}

// ApplyStyle loads css into the default display and sets the dark preference.
// It reports false when there is no display.
func ApplyStyle(css string, prefersDark bool) bool {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return false
	}
	if settings := gtk.SettingsGetDefault(); settings != nil {
		settings.SetObjectProperty(preferDarkProperty, prefersDark)
	}

	if styleProvider == nil {
		styleProvider = gtk.NewCSSProvider()
		gtk.StyleContextAddProviderForDisplay(display, styleProvider, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION)
	}
	styleProvider.LoadFromData(css)
	return true
}
