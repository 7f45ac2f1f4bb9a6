// Package theme builds the GTK stylesheet of the editor window.
package theme

import (
	"fmt"
	"regexp"
	"strings"
)

// Palette holds semantic color tokens for theming.
type Palette struct {
	Background string
	Surface    string
	Text       string
	Muted      string // descriptions and secondary text
	Accent     string
	Border     string

	Success     string
	Warning     string
	Destructive string
}

// DefaultDarkPalette returns the default dark theme palette.
func DefaultDarkPalette() Palette {
	return Palette{
		Background:  "#1e1e20",
		Surface:     "#2a2a2d",
		Text:        "#f2f2f2",
		Muted:       "#9a9a9a",
		Accent:      "#4ade80",
		Border:      "#3a3a3d",
		Success:     "#4ade80",
		Warning:     "#fbbf24",
		Destructive: "#ef4444",
	}
}

// DefaultLightPalette returns the default light theme palette.
func DefaultLightPalette() Palette {
	return Palette{
		Background:  "#fafafa",
		Surface:     "#ffffff",
		Text:        "#1a1a1a",
		Muted:       "#666666",
		Accent:      "#16a34a",
		Border:      "#dddddd",
		Success:     "#16a34a",
		Warning:     "#b45309",
		Destructive: "#dc2626",
	}
}

// ForScheme returns the palette matching the resolved dark preference.
func ForScheme(prefersDark bool) Palette {
	if prefersDark {
		return DefaultDarkPalette()
	}
	return DefaultLightPalette()
}

var hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateHexColor checks that color is a #rgb or #rrggbb value.
func ValidateHexColor(color string) error {
	if !hexColorPattern.MatchString(color) {
		return fmt.Errorf("invalid hex color %q", color)
	}
	return nil
}

// Validate checks every token of the palette.
func (p Palette) Validate() error {
	tokens := map[string]string{
		"background":  p.Background,
		"surface":     p.Surface,
		"text":        p.Text,
		"muted":       p.Muted,
		"accent":      p.Accent,
		"border":      p.Border,
		"success":     p.Success,
		"warning":     p.Warning,
		"destructive": p.Destructive,
	}
	var bad []string
	for name, value := range tokens {
		if err := ValidateHexColor(value); err != nil {
			bad = append(bad, name)
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("palette has invalid colors: %s", strings.Join(bad, ", "))
	}
	return nil
}

// ResolveColorScheme turns the configured scheme into a dark preference.
// "default" defers to system, which may be nil when no display is available.
func ResolveColorScheme(scheme string, system func() bool) bool {
	switch strings.ToLower(strings.TrimSpace(scheme)) {
	case "prefer-dark", "dark":
		return true
	case "prefer-light", "light":
		return false
	default:
		if system == nil {
			return false
		}
		return system()
	}
}
