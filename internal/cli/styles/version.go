package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tlpui/internal/domain/build"
)

// RenderVersion renders build info, one icon-prefixed line per field.
func RenderVersion(theme *Theme, info build.Info) string {
	iconStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	line := func(icon, key, value string) string {
		if value == "" {
			value = "unknown"
		}
		return fmt.Sprintf("%s %s %s", iconStyle.Render(icon), theme.Subtle.Render(key), theme.Highlight.Render(value))
	}

	lines := []string{
		line(IconVersion, "Version", info.Short()),
		line(IconClock, "Built", info.BuildDate),
		line(IconGo, "Go", info.GoVersion),
		fmt.Sprintf("%s %s", iconStyle.Render(IconGithub), theme.Subtle.Render(build.RepoURL())),
	}
	return strings.Join(lines, "\n")
}
