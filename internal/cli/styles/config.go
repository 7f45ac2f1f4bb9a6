package styles

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tlpui/internal/application/port"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file info with status.
func (r *ConfigRenderer) RenderConfigInfo(path string, missingCount int) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	var status string
	if missingCount > 0 {
		countStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)
		status = fmt.Sprintf("\n  %s %s new settings available",
			iconStyle.Render(IconInfo),
			countStyle.Render(fmt.Sprintf("%d", missingCount)),
		)
	}

	return fmt.Sprintf(
		"\n  %s Config %s%s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		status,
	)
}

// RenderPaths lists the files tlpui works with.
func (r *ConfigRenderer) RenderPaths(tlpFile, historyFile string, writable bool) string {
	access := r.theme.SuccessStyle.Render("writable")
	if !writable {
		access = r.theme.WarningStyle.Render("read-only")
	}
	return fmt.Sprintf(
		"  %s TLP file %s (%s)\n  %s History  %s\n",
		lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconBattery),
		r.theme.Normal.Render(tlpFile),
		access,
		lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconClock),
		r.theme.Normal.Render(historyFile),
	)
}

// RenderMissingKeys renders the list of missing keys with their types and default values.
func (r *ConfigRenderer) RenderMissingKeys(keys []port.KeyInfo) string {
	if len(keys) == 0 {
		return ""
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  Missing settings (%d):\n", len(keys)))
	for _, key := range keys {
		sb.WriteString(fmt.Sprintf(
			"    %s %s\n      Type: %s | Default: %s\n",
			iconStyle.Render(IconCursor),
			r.theme.Highlight.Render(key.Key),
			r.theme.Subtle.Render(key.Type),
			r.theme.Normal.Render(key.DefaultValue),
		))
	}
	return sb.String()
}

// RenderUnknownKeys renders keys present in the file that tlpui ignores.
func (r *ConfigRenderer) RenderUnknownKeys(keys []string) string {
	if len(keys) == 0 {
		return ""
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  Unknown settings (%d), ignored:\n", len(keys)))
	for _, key := range keys {
		sb.WriteString(fmt.Sprintf("    %s %s\n", iconStyle.Render(IconWarning), r.theme.Subtle.Render(key)))
	}
	return sb.String()
}

// RenderMigrationSuccess renders the success message after migration.
func (r *ConfigRenderer) RenderMigrationSuccess(count int, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Added %s new settings to %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(fmt.Sprintf("%d", count)),
		r.theme.Subtle.Render(filepath.Base(path)),
	)
}

// RenderUpToDate renders the "config is up to date" message.
func (r *ConfigRenderer) RenderUpToDate(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Config %s\n  %s Config is up to date\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		iconStyle.Render(IconCheck),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}

// RenderMigrateHint renders a hint to run the migrate command.
func (r *ConfigRenderer) RenderMigrateHint() string {
	return fmt.Sprintf(
		"\n  %s\n",
		r.theme.Subtle.Render("Run 'tlpui config migrate' to add missing defaults."),
	)
}

// RenderNoConfigFile renders message when config file doesn't exist yet.
func (r *ConfigRenderer) RenderNoConfigFile(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	return fmt.Sprintf(
		"\n  %s Config %s\n  %s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		r.theme.Subtle.Render("Config file will be created on first run with all defaults."),
	)
}
