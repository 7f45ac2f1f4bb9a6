package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tlpui/internal/domain/entity"
)

// EntriesRenderer renders config entries grouped by category.
type EntriesRenderer struct {
	theme *Theme
	width int
}

// NewEntriesRenderer creates a renderer that wraps descriptions to width.
func NewEntriesRenderer(theme *Theme, width int) *EntriesRenderer {
	return &EntriesRenderer{theme: theme, width: width}
}

// RenderCategory renders one category. With changedOnly nothing is rendered
// for categories without pending changes.
func (r *EntriesRenderer) RenderCategory(view entity.CategoryView, showDescriptions, changedOnly bool) string {
	var items []entity.ItemView
	for _, item := range view.Items {
		if changedOnly && !item.Entry.Changed() {
			continue
		}
		items = append(items, item)
	}
	if changedOnly && len(items) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(r.theme.Title.Render(view.Label))
	sb.WriteString("\n")
	if len(items) == 0 {
		sb.WriteString("  ")
		sb.WriteString(r.theme.Subtle.Render("No settings from this category are in the file."))
		sb.WriteString("\n")
		return sb.String()
	}
	for _, item := range items {
		sb.WriteString(r.RenderEntry(item.Entry))
		sb.WriteString("\n")
		if showDescriptions && item.Descriptor.Description != "" {
			sb.WriteString(r.theme.Subtle.Render(Wrap(item.Descriptor.Description, r.width, "      ")))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// RenderEntry renders one entry as "toggle NAME = value".
func (r *EntriesRenderer) RenderEntry(e *entity.ConfigEntry) string {
	toggle := lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconToggleOn)
	name := r.theme.Highlight.Render(e.Name)
	if !e.Active {
		toggle = r.theme.Subtle.Render(IconToggleOff)
		name = r.theme.Subtle.Render(e.Name)
	}
	value := e.Value
	if e.Quoted {
		value = `"` + value + `"`
	}
	return fmt.Sprintf("  %s %s = %s", toggle, name, r.theme.Normal.Render(value))
}

// RenderChanges lists pending changes.
func (r *EntriesRenderer) RenderChanges(changes []entity.Change) string {
	if len(changes) == 0 {
		return r.theme.Subtle.Render("No changes")
	}

	arrow := lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconArrow)
	var sb strings.Builder
	sb.WriteString(r.theme.Title.Render(fmt.Sprintf("Pending changes (%d):", len(changes))))
	for _, c := range changes {
		sb.WriteString("\n  ")
		sb.WriteString(r.theme.Highlight.Render(c.Name))
		sb.WriteString(" ")
		sb.WriteString(r.theme.Subtle.Render(c.OriginalValue))
		sb.WriteString(" ")
		sb.WriteString(arrow)
		sb.WriteString(" ")
		sb.WriteString(r.theme.Normal.Render(c.NewValue))
		switch {
		case c.ActivityChanged() && c.NewActive:
			sb.WriteString(r.theme.SuccessStyle.Render(" (enabled)"))
		case c.ActivityChanged():
			sb.WriteString(r.theme.WarningStyle.Render(" (disabled)"))
		}
	}
	return sb.String()
}

// RenderWarnings lists skipped items. Unmatched ids are left out.
func (r *EntriesRenderer) RenderWarnings(warnings []entity.Warning) string {
	icon := lipgloss.NewStyle().Foreground(r.theme.Warning).Render(IconWarning)
	var lines []string
	for _, w := range warnings {
		if !w.UserVisible() {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s", icon, r.theme.WarningStyle.Render(
			fmt.Sprintf("Skipped %s (%s): %s", w.ItemID, w.Category, w.Message))))
	}
	return strings.Join(lines, "\n")
}

// RenderSaved renders the result of a successful save.
func (r *EntriesRenderer) RenderSaved(count int, path string) string {
	icon := lipgloss.NewStyle().Foreground(r.theme.Success).Render(IconCheck)
	return fmt.Sprintf("%s Saved %s to %s",
		icon,
		r.theme.Highlight.Render(pluralize(count, "change")),
		r.theme.Subtle.Render(path),
	)
}

// RenderError renders an error message.
func (r *EntriesRenderer) RenderError(err error) string {
	icon := lipgloss.NewStyle().Foreground(r.theme.Error).Render(IconX)
	return fmt.Sprintf("%s %s", icon, r.theme.ErrorStyle.Render(err.Error()))
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
