package styles

import (
	"strings"

	"github.com/bnema/tlpui/internal/domain/entity"
)

// RenderStatReport renders tlp-stat sections with highlighted titles.
func RenderStatReport(theme *Theme, report *entity.StatReport) string {
	if report == nil || len(report.Sections) == 0 {
		return theme.Subtle.Render("tlp-stat returned no sections")
	}

	var sb strings.Builder
	for i, section := range report.Sections {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(theme.Highlight.Render("+++ " + section.Title))
		for _, line := range section.Lines {
			sb.WriteString("\n")
			sb.WriteString(line)
		}
	}
	return sb.String()
}
