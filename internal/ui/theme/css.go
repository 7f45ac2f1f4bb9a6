package theme

import (
	"fmt"
	"strings"
)

// GenerateCSS renders the stylesheet for the given palette.
func GenerateCSS(p Palette) string {
	var sb strings.Builder
	sb.WriteString(generateItemCSS(p))
	sb.WriteString("\n")
	sb.WriteString(generateActionBarCSS(p))
	sb.WriteString("\n")
	sb.WriteString(generateStatusCSS(p))
	return sb.String()
}

func generateItemCSS(p Palette) string {
	return fmt.Sprintf(`/* Config items */
.category-page {
	padding: 12px 16px;
}

.config-item {
	padding: 4px 0;
}

.config-item .dim-label {
	color: %s;
	font-size: 0.9em;
}
`, p.Muted)
}

func generateActionBarCSS(p Palette) string {
	return fmt.Sprintf(`/* Action bar */
.action-bar {
	padding: 8px 12px;
	background-color: %s;
	border-top: 1px solid %s;
}
`, p.Surface, p.Border)
}

func generateStatusCSS(p Palette) string {
	return fmt.Sprintf(`/* Status line */
.status-info {
	color: %s;
}

.status-warning {
	color: %s;
}

.status-error {
	color: %s;
	font-weight: bold;
}
`, p.Text, p.Warning, p.Destructive)
}
