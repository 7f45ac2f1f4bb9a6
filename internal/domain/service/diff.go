// Package service holds pure domain operations that span several entities.
package service

import (
	"strings"

	"github.com/bnema/tlpui/internal/domain/entity"
)

// ComputeChanges returns one Change per entry that differs from its loaded state,
// in the order the entries were given. Nil entries are ignored.
func ComputeChanges(entries []*entity.ConfigEntry) []entity.Change {
	var changes []entity.Change
	for _, e := range entries {
		if e == nil || !e.Changed() {
			continue
		}
		changes = append(changes, entity.Change{
			Name:           e.Name,
			OriginalValue:  e.OriginalValue,
			NewValue:       e.Value,
			OriginalActive: e.OriginalActive,
			NewActive:      e.Active,
			Quoted:         e.Quoted,
			Line:           e.Line,
		})
	}
	return changes
}

// FormatChanges renders the summary shown after a save, one change per line.
func FormatChanges(changes []entity.Change) string {
	if len(changes) == 0 {
		return "No changes"
	}
	var sb strings.Builder
	sb.WriteString("Changed values:")
	for _, c := range changes {
		sb.WriteString("\n")
		sb.WriteString(c.String())
	}
	return sb.String()
}
