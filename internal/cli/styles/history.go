package styles

import (
	"github.com/bnema/tlpui/internal/domain/entity"
)

const historyTimeLayout = "2006-01-02 15:04:05"

// RenderHistory renders change records as a table, newest first as given.
func RenderHistory(theme *Theme, records []entity.ChangeRecord) string {
	if len(records) == 0 {
		return theme.Subtle.Render("No saved changes yet.")
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			rec.SavedAt.Local().Format(historyTimeLayout),
			rec.Name,
			activeValue(rec.OldValue, rec.OldActive),
			activeValue(rec.NewValue, rec.NewActive),
			shortID(rec.BatchID),
		})
	}
	return RenderTable(
		[]string{"Saved", "Setting", "Before", "After", "Batch"},
		rows,
		nil,
	)
}

// activeValue marks values of commented-out lines.
func activeValue(value string, active bool) string {
	if active {
		return value
	}
	return "#" + value
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
