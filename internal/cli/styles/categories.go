package styles

import (
	"strings"

	"github.com/bnema/tlpui/internal/domain/entity"
)

// RenderCategories renders the category document as a table.
func RenderCategories(descriptors []entity.CategoryDescriptor) string {
	var rows [][]string
	for _, c := range descriptors {
		for _, item := range c.Items {
			rows = append(rows, []string{
				c.Label,
				item.ID,
				string(item.Type),
				strings.Join(item.Values, " "),
			})
		}
	}
	return RenderTable([]string{"Category", "Setting", "Type", "Values"}, rows, nil)
}
