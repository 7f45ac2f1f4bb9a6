package component

import (
	"github.com/bnema/tlpui/internal/domain/entity"
	"github.com/bnema/tlpui/internal/ui/layout"
)

// CategoryPage is the scrollable list of items of one category.
type CategoryPage struct {
	label  string
	scroll layout.ScrolledWidget
	items  []*ConfigItem
}

// NewCategoryPage builds a page for view. Items whose control cannot be built
// are left out and returned as warnings.
func NewCategoryPage(f layout.WidgetFactory, view entity.CategoryView, showDescriptions bool, onEdit EditFunc) (*CategoryPage, []entity.Warning) {
	page := &CategoryPage{
		label:  view.Label,
		scroll: f.NewScrolled(),
	}
	page.scroll.SetVexpand(true)

	list := f.NewBox(layout.OrientationVertical, 12)
	list.AddCSSClass("category-page")

	var warnings []entity.Warning
	if len(view.Items) == 0 {
		empty := f.NewLabel("No settings of this category were found in the config file.")
		empty.SetWrap(true)
		list.Append(empty)
	}
	for _, iv := range view.Items {
		item, err := NewConfigItem(f, iv, showDescriptions, onEdit)
		if err != nil {
			warnings = append(warnings, entity.Warning{
				Kind:     entity.WarningInvalidDescriptor,
				Category: view.Label,
				ItemID:   iv.Descriptor.ID,
				Message:  err.Error(),
			})
			continue
		}
		if len(page.items) > 0 {
			list.Append(f.NewSeparator(layout.OrientationHorizontal))
		}
		list.Append(item.Widget())
		page.items = append(page.items, item)
	}

	page.scroll.SetChild(list)
	return page, warnings
}

func (p *CategoryPage) Label() string         { return p.label }
func (p *CategoryPage) Widget() layout.Widget { return p.scroll }
func (p *CategoryPage) Items() []*ConfigItem  { return p.items }
