// Package control builds the input widget for a single config item.
package control

import (
	"github.com/bnema/tlpui/internal/domain/entity"
	"github.com/bnema/tlpui/internal/ui/layout"
)

// Control is the editable widget of one config item.
type Control interface {
	// Widget returns the root widget to pack into the item row.
	Widget() layout.Widget
	// Value returns the value the control currently represents.
	Value() string
	// SetValue updates the widget without calling onChange.
	SetValue(value string)
	SetSensitive(sensitive bool)
}

// New creates the control for item, showing value. onChange receives the new
// value after every user edit.
func New(f layout.WidgetFactory, item entity.ItemDescriptor, value string, onChange func(string)) (Control, error) {
	if err := item.ValidateDescriptor(); err != nil {
		return nil, err
	}
	if onChange == nil {
		onChange = func(string) {}
	}

	switch item.Type {
	case entity.WidgetEntry:
		return newEntry(f, value, onChange), nil
	case entity.WidgetBSelect:
		return newBoolSelect(f, item, value, onChange), nil
	case entity.WidgetSelect:
		return newSelect(f, item, value, onChange), nil
	case entity.WidgetCheck:
		return newCheck(f, item, value, onChange), nil
	case entity.WidgetNumeric:
		return newNumeric(f, item, value, onChange)
	default:
		return nil, &entity.UnsupportedTypeError{ItemID: item.ID, Type: item.Type}
	}
}

// syncGuard suppresses change callbacks while the widget is updated from code.
type syncGuard struct {
	syncing bool
}

func (g *syncGuard) sync(fn func()) {
	g.syncing = true
	defer func() { g.syncing = false }()
	fn()
}
