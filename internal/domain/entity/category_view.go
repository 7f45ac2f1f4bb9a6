package entity

// ItemView pairs a descriptor with the registry entry it edits.
type ItemView struct {
	Descriptor ItemDescriptor
	Entry      *ConfigEntry
}

// CategoryView is a category with only the items that matched a loaded entry.
type CategoryView struct {
	Label string
	Items []ItemView
}

// WarningKind classifies a non-fatal problem found while assembling views.
type WarningKind string

const (
	// WarningUnmatched marks a descriptor whose id has no loaded entry.
	WarningUnmatched WarningKind = "unmatched"
	// WarningUnsupportedType marks a descriptor with a widget type no control handles.
	WarningUnsupportedType WarningKind = "unsupported_type"
	// WarningInvalidDescriptor marks a descriptor whose values do not fit its widget.
	WarningInvalidDescriptor WarningKind = "invalid_descriptor"
	// WarningDuplicate marks a descriptor whose id already has a row elsewhere.
	WarningDuplicate WarningKind = "duplicate"
)

// Warning describes a skipped item.
type Warning struct {
	Kind     WarningKind
	Category string
	ItemID   string
	Message  string
}

// UserVisible reports whether the warning should reach the status line.
// Unmatched ids are expected when the config file predates the category document.
func (w Warning) UserVisible() bool {
	return w.Kind != WarningUnmatched
}
