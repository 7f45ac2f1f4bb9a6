package entity

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// WidgetType tags which control renders an item.
type WidgetType string

// Widget types understood by the category document.
const (
	WidgetEntry   WidgetType = "entry"
	WidgetBSelect WidgetType = "bselect"
	WidgetSelect  WidgetType = "select"
	WidgetCheck   WidgetType = "check"
	WidgetNumeric WidgetType = "numeric"
)

// widgetAliases maps alternative spellings to their canonical type.
var widgetAliases = map[string]WidgetType{
	"boolean-select": WidgetBSelect,
	"bool":           WidgetBSelect,
	"text":           WidgetEntry,
	"checkbox":       WidgetCheck,
	"spin":           WidgetNumeric,
}

// ParseWidgetType normalizes a type name. Unknown names are returned as-is so the
// widget factory can report them.
func ParseWidgetType(s string) WidgetType {
	s = strings.ToLower(strings.TrimSpace(s))
	if alias, ok := widgetAliases[s]; ok {
		return alias
	}
	return WidgetType(s)
}

// Known reports whether a control exists for the type.
func (t WidgetType) Known() bool {
	switch t {
	case WidgetEntry, WidgetBSelect, WidgetSelect, WidgetCheck, WidgetNumeric:
		return true
	default:
		return false
	}
}

// DefaultCheckSeparator joins selected values of a check group.
const DefaultCheckSeparator = ","

// ItemDescriptor describes how one config entry is presented.
type ItemDescriptor struct {
	ID          string
	Type        WidgetType
	Values      []string
	Description string
	// Separator joins check values; empty means DefaultCheckSeparator.
	Separator string
}

// CategoryDescriptor is a labeled, ordered group of items.
type CategoryDescriptor struct {
	Label string
	Items []ItemDescriptor
}

// CheckSeparator returns the separator used to join check values.
func (d ItemDescriptor) CheckSeparator() string {
	if d.Separator == "" {
		return DefaultCheckSeparator
	}
	return d.Separator
}

// NumericRange is the [min, max, step] triple of a numeric item.
type NumericRange struct {
	Min  float64
	Max  float64
	Step float64
}

// Integral reports whether values of the range are whole numbers.
func (r NumericRange) Integral() bool {
	return r.Step == math.Trunc(r.Step) && r.Min == math.Trunc(r.Min)
}

// Format renders a value with the precision the range implies.
func (r NumericRange) Format(v float64) string {
	if r.Integral() {
		return strconv.FormatInt(int64(math.Round(v)), 10)
	}
	return strconv.FormatFloat(v, 'f', r.Digits(), 64)
}

// Digits returns the number of decimals shown for the step.
func (r NumericRange) Digits() int {
	if r.Integral() {
		return 0
	}
	s := strconv.FormatFloat(r.Step, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

// Contains reports whether v lies inside the range.
func (r NumericRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// NumericRange parses Values as [min, max, step].
func (d ItemDescriptor) NumericRange() (NumericRange, error) {
	if len(d.Values) != 3 {
		return NumericRange{}, fmt.Errorf("%w: %s: numeric needs [min, max, step], got %d values",
			ErrInvalidDescriptor, d.ID, len(d.Values))
	}
	var nums [3]float64
	for i, raw := range d.Values {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return NumericRange{}, fmt.Errorf("%w: %s: %q is not a number", ErrInvalidDescriptor, d.ID, raw)
		}
		nums[i] = v
	}
	r := NumericRange{Min: nums[0], Max: nums[1], Step: nums[2]}
	if r.Min > r.Max || r.Step <= 0 {
		return NumericRange{}, fmt.Errorf("%w: %s: bad range %v", ErrInvalidDescriptor, d.ID, d.Values)
	}
	return r, nil
}

// ToggleBoolSelect returns the other of the two allowed values. A value that matches
// neither is treated as the off state, so toggling yields the on value.
func ToggleBoolSelect(values []string, current string) (string, error) {
	if len(values) != 2 {
		return "", fmt.Errorf("%w: bselect needs exactly 2 values, got %d", ErrInvalidDescriptor, len(values))
	}
	if current == values[1] {
		return values[0], nil
	}
	return values[1], nil
}

// SplitCheckValue splits a stored check value on commas and whitespace.
func SplitCheckValue(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// JoinCheckValue joins the selected values in allowed order, dropping unknown ones.
func JoinCheckValue(allowed, selected []string, sep string) string {
	picked := make([]string, 0, len(selected))
	for _, v := range allowed {
		if slices.Contains(selected, v) {
			picked = append(picked, v)
		}
	}
	return strings.Join(picked, sep)
}

// Validate checks that value is acceptable for the item's widget.
func (d ItemDescriptor) Validate(value string) error {
	switch d.Type {
	case WidgetEntry:
		return CheckValue(d.ID, value)
	case WidgetBSelect:
		if len(d.Values) != 2 {
			return fmt.Errorf("%w: %s: bselect needs exactly 2 values", ErrInvalidDescriptor, d.ID)
		}
		if !slices.Contains(d.Values, value) {
			return fmt.Errorf("%w: %s: %q is not one of %v", ErrInvalidValue, d.ID, value, d.Values)
		}
		return nil
	case WidgetSelect:
		if !slices.Contains(d.Values, value) {
			return fmt.Errorf("%w: %s: %q is not one of %v", ErrInvalidValue, d.ID, value, d.Values)
		}
		return nil
	case WidgetCheck:
		for _, v := range SplitCheckValue(value) {
			if !slices.Contains(d.Values, v) {
				return fmt.Errorf("%w: %s: %q is not one of %v", ErrInvalidValue, d.ID, v, d.Values)
			}
		}
		return nil
	case WidgetNumeric:
		r, err := d.NumericRange()
		if err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fmt.Errorf("%w: %s: %q is not a number", ErrInvalidValue, d.ID, value)
		}
		if !r.Contains(v) {
			return fmt.Errorf("%w: %s: %s is outside %s..%s", ErrInvalidValue, d.ID,
				value, r.Format(r.Min), r.Format(r.Max))
		}
		return nil
	default:
		return &UnsupportedTypeError{ItemID: d.ID, Type: d.Type}
	}
}

// ValidateDescriptor checks that the declared values fit the widget type.
func (d ItemDescriptor) ValidateDescriptor() error {
	switch d.Type {
	case WidgetEntry:
		return nil
	case WidgetBSelect:
		if len(d.Values) != 2 {
			return fmt.Errorf("%w: %s: bselect needs exactly 2 values, got %d", ErrInvalidDescriptor, d.ID, len(d.Values))
		}
		return nil
	case WidgetSelect, WidgetCheck:
		if len(d.Values) == 0 {
			return fmt.Errorf("%w: %s: %s needs at least one value", ErrInvalidDescriptor, d.ID, d.Type)
		}
		return nil
	case WidgetNumeric:
		_, err := d.NumericRange()
		return err
	default:
		return &UnsupportedTypeError{ItemID: d.ID, Type: d.Type}
	}
}
