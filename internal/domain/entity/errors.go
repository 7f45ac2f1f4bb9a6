package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across layers. Match them with errors.Is.
var (
	ErrFileFormat        = errors.New("invalid file format")
	ErrUnsupportedType   = errors.New("unsupported widget type")
	ErrInvalidDescriptor = errors.New("invalid item descriptor")
	ErrUnknownEntry      = errors.New("unknown config entry")
	ErrInvalidValue      = errors.New("invalid value")
	ErrNoChanges         = errors.New("no changes")
	ErrStatUnavailable   = errors.New("tlp-stat unavailable")
)

// FileFormatError reports a category document or config file that could not be parsed.
type FileFormatError struct {
	Path   string
	Reason string
	Err    error
}

func (e *FileFormatError) Error() string {
	msg := e.Reason
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, e.Reason)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap lets errors.Is match both ErrFileFormat and the underlying cause.
func (e *FileFormatError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFileFormat}
	}
	return []error{ErrFileFormat, e.Err}
}

// UnsupportedTypeError is returned when an item declares a widget type no control implements.
type UnsupportedTypeError struct {
	ItemID string
	Type   WidgetType
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("%s: widget type %q is not supported", e.ItemID, string(e.Type))
}

func (*UnsupportedTypeError) Unwrap() error {
	return ErrUnsupportedType
}
