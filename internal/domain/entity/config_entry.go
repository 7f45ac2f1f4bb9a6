// Package entity holds the domain types of the TLP editor.
package entity

import (
	"fmt"
	"strings"
)

// ConfigEntry is one named setting read from the TLP config file.
// Value and Active are edited by the UI; the Original fields are fixed at load time.
type ConfigEntry struct {
	Name          string
	Value         string
	OriginalValue string

	// Active is false when the setting is commented out in the file.
	Active         bool
	OriginalActive bool

	// Quoted records whether the value was double-quoted on disk.
	Quoted bool

	// Line is the 0-based line index the entry was read from.
	Line int
}

// NewConfigEntry creates an entry whose current state equals its on-disk state.
func NewConfigEntry(name, value string, active, quoted bool, line int) *ConfigEntry {
	return &ConfigEntry{
		Name:           name,
		Value:          value,
		OriginalValue:  value,
		Active:         active,
		OriginalActive: active,
		Quoted:         quoted,
		Line:           line,
	}
}

// CheckValue rejects values that cannot be stored on one config line. A
// double quote would end the quoted value early and a line break would split
// the setting.
func CheckValue(name, value string) error {
	if strings.ContainsAny(value, "\"\n\r") {
		return fmt.Errorf("%w: %s: value must not contain newlines or quotes", ErrInvalidValue, name)
	}
	return nil
}

// Changed reports whether the entry differs from what was loaded.
func (e *ConfigEntry) Changed() bool {
	return e.Value != e.OriginalValue || e.Active != e.OriginalActive
}

// Reset discards pending edits.
func (e *ConfigEntry) Reset() {
	e.Value = e.OriginalValue
	e.Active = e.OriginalActive
}

// Change is a single pending modification produced by the diff engine.
type Change struct {
	Name          string
	OriginalValue string
	NewValue      string

	OriginalActive bool
	NewActive      bool

	Quoted bool
	Line   int
}

// ActivityChanged reports whether the entry was enabled or disabled.
func (c Change) ActivityChanged() bool {
	return c.OriginalActive != c.NewActive
}

// String renders the change the way the save notice lists it.
func (c Change) String() string {
	switch {
	case c.ActivityChanged() && !c.NewActive:
		return fmt.Sprintf("%s -> %s (disabled)", c.Name, c.NewValue)
	case c.ActivityChanged():
		return fmt.Sprintf("%s -> %s (enabled)", c.Name, c.NewValue)
	default:
		return fmt.Sprintf("%s -> %s", c.Name, c.NewValue)
	}
}

// Registry holds the loaded entries in file order with a lookup index.
// It is owned by a single UI session and is not safe for concurrent use.
type Registry struct {
	entries []*ConfigEntry
	index   map[string]int
}

// NewRegistry builds a registry from entries. Later duplicates replace earlier ones
// in place so file order is preserved.
func NewRegistry(entries []*ConfigEntry) *Registry {
	r := &Registry{
		entries: make([]*ConfigEntry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if e == nil {
			continue
		}
		if i, ok := r.index[e.Name]; ok {
			r.entries[i] = e
			continue
		}
		r.index[e.Name] = len(r.entries)
		r.entries = append(r.entries, e)
	}
	return r
}

// Get returns the entry with the given name.
func (r *Registry) Get(name string) (*ConfigEntry, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.entries[i], true
}

// SetValue updates the current value of an entry.
func (r *Registry) SetValue(name, value string) error {
	e, ok := r.Get(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEntry, name)
	}
	e.Value = value
	return nil
}

// SetActive enables or disables an entry.
func (r *Registry) SetActive(name string, active bool) error {
	e, ok := r.Get(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEntry, name)
	}
	e.Active = active
	return nil
}

// Entries returns the entries in file order. The slice is shared; do not append to it.
func (r *Registry) Entries() []*ConfigEntry {
	return r.entries
}

// Len returns the number of distinct entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Reset discards all pending edits.
func (r *Registry) Reset() {
	for _, e := range r.entries {
		e.Reset()
	}
}
