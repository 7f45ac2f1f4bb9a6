package entity

import "time"

// ChangeRecord is one persisted change from a past save.
type ChangeRecord struct {
	ID         int64
	BatchID    string
	ConfigPath string
	Name       string
	OldValue   string
	NewValue   string
	OldActive  bool
	NewActive  bool
	SavedAt    time.Time
}

// SaveBatch groups the changes written by a single save.
type SaveBatch struct {
	ID         string
	ConfigPath string
	Changes    []Change
	SavedAt    time.Time
}
