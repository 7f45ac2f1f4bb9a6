package entity

import "time"

// StatSection is one "+++ Title" block of tlp-stat output.
type StatSection struct {
	Title string
	Lines []string
}

// StatReport is the parsed output of a tlp-stat run.
type StatReport struct {
	Command   string
	Raw       string
	Sections  []StatSection
	FetchedAt time.Time
}
