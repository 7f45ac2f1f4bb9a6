// Package tlpconf reads and writes the TLP key/value config file.
package tlpconf

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/bnema/tlpui/internal/domain/entity"
)

// settingPattern matches NAME=value with an optional leading '#'.
// Unquoted values may not contain whitespace so prose comments such as
// "# Note: 0=off" are not mistaken for settings.
var settingPattern = regexp.MustCompile(`^\s*(#?)\s*([A-Z][A-Z0-9_]*)=("[^"]*"|[^\s"#]*)\s*$`)

// namePattern matches a bare setting name.
var namePattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

// parsedLine is a setting found on one line of the file.
type parsedLine struct {
	name   string
	value  string
	active bool
	quoted bool
}

// splitLines splits data into lines keeping their terminators, so joining the
// result reproduces data exactly.
func splitLines(data []byte) [][]byte {
	if len(data) == 0 {
		return nil
	}
	lines := bytes.SplitAfter(data, []byte("\n"))
	if len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// lineBody strips the line terminator.
func lineBody(line []byte) (body, ending []byte) {
	switch {
	case bytes.HasSuffix(line, []byte("\r\n")):
		return line[:len(line)-2], line[len(line)-2:]
	case bytes.HasSuffix(line, []byte("\n")):
		return line[:len(line)-1], line[len(line)-1:]
	default:
		return line, nil
	}
}

func parseLine(line []byte) (parsedLine, bool) {
	body, _ := lineBody(line)
	m := settingPattern.FindSubmatch(body)
	if m == nil {
		return parsedLine{}, false
	}
	p := parsedLine{
		name:   string(m[2]),
		value:  string(m[3]),
		active: len(m[1]) == 0,
	}
	if len(p.value) >= 2 && strings.HasPrefix(p.value, `"`) && strings.HasSuffix(p.value, `"`) {
		p.value = p.value[1 : len(p.value)-1]
		p.quoted = true
	}
	return p, true
}

// Parse extracts settings from file content in order of first appearance.
// When a name occurs more than once an active line wins over a commented one;
// among lines with the same activity the last one wins. Apply keeps saved files
// consistent with this rule.
func Parse(data []byte) []*entity.ConfigEntry {
	var entries []*entity.ConfigEntry
	index := make(map[string]int)

	for i, line := range splitLines(data) {
		p, ok := parseLine(line)
		if !ok {
			continue
		}
		entry := entity.NewConfigEntry(p.name, p.value, p.active, p.quoted, i)
		if at, seen := index[p.name]; seen {
			if entries[at].Active && !p.active {
				continue
			}
			entries[at] = entry
			continue
		}
		index[p.name] = len(entries)
		entries = append(entries, entry)
	}
	return entries
}
