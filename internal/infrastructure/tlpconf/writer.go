package tlpconf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/bnema/tlpui/internal/domain/entity"
)

// Apply returns data with the given changes written in. Only the target line of
// each change is replaced; every other byte is kept. Settings not present in
// data are appended at the end. A change whose value cannot be stored on one
// line fails the whole call with entity.ErrInvalidValue and nothing is written.
//
// Disabling a setting also rewrites the duplicates of it that Parse would
// otherwise prefer, so the file reads back the way it was saved.
func Apply(data []byte, changes []entity.Change) ([]byte, error) {
	if len(changes) == 0 {
		return data, nil
	}
	for _, c := range changes {
		if !namePattern.MatchString(c.Name) {
			return nil, fmt.Errorf("%w: %q is not a setting name", entity.ErrInvalidValue, c.Name)
		}
		if err := entity.CheckValue(c.Name, c.NewValue); err != nil {
			return nil, err
		}
	}

	lines := splitLines(data)
	for _, c := range changes {
		idx := locate(lines, c)
		if idx < 0 {
			if n := len(lines); n > 0 {
				if _, ending := lineBody(lines[n-1]); ending == nil {
					lines[n-1] = append(bytes.Clone(lines[n-1]), '\n')
				}
			}
			lines = append(lines, []byte(renderSetting(c)+"\n"))
			continue
		}
		targets := []int{idx}
		if !c.NewActive {
			targets = append(targets, shadowing(lines, c.Name, idx)...)
		}
		for _, i := range targets {
			_, ending := lineBody(lines[i])
			lines[i] = append([]byte(renderSetting(c)), ending...)
		}
	}
	return bytes.Join(lines, nil), nil
}

// locate finds the line holding the setting. The recorded line is used when it
// still holds the same name; otherwise the active line wins, then the last
// commented one.
func locate(lines [][]byte, c entity.Change) int {
	if c.Line >= 0 && c.Line < len(lines) {
		if p, ok := parseLine(lines[c.Line]); ok && p.name == c.Name {
			return c.Line
		}
	}

	found := -1
	for i, line := range lines {
		p, ok := parseLine(line)
		if !ok || p.name != c.Name {
			continue
		}
		if p.active {
			return i
		}
		found = i
	}
	return found
}

// shadowing lists the other lines of name that Parse would pick over a
// commented line at idx: every active line and every later commented one.
func shadowing(lines [][]byte, name string, idx int) []int {
	var out []int
	for i, line := range lines {
		if i == idx {
			continue
		}
		p, ok := parseLine(line)
		if !ok || p.name != name {
			continue
		}
		if p.active || i > idx {
			out = append(out, i)
		}
	}
	return out
}

func renderSetting(c entity.Change) string {
	var sb strings.Builder
	if !c.NewActive {
		sb.WriteByte('#')
	}
	sb.WriteString(c.Name)
	sb.WriteByte('=')
	if needsQuotes(c) {
		sb.WriteByte('"')
		sb.WriteString(c.NewValue)
		sb.WriteByte('"')
	} else {
		sb.WriteString(c.NewValue)
	}
	return sb.String()
}

func needsQuotes(c entity.Change) bool {
	return c.Quoted || c.NewValue == "" || strings.ContainsAny(c.NewValue, " \t\f#")
}
