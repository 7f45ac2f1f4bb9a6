package styles

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/term"
)

const (
	defaultWidth = 80
	minWrapWidth = 20
)

// IsInteractive reports whether w is a terminal.
func IsInteractive(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Width returns the terminal width of w, or 80 when it is not a terminal.
func Width(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// Wrap wraps text to width and prefixes every line with indent.
func Wrap(text string, width int, indent string) string {
	limit := width - len(indent)
	if limit < minWrapWidth {
		limit = minWrapWidth
	}
	lines := strings.Split(wordwrap.WrapString(text, uint(limit)), "\n")
	for i, line := range lines {
		lines[i] = indent + line
	}
	return strings.Join(lines, "\n")
}
