// Package tlpstat runs tlp-stat and splits its report into sections.
package tlpstat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/bnema/tlpui/internal/application/port"
	"github.com/bnema/tlpui/internal/domain/entity"
	"github.com/bnema/tlpui/internal/logging"
)

const (
	// DefaultCommand is the TLP status tool.
	DefaultCommand = "tlp-stat"
	// DefaultTimeout bounds a single run.
	DefaultTimeout = 15 * time.Second

	sectionPrefix = "+++ "
)

// DefaultArgs selects the system information report.
var DefaultArgs = []string{"-s"}

// runFunc executes a command and returns its combined output.
type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRun(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Provider implements port.StatProvider by executing a command.
type Provider struct {
	command string
	args    []string
	timeout time.Duration
	run     runFunc
	now     func() time.Time
}

var _ port.StatProvider = (*Provider)(nil)

// NewProvider creates a provider. Empty values fall back to the defaults.
func NewProvider(command string, args []string, timeout time.Duration) *Provider {
	if command == "" {
		command = DefaultCommand
	}
	if args == nil {
		args = DefaultArgs
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Provider{
		command: command,
		args:    args,
		timeout: timeout,
		run:     execRun,
		now:     time.Now,
	}
}

// Fetch runs the command and parses its output. A missing binary yields
// entity.ErrStatUnavailable. A non-zero exit with output still returns the
// report since tlp-stat exits non-zero when run without root.
func (p *Provider) Fetch(ctx context.Context) (*entity.StatReport, error) {
	log := logging.FromContext(ctx)

	runCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	cmdline := strings.TrimSpace(p.command + " " + strings.Join(p.args, " "))
	out, err := p.run(runCtx, p.command, p.args...)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s not found", entity.ErrStatUnavailable, p.command)
		}
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s timed out after %s", entity.ErrStatUnavailable, cmdline, p.timeout)
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) || len(out) == 0 {
			return nil, fmt.Errorf("%w: %s: %w", entity.ErrStatUnavailable, cmdline, err)
		}
		log.Warn().Err(err).Str("command", cmdline).Msg("tlp-stat exited with error, showing partial output")
	}

	report := &entity.StatReport{
		Command:   cmdline,
		Raw:       string(out),
		Sections:  ParseSections(string(out)),
		FetchedAt: p.now(),
	}
	log.Debug().Str("command", cmdline).Int("sections", len(report.Sections)).Msg("tlp-stat fetched")
	return report, nil
}

// ParseSections splits output on "+++ Title" header lines. Text before the
// first header forms an untitled section. Leading and trailing blank lines of
// each section are dropped.
func ParseSections(output string) []entity.StatSection {
	var sections []entity.StatSection
	var current *entity.StatSection

	flush := func() {
		if current == nil {
			return
		}
		current.Lines = trimBlank(current.Lines)
		if current.Title != "" || len(current.Lines) > 0 {
			sections = append(sections, *current)
		}
		current = nil
	}

	sc := bufio.NewScanner(strings.NewReader(output))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if title, ok := strings.CutPrefix(line, sectionPrefix); ok {
			flush()
			current = &entity.StatSection{Title: strings.TrimSpace(title)}
			continue
		}
		if strings.HasPrefix(line, "--- TLP ") && current == nil {
			current = &entity.StatSection{Title: strings.Trim(line, "- ")}
			continue
		}
		if current == nil {
			current = &entity.StatSection{}
		}
		current.Lines = append(current.Lines, line)
	}
	flush()
	return sections
}

func trimBlank(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}
