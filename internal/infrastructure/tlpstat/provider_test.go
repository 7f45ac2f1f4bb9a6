package tlpstat

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tlpui/internal/domain/entity"
)

const sampleOutput = `--- TLP 1.6.1 --------------------------------------------

+++ Configured Settings:
defaults.conf L0004: TLP_ENABLE="1"
/etc/tlp.conf L0021: CPU_SCALING_GOVERNOR_ON_AC="powersave"

+++ System Info
System         = LENOVO ThinkPad T14
BIOS           = R1MET43W

+++ TLP Status
State          = enabled
Power source   = AC
`

func TestParseSections(t *testing.T) {
	sections := ParseSections(sampleOutput)

	require.Len(t, sections, 4)
	assert.Equal(t, "TLP 1.6.1", sections[0].Title)
	assert.Empty(t, sections[0].Lines)

	assert.Equal(t, "Configured Settings:", sections[1].Title)
	assert.Len(t, sections[1].Lines, 2)

	assert.Equal(t, "System Info", sections[2].Title)
	assert.Equal(t, "System         = LENOVO ThinkPad T14", sections[2].Lines[0])

	assert.Equal(t, "TLP Status", sections[3].Title)
	assert.Equal(t, []string{"State          = enabled", "Power source   = AC"}, sections[3].Lines)
}

func TestParseSections_NoHeaders(t *testing.T) {
	sections := ParseSections("\nError: command requires root.\n\n")

	require.Len(t, sections, 1)
	assert.Empty(t, sections[0].Title)
	assert.Equal(t, []string{"Error: command requires root."}, sections[0].Lines)
}

func TestParseSections_Empty(t *testing.T) {
	assert.Empty(t, ParseSections(""))
}

func newTestProvider(run runFunc) *Provider {
	p := NewProvider("", nil, time.Second)
	p.run = run
	p.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return p
}

func TestProvider_Fetch(t *testing.T) {
	var gotName string
	var gotArgs []string
	p := newTestProvider(func(_ context.Context, name string, args ...string) ([]byte, error) {
		gotName, gotArgs = name, args
		return []byte(sampleOutput), nil
	})

	report, err := p.Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, DefaultCommand, gotName)
	assert.Equal(t, DefaultArgs, gotArgs)
	assert.Equal(t, "tlp-stat -s", report.Command)
	assert.Equal(t, sampleOutput, report.Raw)
	assert.Len(t, report.Sections, 4)
	assert.Equal(t, 2026, report.FetchedAt.Year())
}

func TestProvider_NotInstalled(t *testing.T) {
	p := newTestProvider(func(context.Context, string, ...string) ([]byte, error) {
		return nil, &exec.Error{Name: "tlp-stat", Err: exec.ErrNotFound}
	})

	_, err := p.Fetch(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrStatUnavailable)
}

func TestProvider_OtherFailure(t *testing.T) {
	p := newTestProvider(func(context.Context, string, ...string) ([]byte, error) {
		return nil, errors.New("boom")
	})

	_, err := p.Fetch(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrStatUnavailable)
	assert.Contains(t, err.Error(), "boom")
}

func TestProvider_RealMissingBinary(t *testing.T) {
	p := NewProvider("tlpui-definitely-not-installed", []string{}, time.Second)

	_, err := p.Fetch(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrStatUnavailable)
}
