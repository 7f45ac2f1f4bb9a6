package tlpconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Fixture(t *testing.T) {
	data := readFixture(t)

	entries := Parse(data)

	byName := make(map[string]int, len(entries))
	for i, e := range entries {
		byName[e.Name] = i
	}

	require.Contains(t, byName, "TLP_ENABLE")
	enable := entries[byName["TLP_ENABLE"]]
	assert.Equal(t, "1", enable.Value)
	assert.True(t, enable.Active)
	assert.False(t, enable.Quoted)
	assert.False(t, enable.Changed())

	require.Contains(t, byName, "TLP_DEFAULT_MODE")
	mode := entries[byName["TLP_DEFAULT_MODE"]]
	assert.Equal(t, "AC", mode.Value)
	assert.False(t, mode.Active)

	require.Contains(t, byName, "DISK_DEVICES")
	disks := entries[byName["DISK_DEVICES"]]
	assert.Equal(t, "nvme0n1 sda", disks.Value)
	assert.True(t, disks.Quoted)

	// Prose comments with '=' are not settings.
	assert.NotContains(t, byName, "Default")
	assert.NotContains(t, byName, "Runtime")
}

func TestParse_Duplicates(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantValue  string
		wantActive bool
		wantLine   int
	}{
		{
			name:       "active wins over later commented line",
			input:      "A=1\n#A=2\n",
			wantValue:  "1",
			wantActive: true,
			wantLine:   0,
		},
		{
			name:       "active wins over earlier commented line",
			input:      "#A=2\nA=1\n",
			wantValue:  "1",
			wantActive: true,
			wantLine:   1,
		},
		{
			name:       "last active line wins",
			input:      "A=1\nA=3\n",
			wantValue:  "3",
			wantActive: true,
			wantLine:   1,
		},
		{
			name:       "last commented line wins",
			input:      "#A=1\n#A=4\n",
			wantValue:  "4",
			wantActive: false,
			wantLine:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := Parse([]byte(tt.input))
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantValue, entries[0].Value)
			assert.Equal(t, tt.wantActive, entries[0].Active)
			assert.Equal(t, tt.wantLine, entries[0].Line)
		})
	}
}

func TestParse_CRLFAndMissingTrailingNewline(t *testing.T) {
	entries := Parse([]byte("A=1\r\nB=\"x y\""))
	require.Len(t, entries, 2)
	assert.Equal(t, "1", entries[0].Value)
	assert.Equal(t, "x y", entries[1].Value)
	assert.True(t, entries[1].Quoted)
}

func TestParse_Empty(t *testing.T) {
	assert.Empty(t, Parse(nil))
	assert.Empty(t, Parse([]byte("# only a comment\n")))
}

func TestSplitLines_Roundtrip(t *testing.T) {
	inputs := []string{"", "a", "a\n", "a\r\nb", "\n\n", "x\ny\n"}
	for _, in := range inputs {
		var out []byte
		for _, l := range splitLines([]byte(in)) {
			out = append(out, l...)
		}
		assert.Equal(t, in, string(out))
	}
}
