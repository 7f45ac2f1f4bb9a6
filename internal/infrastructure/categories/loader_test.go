package categories

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tlpui/internal/domain/entity"
)

func TestLoader_Embedded(t *testing.T) {
	loader := NewLoader("")

	cats, err := loader.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, EmbeddedOrigin, loader.Origin())
	require.NotEmpty(t, cats)
	assert.Equal(t, "General", cats[0].Label)

	seen := make(map[string]bool)
	for _, c := range cats {
		assert.NotEmpty(t, c.Label)
		for _, it := range c.Items {
			assert.Truef(t, it.Type.Known(), "%s has unknown type %q", it.ID, it.Type)
			assert.Falsef(t, seen[it.ID], "%s listed twice", it.ID)
			seen[it.ID] = true
			if it.Type == entity.WidgetNumeric {
				_, err := it.NumericRange()
				assert.NoErrorf(t, err, "%s range", it.ID)
			}
			if it.Type == entity.WidgetBSelect {
				assert.Lenf(t, it.Values, 2, "%s values", it.ID)
			}
		}
	}
}

func TestParse_YAML(t *testing.T) {
	doc := `
categories:
  - name: Battery
    configs:
      - id: START_CHARGE_THRESH_BAT0
        type: numeric
        values: [0, 99, 1]
        description: Start threshold
      - id: TLP_ENABLE
        type: boolean-select
        values: ["0", "1"]
`
	cats, err := Parse([]byte(doc))

	require.NoError(t, err)
	require.Len(t, cats, 1)
	require.Len(t, cats[0].Items, 2)
	assert.Equal(t, []string{"0", "99", "1"}, cats[0].Items[0].Values)
	assert.Equal(t, entity.WidgetBSelect, cats[0].Items[1].Type)
}

func TestParse_KeepsUnknownTypes(t *testing.T) {
	cats, err := Parse([]byte(`{"categories":[{"name":"X","configs":[{"id":"A","type":"slider","values":[]}]}]}`))

	require.NoError(t, err)
	assert.Equal(t, entity.WidgetType("slider"), cats[0].Items[0].Type)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "syntax error", doc: `{"categories": [`},
		{name: "empty", doc: ``},
		{name: "no categories", doc: `{"categories": []}`},
		{name: "missing name", doc: `{"categories":[{"configs":[]}]}`},
		{name: "missing id", doc: `{"categories":[{"name":"X","configs":[{"type":"entry"}]}]}`},
		{name: "missing type", doc: `{"categories":[{"name":"X","configs":[{"id":"A"}]}]}`},
		{name: "bad values", doc: `{"categories":[{"name":"X","configs":[{"id":"A","type":"select","values":[{"a":1}]}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, entity.ErrFileFormat)
		})
	}
}

func TestLoader_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	_, err := NewLoader(path).Load(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrFileFormat)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), path)
}

func TestLoader_MalformedFileReportsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cats.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"categories": 3}`), 0o644))

	_, err := NewLoader(path).Load(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrFileFormat)
	assert.Contains(t, err.Error(), path)
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, "tlpui category definitions", parsed["title"])
	assert.Contains(t, string(data), `"categories"`)
	assert.Contains(t, string(data), `"bselect"`)
}
