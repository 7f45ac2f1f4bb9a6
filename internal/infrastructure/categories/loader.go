package categories

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"sigs.k8s.io/yaml"

	"github.com/bnema/tlpui/internal/application/port"
	"github.com/bnema/tlpui/internal/domain/entity"
	"github.com/bnema/tlpui/internal/logging"
)

//go:embed configcategories.json
var embeddedDocument []byte

// EmbeddedOrigin is reported by Origin when no path is configured.
const EmbeddedOrigin = "embedded"

// Loader implements port.CategorySource.
type Loader struct {
	path string
}

var _ port.CategorySource = (*Loader)(nil)

// NewLoader creates a loader for path. An empty path selects the built-in document.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Origin returns the document path or EmbeddedOrigin.
func (l *Loader) Origin() string {
	if l.path == "" {
		return EmbeddedOrigin
	}
	return l.path
}

// Load reads and validates the document. Any problem fails the whole load.
func (l *Loader) Load(ctx context.Context) ([]entity.CategoryDescriptor, error) {
	log := logging.FromContext(ctx)

	data := embeddedDocument
	if l.path != "" {
		var err error
		data, err = os.ReadFile(l.path)
		if err != nil {
			return nil, &entity.FileFormatError{Path: l.path, Reason: "cannot read category document", Err: err}
		}
	}

	cats, err := Parse(data)
	if err != nil {
		var ffe *entity.FileFormatError
		if errors.As(err, &ffe) {
			ffe.Path = l.Origin()
		}
		return nil, err
	}

	log.Debug().Str("origin", l.Origin()).Int("categories", len(cats)).Msg("categories loaded")
	return cats, nil
}

// Parse decodes a JSON or YAML category document.
func Parse(data []byte) ([]entity.CategoryDescriptor, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &entity.FileFormatError{Reason: "malformed category document", Err: err}
	}
	if len(doc.Categories) == 0 {
		return nil, &entity.FileFormatError{Reason: "no categories defined"}
	}

	out := make([]entity.CategoryDescriptor, 0, len(doc.Categories))
	for ci, c := range doc.Categories {
		if c.Name == "" {
			return nil, &entity.FileFormatError{Reason: fmt.Sprintf("category %d has no name", ci)}
		}
		cat := entity.CategoryDescriptor{
			Label: c.Name,
			Items: make([]entity.ItemDescriptor, 0, len(c.Configs)),
		}
		for ii, it := range c.Configs {
			if it.ID == "" {
				return nil, &entity.FileFormatError{Reason: fmt.Sprintf("category %q item %d has no id", c.Name, ii)}
			}
			if it.Type == "" {
				return nil, &entity.FileFormatError{Reason: fmt.Sprintf("item %s has no type", it.ID)}
			}
			cat.Items = append(cat.Items, entity.ItemDescriptor{
				ID:          it.ID,
				Type:        entity.ParseWidgetType(it.Type),
				Values:      []string(it.Values),
				Description: it.Description,
				Separator:   it.Separator,
			})
		}
		out = append(out, cat)
	}
	return out, nil
}

// Schema returns the JSON Schema of the category document, indented.
func Schema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Document{})
	schema.ID = "https://github.com/bnema/tlpui/categories.schema.json"
	schema.Title = "tlpui category definitions"
	schema.Description = "Groups TLP settings into categories and selects the widget used for each"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
