// Package categories loads the category-definition document that groups TLP
// settings and describes how each one is edited.
package categories

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
)

// Document is the on-disk shape of the category definitions.
type Document struct {
	Categories []Category `json:"categories" jsonschema:"required,minItems=1,description=Ordered list of setting categories"`
}

// Category groups related settings under a label.
type Category struct {
	Name    string `json:"name" jsonschema:"required,minLength=1,description=Label shown for the category"`
	Configs []Item `json:"configs" jsonschema:"description=Settings shown in this category in order"`
}

// Item describes one TLP setting.
type Item struct {
	ID          string     `json:"id" jsonschema:"required,minLength=1,description=TLP setting name"`
	Type        string     `json:"type" jsonschema:"required,enum=entry,enum=bselect,enum=boolean-select,enum=select,enum=check,enum=numeric,description=Widget used to edit the value"`
	Values      StringList `json:"values,omitempty" jsonschema:"description=Allowed values; [min max step] for numeric"`
	Description string     `json:"description,omitempty"`
	Separator   string     `json:"separator,omitempty" jsonschema:"description=Separator joining check values (default comma)"`
}

// StringList accepts strings and numbers so YAML documents can write
// numeric ranges unquoted.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("values must be a list: %w", err)
	}
	out := make(StringList, 0, len(raw))
	for _, r := range raw {
		var s string
		if err := json.Unmarshal(r, &s); err == nil {
			out = append(out, s)
			continue
		}
		var n json.Number
		if err := json.Unmarshal(r, &n); err != nil {
			return fmt.Errorf("value %s is neither string nor number", strings.TrimSpace(string(r)))
		}
		out = append(out, n.String())
	}
	*l = out
	return nil
}

// JSONSchema describes StringList for the reflector.
func (StringList) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "array",
		Items: &jsonschema.Schema{
			OneOf: []*jsonschema.Schema{
				{Type: "string"},
				{Type: "number"},
			},
		},
	}
}
