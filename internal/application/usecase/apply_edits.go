package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/tlpui/internal/domain/entity"
	"github.com/bnema/tlpui/internal/domain/service"
	"github.com/bnema/tlpui/internal/logging"
)

// ApplyEditsUseCase applies command-line edits to a registry.
type ApplyEditsUseCase struct{}

// NewApplyEditsUseCase creates a new ApplyEditsUseCase.
func NewApplyEditsUseCase() *ApplyEditsUseCase {
	return &ApplyEditsUseCase{}
}

// ApplyEditsInput lists the edits. Assignments are NAME=VALUE strings.
type ApplyEditsInput struct {
	Registry    *entity.Registry
	Categories  []entity.CategoryDescriptor
	Assignments []string
	Enable      []string
	Disable     []string
}

// ApplyEditsOutput holds the pending changes after the edits.
type ApplyEditsOutput struct {
	Changes []entity.Change
}

// Assignment is one parsed NAME=VALUE edit.
type Assignment struct {
	Name  string
	Value string
}

// ParseAssignment splits NAME=VALUE. Surrounding double quotes on the value
// are removed.
func ParseAssignment(s string) (Assignment, error) {
	name, value, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return Assignment{}, fmt.Errorf("%w: %q is not NAME=VALUE", entity.ErrInvalidValue, s)
	}
	value = strings.TrimSpace(value)
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		value = value[1 : len(value)-1]
	}
	return Assignment{Name: name, Value: value}, nil
}

// Execute validates every edit before mutating anything, so a rejected edit
// leaves the registry untouched. Values are checked against the item's
// descriptor when the category document lists it; other values must still fit
// on one line. Assigning a value to a
// commented-out entry enables it unless it is also listed in Disable.
func (uc *ApplyEditsUseCase) Execute(ctx context.Context, input ApplyEditsInput) (*ApplyEditsOutput, error) {
	log := logging.FromContext(ctx)
	if input.Registry == nil {
		return nil, fmt.Errorf("registry is nil")
	}

	descriptors := indexDescriptors(input.Categories)
	disabled := make(map[string]bool, len(input.Disable))
	for _, name := range input.Disable {
		disabled[name] = true
	}

	assignments := make([]Assignment, 0, len(input.Assignments))
	for _, raw := range input.Assignments {
		a, err := ParseAssignment(raw)
		if err != nil {
			return nil, err
		}
		if _, ok := input.Registry.Get(a.Name); !ok {
			return nil, fmt.Errorf("%w: %s", entity.ErrUnknownEntry, a.Name)
		}
		if d, ok := descriptors[a.Name]; ok {
			if err := d.Validate(a.Value); err != nil {
				return nil, err
			}
			if d.Type == entity.WidgetCheck {
				a.Value = entity.JoinCheckValue(d.Values, entity.SplitCheckValue(a.Value), d.CheckSeparator())
			}
		} else if err := entity.CheckValue(a.Name, a.Value); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	for _, name := range append(append([]string(nil), input.Enable...), input.Disable...) {
		if _, ok := input.Registry.Get(name); !ok {
			return nil, fmt.Errorf("%w: %s", entity.ErrUnknownEntry, name)
		}
	}
	for _, name := range input.Enable {
		if disabled[name] {
			return nil, fmt.Errorf("%w: %s is both enabled and disabled", entity.ErrInvalidValue, name)
		}
	}

	for _, a := range assignments {
		_ = input.Registry.SetValue(a.Name, a.Value)
		if e, _ := input.Registry.Get(a.Name); !e.Active && !disabled[a.Name] {
			_ = input.Registry.SetActive(a.Name, true)
		}
		log.Debug().Str("name", a.Name).Str("value", a.Value).Msg("value edited")
	}
	for _, name := range input.Enable {
		_ = input.Registry.SetActive(name, true)
	}
	for _, name := range input.Disable {
		_ = input.Registry.SetActive(name, false)
	}

	return &ApplyEditsOutput{Changes: service.ComputeChanges(input.Registry.Entries())}, nil
}

func indexDescriptors(cats []entity.CategoryDescriptor) map[string]entity.ItemDescriptor {
	idx := make(map[string]entity.ItemDescriptor)
	for _, c := range cats {
		for _, it := range c.Items {
			idx[it.ID] = it
		}
	}
	return idx
}
