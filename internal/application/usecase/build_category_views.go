package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/tlpui/internal/domain/entity"
	"github.com/bnema/tlpui/internal/logging"
)

// BuildCategoryViewsUseCase matches category descriptors to loaded entries.
type BuildCategoryViewsUseCase struct{}

// NewBuildCategoryViewsUseCase creates a new BuildCategoryViewsUseCase.
func NewBuildCategoryViewsUseCase() *BuildCategoryViewsUseCase {
	return &BuildCategoryViewsUseCase{}
}

// BuildCategoryViewsInput contains the descriptors and the registry to match.
type BuildCategoryViewsInput struct {
	Categories []entity.CategoryDescriptor
	Registry   *entity.Registry
}

// BuildCategoryViewsOutput contains one view per category, in document order.
type BuildCategoryViewsOutput struct {
	Views    []entity.CategoryView
	Warnings []entity.Warning
}

// Execute builds the views. Items whose id has no entry, whose type has no
// control, or whose values do not fit the type are left out and reported as
// warnings. An id gets one row only: repeats after its first usable item are
// reported as duplicates. Categories are kept even when empty.
func (uc *BuildCategoryViewsUseCase) Execute(ctx context.Context, input BuildCategoryViewsInput) *BuildCategoryViewsOutput {
	log := logging.FromContext(ctx)
	out := &BuildCategoryViewsOutput{
		Views: make([]entity.CategoryView, 0, len(input.Categories)),
	}
	placed := make(map[string]string)

	for _, cat := range input.Categories {
		view := entity.CategoryView{Label: cat.Label}
		for _, item := range cat.Items {
			entry, ok := lookup(input.Registry, item.ID)
			if !ok {
				out.Warnings = append(out.Warnings, entity.Warning{
					Kind:     entity.WarningUnmatched,
					Category: cat.Label,
					ItemID:   item.ID,
					Message:  "no such setting in the config file",
				})
				log.Debug().Str("category", cat.Label).Str("item", item.ID).Msg("skipping unmatched item")
				continue
			}
			if err := item.ValidateDescriptor(); err != nil {
				kind := entity.WarningInvalidDescriptor
				if errors.Is(err, entity.ErrUnsupportedType) {
					kind = entity.WarningUnsupportedType
				}
				out.Warnings = append(out.Warnings, entity.Warning{
					Kind:     kind,
					Category: cat.Label,
					ItemID:   item.ID,
					Message:  err.Error(),
				})
				log.Warn().Err(err).Str("category", cat.Label).Msg("skipping item")
				continue
			}
			if first, dup := placed[item.ID]; dup {
				out.Warnings = append(out.Warnings, entity.Warning{
					Kind:     entity.WarningDuplicate,
					Category: cat.Label,
					ItemID:   item.ID,
					Message:  fmt.Sprintf("already listed under %s", first),
				})
				log.Warn().Str("category", cat.Label).Str("item", item.ID).Msg("skipping duplicate item")
				continue
			}
			placed[item.ID] = cat.Label
			view.Items = append(view.Items, entity.ItemView{Descriptor: item, Entry: entry})
		}
		out.Views = append(out.Views, view)
	}
	return out
}

func lookup(r *entity.Registry, name string) (*entity.ConfigEntry, bool) {
	if r == nil {
		return nil, false
	}
	return r.Get(name)
}
