// Package usecase implements the application operations shared by the GUI and the CLI.
package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/tlpui/internal/application/port"
	"github.com/bnema/tlpui/internal/domain/entity"
	"github.com/bnema/tlpui/internal/logging"
)

// LoadConfigUseCase loads the category document and a TLP config file and
// assembles the editable views.
type LoadConfigUseCase struct {
	store      port.ConfigStore
	categories port.CategorySource
	views      *BuildCategoryViewsUseCase
}

// NewLoadConfigUseCase creates a new LoadConfigUseCase.
func NewLoadConfigUseCase(store port.ConfigStore, categories port.CategorySource) *LoadConfigUseCase {
	return &LoadConfigUseCase{
		store:      store,
		categories: categories,
		views:      NewBuildCategoryViewsUseCase(),
	}
}

// LoadConfigInput names the config file to load.
type LoadConfigInput struct {
	Path string
}

// LoadConfigOutput is everything a view needs to render the file.
type LoadConfigOutput struct {
	Path       string
	Registry   *entity.Registry
	Categories []entity.CategoryDescriptor
	Views      []entity.CategoryView
	Warnings   []entity.Warning
	Writable   bool
}

// Execute loads categories first: a broken category document is fatal and
// wraps entity.ErrFileFormat. Config load errors are returned as-is for the
// caller to surface together with the path.
func (uc *LoadConfigUseCase) Execute(ctx context.Context, input LoadConfigInput) (*LoadConfigOutput, error) {
	ctx = logging.WithConfigPath(ctx, input.Path)
	log := logging.FromContext(ctx)

	if input.Path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	cats, err := uc.categories.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories from %s: %w", uc.categories.Origin(), err)
	}

	entries, err := uc.store.Load(ctx, input.Path)
	if err != nil {
		return nil, err
	}
	registry := entity.NewRegistry(entries)

	built := uc.views.Execute(ctx, BuildCategoryViewsInput{Categories: cats, Registry: registry})

	log.Info().
		Int("entries", registry.Len()).
		Int("categories", len(built.Views)).
		Int("warnings", len(built.Warnings)).
		Msg("config loaded")

	return &LoadConfigOutput{
		Path:       input.Path,
		Registry:   registry,
		Categories: cats,
		Views:      built.Views,
		Warnings:   built.Warnings,
		Writable:   uc.store.Writable(input.Path),
	}, nil
}
