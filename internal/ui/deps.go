// Package ui provides the GTK4 shell of the TLP editor.
package ui

import (
	"context"

	"github.com/bnema/tlpui/internal/application/port"
	"github.com/bnema/tlpui/internal/application/usecase"
	"github.com/bnema/tlpui/internal/infrastructure/config"
)

// Dependencies holds all injected dependencies for the UI layer.
type Dependencies struct {
	Ctx    context.Context
	Config *config.Config
	// ConfigManager persists the window size on close. Optional.
	ConfigManager *config.Manager

	// Path is the TLP config file to edit.
	Path string

	LoadUC *usecase.LoadConfigUseCase
	SaveUC *usecase.SaveConfigUseCase
	StatUC *usecase.GetStatUseCase

	// Watcher reports external edits of Path. Optional.
	Watcher port.FileWatcher
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	if d.Ctx == nil {
		return ErrMissingDependency("Ctx")
	}
	if d.Config == nil {
		return ErrMissingDependency("Config")
	}
	if d.Path == "" {
		return ErrMissingDependency("Path")
	}
	if d.LoadUC == nil {
		return ErrMissingDependency("LoadUC")
	}
	if d.SaveUC == nil {
		return ErrMissingDependency("SaveUC")
	}
	return nil
}

// DependencyError indicates a missing required dependency.
type DependencyError struct {
	Name string
}

func (e DependencyError) Error() string {
	return "missing required dependency: " + e.Name
}

// ErrMissingDependency creates a new DependencyError.
func ErrMissingDependency(name string) error {
	return DependencyError{Name: name}
}
