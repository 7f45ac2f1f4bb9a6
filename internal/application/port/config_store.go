package port

import (
	"context"

	"github.com/bnema/tlpui/internal/domain/entity"
)

// ConfigStore loads and patches the TLP key/value config file.
type ConfigStore interface {
	// Load reads every setting of the file, active or commented out.
	Load(ctx context.Context, path string) ([]*entity.ConfigEntry, error)

	// Save rewrites only the lines named by changes. Lines not named are kept
	// byte for byte. An empty change set must not touch the file.
	Save(ctx context.Context, path string, changes []entity.Change) error

	// Writable reports whether the current user may write the file.
	Writable(path string) bool
}
