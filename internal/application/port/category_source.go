package port

import (
	"context"

	"github.com/bnema/tlpui/internal/domain/entity"
)

// CategorySource provides the category definitions that drive the editor layout.
type CategorySource interface {
	// Load returns the categories in document order. A missing or malformed
	// document yields an error matching entity.ErrFileFormat.
	Load(ctx context.Context) ([]entity.CategoryDescriptor, error)

	// Origin describes where the definitions come from (a path or "embedded").
	Origin() string
}
