package port

import (
	"context"

	"github.com/bnema/tlpui/internal/domain/entity"
)

// StatProvider runs tlp-stat and returns its sectioned output.
type StatProvider interface {
	Fetch(ctx context.Context) (*entity.StatReport, error)
}
