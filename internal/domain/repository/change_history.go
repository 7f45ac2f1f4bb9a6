// Package repository declares persistence interfaces for domain data.
package repository

import (
	"context"

	"github.com/bnema/tlpui/internal/domain/entity"
)

// ChangeHistoryRepository persists the changes applied by each save.
type ChangeHistoryRepository interface {
	// Record stores every change of the batch under the batch id.
	Record(ctx context.Context, batch entity.SaveBatch) error

	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]entity.ChangeRecord, error)

	// ForEntry returns the history of a single setting, newest first.
	ForEntry(ctx context.Context, name string, limit int) ([]entity.ChangeRecord, error)
}
