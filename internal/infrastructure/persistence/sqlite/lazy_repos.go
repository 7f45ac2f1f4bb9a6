package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/tlpui/internal/application/port"
	"github.com/bnema/tlpui/internal/domain/entity"
	"github.com/bnema/tlpui/internal/domain/repository"
)

// LazyChangeHistoryRepository opens the database on first use.
type LazyChangeHistoryRepository struct {
	provider port.DatabaseProvider
	repo     repository.ChangeHistoryRepository
	once     sync.Once
	initErr  error
}

// NewLazyChangeHistoryRepository creates a lazy-loading change history.
func NewLazyChangeHistoryRepository(provider port.DatabaseProvider) repository.ChangeHistoryRepository {
	return &LazyChangeHistoryRepository{provider: provider}
}

func (r *LazyChangeHistoryRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewChangeHistoryRepository(db)
	})
	return r.initErr
}

func (r *LazyChangeHistoryRepository) Record(ctx context.Context, batch entity.SaveBatch) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Record(ctx, batch)
}

func (r *LazyChangeHistoryRepository) Recent(ctx context.Context, limit int) ([]entity.ChangeRecord, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Recent(ctx, limit)
}

func (r *LazyChangeHistoryRepository) ForEntry(ctx context.Context, name string, limit int) ([]entity.ChangeRecord, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.ForEntry(ctx, name, limit)
}
