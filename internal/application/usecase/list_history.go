package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/tlpui/internal/domain/entity"
	"github.com/bnema/tlpui/internal/domain/repository"
)

// ListHistoryUseCase lists past saves.
type ListHistoryUseCase struct {
	repo repository.ChangeHistoryRepository
}

// NewListHistoryUseCase creates a new ListHistoryUseCase.
func NewListHistoryUseCase(repo repository.ChangeHistoryRepository) *ListHistoryUseCase {
	return &ListHistoryUseCase{repo: repo}
}

// ListHistoryInput selects records. An empty Name lists every setting.
type ListHistoryInput struct {
	Name  string
	Limit int
}

// ListHistoryOutput contains records, newest first.
type ListHistoryOutput struct {
	Records []entity.ChangeRecord
}

// Execute queries the repository.
func (uc *ListHistoryUseCase) Execute(ctx context.Context, input ListHistoryInput) (*ListHistoryOutput, error) {
	var (
		records []entity.ChangeRecord
		err     error
	)
	if input.Name != "" {
		records, err = uc.repo.ForEntry(ctx, input.Name, input.Limit)
	} else {
		records, err = uc.repo.Recent(ctx, input.Limit)
	}
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return &ListHistoryOutput{Records: records}, nil
}
