package usecase

import (
	"context"
	"strings"

	"github.com/bnema/tlpui/internal/application/port"
	"github.com/bnema/tlpui/internal/domain/entity"
)

// GetStatUseCase fetches the tlp-stat report.
type GetStatUseCase struct {
	provider port.StatProvider
}

// NewGetStatUseCase creates a new GetStatUseCase.
func NewGetStatUseCase(provider port.StatProvider) *GetStatUseCase {
	return &GetStatUseCase{provider: provider}
}

// GetStatInput optionally filters sections by title.
type GetStatInput struct {
	Section string
}

// GetStatOutput contains the report.
type GetStatOutput struct {
	Report *entity.StatReport
}

// Execute runs the provider. With a Section filter only sections whose title
// contains it (case-insensitive) are kept.
func (uc *GetStatUseCase) Execute(ctx context.Context, input GetStatInput) (*GetStatOutput, error) {
	report, err := uc.provider.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if input.Section != "" {
		filtered := *report
		filtered.Sections = nil
		for _, s := range report.Sections {
			if containsFold(s.Title, input.Section) {
				filtered.Sections = append(filtered.Sections, s)
			}
		}
		report = &filtered
	}
	return &GetStatOutput{Report: report}, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
