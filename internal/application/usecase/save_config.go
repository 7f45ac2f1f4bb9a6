package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bnema/tlpui/internal/application/port"
	"github.com/bnema/tlpui/internal/domain/entity"
	"github.com/bnema/tlpui/internal/domain/repository"
	"github.com/bnema/tlpui/internal/domain/service"
	"github.com/bnema/tlpui/internal/logging"
)

// SaveConfigUseCase writes pending edits and reloads the file.
type SaveConfigUseCase struct {
	store   port.ConfigStore
	history repository.ChangeHistoryRepository
	newID   func() string
	now     func() time.Time
}

// NewSaveConfigUseCase creates a new SaveConfigUseCase. history may be nil.
func NewSaveConfigUseCase(store port.ConfigStore, history repository.ChangeHistoryRepository) *SaveConfigUseCase {
	return &SaveConfigUseCase{
		store:   store,
		history: history,
		newID:   uuid.NewString,
		now:     time.Now,
	}
}

// SaveConfigInput holds the edited registry and where to write it.
type SaveConfigInput struct {
	Path     string
	Registry *entity.Registry
}

// SaveConfigOutput reports what was written.
type SaveConfigOutput struct {
	// NoChanges is true when nothing differed; no write happened.
	NoChanges bool
	Changes   []entity.Change
	Summary   string
	// Registry is reloaded from disk after a write, nil otherwise.
	Registry *entity.Registry
	BatchID  string
}

// Execute diffs the registry, writes the changed lines and reloads the file.
// Failing to record history is logged and does not fail the save.
func (uc *SaveConfigUseCase) Execute(ctx context.Context, input SaveConfigInput) (*SaveConfigOutput, error) {
	ctx = logging.WithConfigPath(ctx, input.Path)
	log := logging.FromContext(ctx)

	if input.Registry == nil {
		return nil, fmt.Errorf("registry is nil")
	}

	changes := service.ComputeChanges(input.Registry.Entries())
	if len(changes) == 0 {
		log.Debug().Msg("save requested without changes")
		return &SaveConfigOutput{NoChanges: true, Summary: service.FormatChanges(nil)}, nil
	}

	if err := uc.store.Save(ctx, input.Path, changes); err != nil {
		return nil, fmt.Errorf("save %s: %w", input.Path, err)
	}

	batch := entity.SaveBatch{
		ID:         uc.newID(),
		ConfigPath: input.Path,
		Changes:    changes,
		SavedAt:    uc.now(),
	}
	if uc.history != nil {
		if err := uc.history.Record(ctx, batch); err != nil {
			log.Warn().Err(err).Str("batch_id", batch.ID).Msg("failed to record save history")
		}
	}

	entries, err := uc.store.Load(ctx, input.Path)
	if err != nil {
		return nil, fmt.Errorf("reload %s after save: %w", input.Path, err)
	}

	log.Info().Int("changes", len(changes)).Str("batch_id", batch.ID).Msg("config saved")

	return &SaveConfigOutput{
		Changes:  changes,
		Summary:  service.FormatChanges(changes),
		Registry: entity.NewRegistry(entries),
		BatchID:  batch.ID,
	}, nil
}
