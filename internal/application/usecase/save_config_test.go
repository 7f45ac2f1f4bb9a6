package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tlpui/internal/application/port/mocks"
	"github.com/bnema/tlpui/internal/application/usecase"
	"github.com/bnema/tlpui/internal/domain/entity"
	repomocks "github.com/bnema/tlpui/internal/domain/repository/mocks"
)

func TestSaveConfigUseCase_NoChanges(t *testing.T) {
	store := mocks.NewMockConfigStore(t)
	history := repomocks.NewMockChangeHistoryRepository(t)

	out, err := usecase.NewSaveConfigUseCase(store, history).Execute(testContext(), usecase.SaveConfigInput{
		Path:     "/etc/tlp.conf",
		Registry: entity.NewRegistry(sampleEntries()),
	})
	require.NoError(t, err)
	assert.True(t, out.NoChanges)
	assert.Equal(t, "No changes", out.Summary)
	assert.Nil(t, out.Registry)
}

func TestSaveConfigUseCase_WritesRecordsAndReloads(t *testing.T) {
	store := mocks.NewMockConfigStore(t)
	history := repomocks.NewMockChangeHistoryRepository(t)

	registry := entity.NewRegistry(sampleEntries())
	require.NoError(t, registry.SetValue("CPU_SCALING_GOVERNOR_ON_AC", "performance"))
	require.NoError(t, registry.SetActive("TLP_DEFAULT_MODE", true))

	store.EXPECT().Save(mock.Anything, "/etc/tlp.conf", mock.MatchedBy(func(changes []entity.Change) bool {
		return len(changes) == 2 &&
			changes[0].Name == "TLP_DEFAULT_MODE" &&
			changes[1].Name == "CPU_SCALING_GOVERNOR_ON_AC" &&
			changes[1].NewValue == "performance"
	})).Return(nil)
	history.EXPECT().Record(mock.Anything, mock.MatchedBy(func(b entity.SaveBatch) bool {
		return b.ID != "" && b.ConfigPath == "/etc/tlp.conf" && len(b.Changes) == 2 && !b.SavedAt.IsZero()
	})).Return(nil)

	reloaded := sampleEntries()
	reloaded[2] = entity.NewConfigEntry("CPU_SCALING_GOVERNOR_ON_AC", "performance", true, false, 9)
	store.EXPECT().Load(mock.Anything, "/etc/tlp.conf").Return(reloaded, nil)

	out, err := usecase.NewSaveConfigUseCase(store, history).Execute(testContext(), usecase.SaveConfigInput{
		Path:     "/etc/tlp.conf",
		Registry: registry,
	})
	require.NoError(t, err)

	assert.False(t, out.NoChanges)
	assert.NotEmpty(t, out.BatchID)
	assert.Equal(t,
		"Changed values:\nTLP_DEFAULT_MODE -> AC (enabled)\nCPU_SCALING_GOVERNOR_ON_AC -> performance",
		out.Summary)

	e, ok := out.Registry.Get("CPU_SCALING_GOVERNOR_ON_AC")
	require.True(t, ok)
	assert.Equal(t, "performance", e.OriginalValue)
	assert.False(t, e.Changed())
}

func TestSaveConfigUseCase_SaveError(t *testing.T) {
	store := mocks.NewMockConfigStore(t)
	saveErr := errors.New("read-only file system")

	registry := entity.NewRegistry(sampleEntries())
	require.NoError(t, registry.SetValue("TLP_ENABLE", "0"))
	store.EXPECT().Save(mock.Anything, "/etc/tlp.conf", mock.Anything).Return(saveErr)

	_, err := usecase.NewSaveConfigUseCase(store, nil).Execute(testContext(), usecase.SaveConfigInput{
		Path:     "/etc/tlp.conf",
		Registry: registry,
	})
	assert.ErrorIs(t, err, saveErr)
}

func TestSaveConfigUseCase_HistoryFailureDoesNotFailSave(t *testing.T) {
	store := mocks.NewMockConfigStore(t)
	history := repomocks.NewMockChangeHistoryRepository(t)

	registry := entity.NewRegistry(sampleEntries())
	require.NoError(t, registry.SetValue("TLP_ENABLE", "0"))

	store.EXPECT().Save(mock.Anything, "/etc/tlp.conf", mock.Anything).Return(nil)
	history.EXPECT().Record(mock.Anything, mock.Anything).Return(errors.New("database is locked"))
	store.EXPECT().Load(mock.Anything, "/etc/tlp.conf").Return(sampleEntries(), nil)

	out, err := usecase.NewSaveConfigUseCase(store, history).Execute(testContext(), usecase.SaveConfigInput{
		Path:     "/etc/tlp.conf",
		Registry: registry,
	})
	require.NoError(t, err)
	assert.Equal(t, "Changed values:\nTLP_ENABLE -> 0", out.Summary)
}
