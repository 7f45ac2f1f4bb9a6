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
)

func TestLoadConfigUseCase_Execute(t *testing.T) {
	store := mocks.NewMockConfigStore(t)
	cats := mocks.NewMockCategorySource(t)

	cats.EXPECT().Load(mock.Anything).Return(sampleCategories(), nil)
	store.EXPECT().Load(mock.Anything, "/etc/tlp.conf").Return(sampleEntries(), nil)
	store.EXPECT().Writable("/etc/tlp.conf").Return(false)

	out, err := usecase.NewLoadConfigUseCase(store, cats).Execute(testContext(), usecase.LoadConfigInput{
		Path: "/etc/tlp.conf",
	})
	require.NoError(t, err)

	assert.Equal(t, "/etc/tlp.conf", out.Path)
	assert.Equal(t, 5, out.Registry.Len())
	assert.Len(t, out.Views, 3)
	assert.Empty(t, out.Warnings)
	assert.False(t, out.Writable)
	assert.Len(t, out.Categories, 3)
}

func TestLoadConfigUseCase_CategoryFailureIsFatal(t *testing.T) {
	store := mocks.NewMockConfigStore(t)
	cats := mocks.NewMockCategorySource(t)

	cats.EXPECT().Load(mock.Anything).Return(nil, &entity.FileFormatError{Path: "/tmp/c.json", Reason: "no categories"})
	cats.EXPECT().Origin().Return("/tmp/c.json")

	_, err := usecase.NewLoadConfigUseCase(store, cats).Execute(testContext(), usecase.LoadConfigInput{
		Path: "/etc/tlp.conf",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrFileFormat)
	assert.Contains(t, err.Error(), "/tmp/c.json")
}

func TestLoadConfigUseCase_ConfigLoadError(t *testing.T) {
	store := mocks.NewMockConfigStore(t)
	cats := mocks.NewMockCategorySource(t)
	loadErr := errors.New("permission denied")

	cats.EXPECT().Load(mock.Anything).Return(sampleCategories(), nil)
	store.EXPECT().Load(mock.Anything, "/etc/tlp.conf").Return(nil, loadErr)

	_, err := usecase.NewLoadConfigUseCase(store, cats).Execute(testContext(), usecase.LoadConfigInput{
		Path: "/etc/tlp.conf",
	})
	assert.ErrorIs(t, err, loadErr)
}

func TestLoadConfigUseCase_EmptyPath(t *testing.T) {
	store := mocks.NewMockConfigStore(t)
	cats := mocks.NewMockCategorySource(t)

	_, err := usecase.NewLoadConfigUseCase(store, cats).Execute(testContext(), usecase.LoadConfigInput{})
	assert.Error(t, err)
}
