package sqlite_test

import (
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tlpui/internal/domain/entity"
	"github.com/bnema/tlpui/internal/infrastructure/persistence/sqlite"
)

func TestLazyDB_NotInitializedUntilFirstAccess(t *testing.T) {
	ctx, lazy := openTestDB(t)
	assert.False(t, lazy.IsInitialized())

	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	require.NotNil(t, db)
	assert.True(t, lazy.IsInitialized())

	again, err := lazy.DB(ctx)
	require.NoError(t, err)
	assert.Same(t, db, again)
}

func TestLazyDB_ConcurrentAccess(t *testing.T) {
	ctx, lazy := openTestDB(t)

	const goroutines = 8
	var wg sync.WaitGroup
	dbs := make([]*sql.DB, goroutines)
	errs := make([]error, goroutines)

	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dbs[i], errs[i] = lazy.DB(ctx)
		}()
	}
	wg.Wait()

	for i := range goroutines {
		require.NoError(t, errs[i])
		assert.Same(t, dbs[0], dbs[i])
	}
}

func TestLazyDB_CloseBeforeInit(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "history.sqlite"))
	assert.NoError(t, lazy.Close())
	assert.Equal(t, filepath.Base(lazy.Path()), "history.sqlite")
}

func TestLazyChangeHistoryRepository_OpensOnRecord(t *testing.T) {
	ctx, lazy := openTestDB(t)
	repo := sqlite.NewLazyChangeHistoryRepository(lazy)
	assert.False(t, lazy.IsInitialized())

	require.NoError(t, repo.Record(ctx, entity.SaveBatch{
		ID:         "b",
		ConfigPath: "/etc/tlp.conf",
		Changes:    []entity.Change{{Name: "TLP_ENABLE", NewValue: "1", NewActive: true}},
	}))

	assert.True(t, lazy.IsInitialized())
	records, err := repo.Recent(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestLazyDB_EmptyPathFails(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB("")

	_, err := lazy.DB(ctx)
	require.Error(t, err)
	assert.False(t, lazy.IsInitialized())
}
