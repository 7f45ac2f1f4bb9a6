package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bnema/tlpui/internal/domain/entity"
	"github.com/bnema/tlpui/internal/domain/repository"
	"github.com/bnema/tlpui/internal/logging"
)

const defaultHistoryLimit = 50

const selectChangeColumns = `SELECT id, batch_id, config_path, name, old_value, new_value,
	old_active, new_active, saved_at FROM config_changes`

type changeHistoryRepo struct {
	db *sql.DB
}

// NewChangeHistoryRepository creates a SQLite-backed change history.
func NewChangeHistoryRepository(db *sql.DB) repository.ChangeHistoryRepository {
	return &changeHistoryRepo{db: db}
}

func (r *changeHistoryRepo) Record(ctx context.Context, batch entity.SaveBatch) error {
	log := logging.FromContext(ctx)
	if len(batch.Changes) == 0 {
		return nil
	}

	savedAt := batch.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin history tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO config_changes
		(batch_id, config_path, name, old_value, new_value, old_active, new_active, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare history insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, c := range batch.Changes {
		if _, err := stmt.ExecContext(ctx,
			batch.ID, batch.ConfigPath, c.Name,
			c.OriginalValue, c.NewValue,
			boolToInt(c.OriginalActive), boolToInt(c.NewActive),
			savedAt.UnixMilli(),
		); err != nil {
			return fmt.Errorf("insert history for %s: %w", c.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit history: %w", err)
	}

	log.Debug().Str("batch_id", batch.ID).Int("changes", len(batch.Changes)).Msg("save recorded in history")
	return nil
}

func (r *changeHistoryRepo) Recent(ctx context.Context, limit int) ([]entity.ChangeRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		selectChangeColumns+` ORDER BY saved_at DESC, id DESC LIMIT ?`, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	return scanChangeRecords(rows)
}

func (r *changeHistoryRepo) ForEntry(ctx context.Context, name string, limit int) ([]entity.ChangeRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		selectChangeColumns+` WHERE name = ? ORDER BY saved_at DESC, id DESC LIMIT ?`, name, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("query history for %s: %w", name, err)
	}
	return scanChangeRecords(rows)
}

func scanChangeRecords(rows *sql.Rows) ([]entity.ChangeRecord, error) {
	defer func() { _ = rows.Close() }()

	var records []entity.ChangeRecord
	for rows.Next() {
		var (
			rec                  entity.ChangeRecord
			oldActive, newActive int64
			savedAt              int64
		)
		if err := rows.Scan(&rec.ID, &rec.BatchID, &rec.ConfigPath, &rec.Name,
			&rec.OldValue, &rec.NewValue, &oldActive, &newActive, &savedAt); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		rec.OldActive = oldActive != 0
		rec.NewActive = newActive != 0
		rec.SavedAt = time.UnixMilli(savedAt)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return records, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultHistoryLimit
	}
	return limit
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
