package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/reportctl/internal/core/domain"
	"github.com/custodia-labs/reportctl/internal/core/ports/driven"
)

// historyStore implements driven.StoreHistory.
type historyStore struct {
	store *Store
}

var _ driven.StoreHistory = (*historyStore)(nil)

const historyColumns = `id, server_url, run_name, run_id, tag, file_count, uploaded_count, zip_size, stored_at`

// Record saves a completed store. A missing ID or time is filled in.
func (h *historyStore) Record(ctx context.Context, rec domain.StoreRecord) error {
	if rec.RunName == "" {
		return fmt.Errorf("%w: store record without run name", domain.ErrInvalidInput)
	}
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.StoredAt.IsZero() {
		rec.StoredAt = time.Now()
	}

	_, err := h.store.db.ExecContext(ctx, `
		INSERT INTO store_history (`+historyColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.ServerURL, rec.RunName, rec.RunID, nullString(rec.Tag),
		rec.FileCount, rec.UploadedCount, rec.ZipSize, rec.StoredAt.UTC())
	if err != nil {
		return fmt.Errorf("inserting store record: %w", err)
	}
	return nil
}

// List returns the most recent records first. A limit <= 0 returns all.
func (h *historyStore) List(ctx context.Context, limit int) ([]domain.StoreRecord, error) {
	query := `SELECT ` + historyColumns + ` FROM store_history ORDER BY stored_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := h.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying store history: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// ListByRun returns records for one run name, most recent first.
func (h *historyStore) ListByRun(ctx context.Context, runName string) ([]domain.StoreRecord, error) {
	rows, err := h.store.db.QueryContext(ctx, `
		SELECT `+historyColumns+` FROM store_history
		WHERE run_name = ?
		ORDER BY stored_at DESC, id
	`, runName)
	if err != nil {
		return nil, fmt.Errorf("querying store history: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]domain.StoreRecord, error) {
	var records []domain.StoreRecord
	for rows.Next() {
		var rec domain.StoreRecord
		var tag sql.NullString
		if err := rows.Scan(&rec.ID, &rec.ServerURL, &rec.RunName, &rec.RunID, &tag,
			&rec.FileCount, &rec.UploadedCount, &rec.ZipSize, &rec.StoredAt); err != nil {
			return nil, fmt.Errorf("scanning store record: %w", err)
		}
		rec.Tag = tag.String
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating store history: %w", err)
	}
	return records, nil
}
