package driven

import (
	"context"

	"github.com/custodia-labs/reportctl/internal/core/domain"
)

// StoreHistory persists the local ledger of stores made from this machine.
type StoreHistory interface {
	// Record saves a completed store.
	Record(ctx context.Context, rec domain.StoreRecord) error

	// List returns the most recent records first. A limit <= 0 returns all.
	List(ctx context.Context, limit int) ([]domain.StoreRecord, error)

	// ListByRun returns records for one run name, most recent first.
	ListByRun(ctx context.Context, runName string) ([]domain.StoreRecord, error)
}
