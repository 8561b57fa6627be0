package driving

import (
	"context"

	"github.com/custodia-labs/reportctl/internal/core/domain"
)

// ResultsService runs multi-page result queries.
type ResultsService interface {
	// AllRunResults pages through every result of the given runs.
	AllRunResults(
		ctx context.Context, runIDs []int64, filter *domain.ReportFilter, cmp *domain.CompareData,
	) ([]domain.ReportData, error)
}

// SuppressImportResult summarises a suppress file import.
type SuppressImportResult struct {
	// Applied is the number of entries whose review status was changed.
	Applied int
	// Failures maps bug hashes to the error returned for them.
	Failures map[string]error
}

// SuppressService imports source code suppressions as review statuses.
type SuppressService interface {
	// Import applies every entry of a suppress file.
	Import(ctx context.Context, entries []domain.SuppressEntry) (*SuppressImportResult, error)
}

// StoreRequest describes one upload of a report directory.
type StoreRequest struct {
	ReportDir        string
	RunName          string
	Tag              string
	Description      string
	Force            bool
	TrimPathPrefixes []string
	// StatisticsDir optionally holds analyzer failure output to upload.
	StatisticsDir string
}

// StoreResult is the outcome of a store.
type StoreResult struct {
	RunID          int64
	FileCount      int
	UploadedCount  int
	ZipSize        int64
	StatisticsSent bool
}

// StoreService uploads analysis results to the server.
type StoreService interface {
	// Store packs and uploads a report directory.
	Store(ctx context.Context, req StoreRequest) (*StoreResult, error)

	// History lists previous stores made from this machine.
	History(ctx context.Context, limit int) ([]domain.StoreRecord, error)
}
