package driving

import (
	"context"

	"github.com/custodia-labs/reportctl/internal/core/domain"
)

// RunQueries lists and manages analysis runs.
type RunQueries interface {
	GetRunData(
		ctx context.Context, filter *domain.RunFilter, limit, offset int64, sortMode *domain.RunSortMode,
	) ([]domain.RunData, error)
	GetRunHistory(
		ctx context.Context, runIDs []int64, limit, offset int64, filter *domain.RunHistoryFilter,
	) ([]domain.RunHistoryData, error)
	UpdateRunData(ctx context.Context, runID int64, newRunName string) (bool, error)
	RemoveRun(ctx context.Context, runID int64, filter *domain.RunFilter) (bool, error)
	RemoveRunResults(ctx context.Context, runIDs []int64) (bool, error)
	RemoveRunReports(
		ctx context.Context, runIDs []int64, filter *domain.ReportFilter, cmp *domain.CompareData,
	) (bool, error)
}

// ReportQueries retrieves reports, their bug paths and source content.
type ReportQueries interface {
	GetRunResults(
		ctx context.Context, runIDs []int64, limit, offset int64, sortModes []domain.SortMode,
		filter *domain.ReportFilter, cmp *domain.CompareData, getDetails bool,
	) ([]domain.ReportData, error)
	GetRunResultCount(
		ctx context.Context, runIDs []int64, filter *domain.ReportFilter, cmp *domain.CompareData,
	) (int64, error)
	GetRunResultTypes(
		ctx context.Context, runID int64, filter *domain.ReportFilter,
	) ([]domain.ReportDataTypeCount, error)
	GetReportDetails(ctx context.Context, reportID int64) (*domain.ReportDetails, error)
	GetSourceFileData(
		ctx context.Context, fileID int64, fileContent bool, encoding domain.Encoding,
	) (*domain.SourceFileData, error)
	GetLinesInSourceFileContents(
		ctx context.Context, requested []domain.LinesInFilesRequested, encoding domain.Encoding,
	) (map[int64]map[int64]string, error)
	GetSuppressedBugs(ctx context.Context, runID int64) ([]domain.SuppressBugData, error)
}

// DiffQueries compares runs.
type DiffQueries interface {
	GetDiffResultsHash(
		ctx context.Context, runIDs []int64, reportHashes []string, diffType domain.DiffType,
		skipDetectionStatuses []domain.DetectionStatus,
	) ([]string, error)
	GetNewResults(
		ctx context.Context, baseRunID, newRunID, limit, offset int64,
		sortModes []domain.SortMode, filter *domain.ReportFilter,
	) ([]domain.ReportData, error)
	GetUnresolvedResults(
		ctx context.Context, baseRunID, newRunID, limit, offset int64,
		sortModes []domain.SortMode, filter *domain.ReportFilter,
	) ([]domain.ReportData, error)
	GetResolvedResults(
		ctx context.Context, baseRunID, newRunID, limit, offset int64,
		sortModes []domain.SortMode, filter *domain.ReportFilter,
	) ([]domain.ReportData, error)
}

// ReviewService changes the review status of reports.
type ReviewService interface {
	ChangeReviewStatus(
		ctx context.Context, reportID int64, status domain.ReviewStatus, message string,
	) (bool, error)
	ChangeReviewStatusByHash(
		ctx context.Context, bugHash string, status domain.ReviewStatus, message string,
	) (bool, error)
}

// CountQueries returns aggregate counts grouped by one attribute.
type CountQueries interface {
	GetSeverityCounts(
		ctx context.Context, runIDs []int64, filter *domain.ReportFilter, cmp *domain.CompareData,
	) (map[domain.Severity]int64, error)
	GetReviewStatusCounts(
		ctx context.Context, runIDs []int64, filter *domain.ReportFilter, cmp *domain.CompareData,
	) (map[domain.ReviewStatus]int64, error)
	GetDetectionStatusCounts(
		ctx context.Context, runIDs []int64, filter *domain.ReportFilter, cmp *domain.CompareData,
	) (map[domain.DetectionStatus]int64, error)
	GetCheckerMsgCounts(
		ctx context.Context, runIDs []int64, filter *domain.ReportFilter, cmp *domain.CompareData,
		limit, offset int64,
	) (map[string]int64, error)
	GetFileCounts(
		ctx context.Context, runIDs []int64, filter *domain.ReportFilter, cmp *domain.CompareData,
		limit, offset int64,
	) (map[string]int64, error)
	GetCheckerCounts(
		ctx context.Context, runIDs []int64, filter *domain.ReportFilter, cmp *domain.CompareData,
		limit, offset int64,
	) ([]domain.CheckerCount, error)
}

// ComponentService manages source components.
type ComponentService interface {
	AddSourceComponent(ctx context.Context, name, value, description string) (bool, error)
	GetSourceComponents(ctx context.Context, filter []string) ([]domain.SourceComponentData, error)
	RemoveSourceComponent(ctx context.Context, name string) (bool, error)
}

// StorageAPI uploads analysis results.
type StorageAPI interface {
	GetMissingContentHashes(ctx context.Context, fileHashes []string) ([]string, error)
	MassStoreRun(
		ctx context.Context, name, tag, version, zipFile string, force bool,
		trimPathPrefixes []string, description string,
	) (int64, error)
	AllowsStoringAnalysisStatistics(ctx context.Context) (bool, error)
	GetAnalysisStatisticsLimits(ctx context.Context) (map[domain.StoreLimitKind]int64, error)
	StoreAnalysisStatistics(ctx context.Context, runName, zipFile string) (bool, error)
}

// ReportService is the complete remote call catalog of a report server
// product. Every method blocks for one logical call and returns either the
// server's result or an error matching domain.ErrAuthentication,
// domain.ErrRemoteOperation or domain.ErrTransport.
type ReportService interface {
	RunQueries
	ReportQueries
	DiffQueries
	ReviewService
	CountQueries
	ComponentService
	StorageAPI
}
