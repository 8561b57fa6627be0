package services

import (
	"context"

	"github.com/custodia-labs/reportctl/internal/core/domain"
	"github.com/custodia-labs/reportctl/internal/core/ports/driving"
)

// Ensure ReportClient implements the interface.
var _ driving.ReportService = (*ReportClient)(nil)

// ReportClient exposes the call catalog as typed methods. Every method goes
// through the dispatcher and so shares its session renewal.
type ReportClient struct {
	d *Dispatcher
}

// NewReportClient creates a client that dispatches through d.
func NewReportClient(d *Dispatcher) *ReportClient {
	return &ReportClient{d: d}
}

// Dispatcher returns the underlying dispatcher.
func (c *ReportClient) Dispatcher() *Dispatcher {
	return c.d
}

// GetRunData lists runs matching filter.
func (c *ReportClient) GetRunData(
	ctx context.Context, filter *domain.RunFilter, limit, offset int64, sortMode *domain.RunSortMode,
) ([]domain.RunData, error) {
	return Invoke(ctx, c.d, OpGetRunData, filter, limit, offset, sortMode)
}

// GetRunHistory lists store events of runs.
func (c *ReportClient) GetRunHistory(
	ctx context.Context, runIDs []int64, limit, offset int64, filter *domain.RunHistoryFilter,
) ([]domain.RunHistoryData, error) {
	return Invoke(ctx, c.d, OpGetRunHistory, runIDs, limit, offset, filter)
}

// UpdateRunData renames a run.
func (c *ReportClient) UpdateRunData(ctx context.Context, runID int64, newRunName string) (bool, error) {
	return Invoke(ctx, c.d, OpUpdateRunData, runID, newRunName)
}

// RemoveRun deletes a run.
func (c *ReportClient) RemoveRun(ctx context.Context, runID int64, filter *domain.RunFilter) (bool, error) {
	return Invoke(ctx, c.d, OpRemoveRun, runID, filter)
}

// RemoveRunResults deletes runs with all their results.
func (c *ReportClient) RemoveRunResults(ctx context.Context, runIDs []int64) (bool, error) {
	return Invoke(ctx, c.d, OpRemoveRunResults, runIDs)
}

// RemoveRunReports deletes the reports of runs matching filter.
func (c *ReportClient) RemoveRunReports(
	ctx context.Context, runIDs []int64, filter *domain.ReportFilter, cmp *domain.CompareData,
) (bool, error) {
	return Invoke(ctx, c.d, OpRemoveRunReports, runIDs, filter, cmp)
}

// GetRunResults returns one page of reports.
func (c *ReportClient) GetRunResults(
	ctx context.Context, runIDs []int64, limit, offset int64, sortModes []domain.SortMode,
	filter *domain.ReportFilter, cmp *domain.CompareData, getDetails bool,
) ([]domain.ReportData, error) {
	return Invoke(ctx, c.d, OpGetRunResults, runIDs, limit, offset, sortModes, filter, cmp, getDetails)
}

// GetRunResultCount counts reports.
func (c *ReportClient) GetRunResultCount(
	ctx context.Context, runIDs []int64, filter *domain.ReportFilter, cmp *domain.CompareData,
) (int64, error) {
	return Invoke(ctx, c.d, OpGetRunResultCount, runIDs, filter, cmp)
}

// GetRunResultTypes counts the reports of one run per checker.
func (c *ReportClient) GetRunResultTypes(
	ctx context.Context, runID int64, filter *domain.ReportFilter,
) ([]domain.ReportDataTypeCount, error) {
	return Invoke(ctx, c.d, OpGetRunResultTypes, runID, filter)
}

// GetReportDetails returns the bug path of a report.
func (c *ReportClient) GetReportDetails(ctx context.Context, reportID int64) (*domain.ReportDetails, error) {
	return Invoke(ctx, c.d, OpGetReportDetails, reportID)
}

// GetSourceFileData returns a source file, optionally with its content.
func (c *ReportClient) GetSourceFileData(
	ctx context.Context, fileID int64, fileContent bool, encoding domain.Encoding,
) (*domain.SourceFileData, error) {
	return Invoke(ctx, c.d, OpGetSourceFileData, fileID, fileContent, encoding)
}

// GetLinesInSourceFileContents returns selected lines keyed by file and line.
func (c *ReportClient) GetLinesInSourceFileContents(
	ctx context.Context, requested []domain.LinesInFilesRequested, encoding domain.Encoding,
) (map[int64]map[int64]string, error) {
	return Invoke(ctx, c.d, OpGetLinesInSourceFileContents, requested, encoding)
}

// GetSuppressedBugs lists suppressions recorded for a run.
func (c *ReportClient) GetSuppressedBugs(ctx context.Context, runID int64) ([]domain.SuppressBugData, error) {
	return Invoke(ctx, c.d, OpGetSuppressedBugs, runID)
}

// GetDiffResultsHash filters reportHashes by their status relative to runs.
func (c *ReportClient) GetDiffResultsHash(
	ctx context.Context, runIDs []int64, reportHashes []string, diffType domain.DiffType,
	skipDetectionStatuses []domain.DetectionStatus,
) ([]string, error) {
	return Invoke(ctx, c.d, OpGetDiffResultsHash, runIDs, reportHashes, diffType, skipDetectionStatuses)
}

// GetNewResults returns reports present in newRunID only.
func (c *ReportClient) GetNewResults(
	ctx context.Context, baseRunID, newRunID, limit, offset int64,
	sortModes []domain.SortMode, filter *domain.ReportFilter,
) ([]domain.ReportData, error) {
	return Invoke(ctx, c.d, OpGetNewResults, baseRunID, newRunID, limit, offset, sortModes, filter)
}

// GetUnresolvedResults returns reports present in both runs.
func (c *ReportClient) GetUnresolvedResults(
	ctx context.Context, baseRunID, newRunID, limit, offset int64,
	sortModes []domain.SortMode, filter *domain.ReportFilter,
) ([]domain.ReportData, error) {
	return Invoke(ctx, c.d, OpGetUnresolvedResults, baseRunID, newRunID, limit, offset, sortModes, filter)
}

// GetResolvedResults returns reports present in baseRunID only.
func (c *ReportClient) GetResolvedResults(
	ctx context.Context, baseRunID, newRunID, limit, offset int64,
	sortModes []domain.SortMode, filter *domain.ReportFilter,
) ([]domain.ReportData, error) {
	return Invoke(ctx, c.d, OpGetResolvedResults, baseRunID, newRunID, limit, offset, sortModes, filter)
}

// ChangeReviewStatus sets the review status of one report.
func (c *ReportClient) ChangeReviewStatus(
	ctx context.Context, reportID int64, status domain.ReviewStatus, message string,
) (bool, error) {
	return Invoke(ctx, c.d, OpChangeReviewStatus, reportID, status, message)
}

// ChangeReviewStatusByHash sets the review status of every report with bugHash.
func (c *ReportClient) ChangeReviewStatusByHash(
	ctx context.Context, bugHash string, status domain.ReviewStatus, message string,
) (bool, error) {
	return Invoke(ctx, c.d, OpChangeReviewStatusByHash, bugHash, status, message)
}

// GetSeverityCounts counts reports per severity.
func (c *ReportClient) GetSeverityCounts(
	ctx context.Context, runIDs []int64, filter *domain.ReportFilter, cmp *domain.CompareData,
) (map[domain.Severity]int64, error) {
	return Invoke(ctx, c.d, OpGetSeverityCounts, runIDs, filter, cmp)
}

// GetReviewStatusCounts counts reports per review status.
func (c *ReportClient) GetReviewStatusCounts(
	ctx context.Context, runIDs []int64, filter *domain.ReportFilter, cmp *domain.CompareData,
) (map[domain.ReviewStatus]int64, error) {
	return Invoke(ctx, c.d, OpGetReviewStatusCounts, runIDs, filter, cmp)
}

// GetDetectionStatusCounts counts reports per detection status.
func (c *ReportClient) GetDetectionStatusCounts(
	ctx context.Context, runIDs []int64, filter *domain.ReportFilter, cmp *domain.CompareData,
) (map[domain.DetectionStatus]int64, error) {
	return Invoke(ctx, c.d, OpGetDetectionStatusCounts, runIDs, filter, cmp)
}

// GetCheckerMsgCounts counts reports per checker message.
func (c *ReportClient) GetCheckerMsgCounts(
	ctx context.Context, runIDs []int64, filter *domain.ReportFilter, cmp *domain.CompareData,
	limit, offset int64,
) (map[string]int64, error) {
	return Invoke(ctx, c.d, OpGetCheckerMsgCounts, runIDs, filter, cmp, limit, offset)
}

// GetFileCounts counts reports per file.
func (c *ReportClient) GetFileCounts(
	ctx context.Context, runIDs []int64, filter *domain.ReportFilter, cmp *domain.CompareData,
	limit, offset int64,
) (map[string]int64, error) {
	return Invoke(ctx, c.d, OpGetFileCounts, runIDs, filter, cmp, limit, offset)
}

// GetCheckerCounts counts reports per checker.
func (c *ReportClient) GetCheckerCounts(
	ctx context.Context, runIDs []int64, filter *domain.ReportFilter, cmp *domain.CompareData,
	limit, offset int64,
) ([]domain.CheckerCount, error) {
	return Invoke(ctx, c.d, OpGetCheckerCounts, runIDs, filter, cmp, limit, offset)
}

// AddSourceComponent creates or updates a source component.
func (c *ReportClient) AddSourceComponent(ctx context.Context, name, value, description string) (bool, error) {
	return Invoke(ctx, c.d, OpAddSourceComponent, name, value, description)
}

// GetSourceComponents lists source components whose names match filter.
func (c *ReportClient) GetSourceComponents(
	ctx context.Context, filter []string,
) ([]domain.SourceComponentData, error) {
	return Invoke(ctx, c.d, OpGetSourceComponents, filter)
}

// RemoveSourceComponent deletes a source component.
func (c *ReportClient) RemoveSourceComponent(ctx context.Context, name string) (bool, error) {
	return Invoke(ctx, c.d, OpRemoveSourceComponent, name)
}

// GetMissingContentHashes returns the hashes the server has no content for.
func (c *ReportClient) GetMissingContentHashes(ctx context.Context, fileHashes []string) ([]string, error) {
	return Invoke(ctx, c.d, OpGetMissingContentHashes, fileHashes)
}

// MassStoreRun uploads a base64 encoded zip of results and returns the run ID.
func (c *ReportClient) MassStoreRun(
	ctx context.Context, name, tag, version, zipFile string, force bool,
	trimPathPrefixes []string, description string,
) (int64, error) {
	return Invoke(ctx, c.d, OpMassStoreRun, name, tag, version, zipFile, force, trimPathPrefixes, description)
}

// AllowsStoringAnalysisStatistics reports whether the server accepts statistics.
func (c *ReportClient) AllowsStoringAnalysisStatistics(ctx context.Context) (bool, error) {
	return Invoke(ctx, c.d, OpAllowsStoringAnalysisStatistics)
}

// GetAnalysisStatisticsLimits returns upload size limits in bytes.
func (c *ReportClient) GetAnalysisStatisticsLimits(ctx context.Context) (map[domain.StoreLimitKind]int64, error) {
	return Invoke(ctx, c.d, OpGetAnalysisStatisticsLimits)
}

// StoreAnalysisStatistics uploads a base64 encoded zip of analyzer statistics.
func (c *ReportClient) StoreAnalysisStatistics(ctx context.Context, runName, zipFile string) (bool, error) {
	return Invoke(ctx, c.d, OpStoreAnalysisStatistics, runName, zipFile)
}
