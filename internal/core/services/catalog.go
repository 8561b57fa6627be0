package services

import "github.com/custodia-labs/reportctl/internal/core/domain"

// Catalog groups.
const (
	GroupRuns       = "runs"
	GroupReports    = "reports"
	GroupDiff       = "diff"
	GroupReview     = "review"
	GroupCounts     = "counts"
	GroupComponents = "components"
	GroupStorage    = "storage"
)

var (
	countParams      = []string{"runIds", "reportFilter", "cmpData"}
	pagedCountParams = []string{"runIds", "reportFilter", "cmpData", "limit", "offset"}
	diffParams       = []string{"baseRunId", "newRunId", "limit", "offset", "sortType", "reportFilters"}
)

// Run operations.
var (
	OpGetRunData = Operation[[]domain.RunData]{
		Name: "getRunData", Group: GroupRuns,
		Params: []string{"runFilter", "limit", "offset", "sortMode"},
	}
	OpGetRunHistory = Operation[[]domain.RunHistoryData]{
		Name: "getRunHistory", Group: GroupRuns,
		Params: []string{"runIds", "limit", "offset", "runHistoryFilter"},
	}
	OpUpdateRunData = Operation[bool]{
		Name: "updateRunData", Group: GroupRuns,
		Params: []string{"runId", "newRunName"},
	}
	OpRemoveRun = Operation[bool]{
		Name: "removeRun", Group: GroupRuns,
		Params: []string{"runId", "runFilter"},
	}
	OpRemoveRunResults = Operation[bool]{
		Name: "removeRunResults", Group: GroupRuns,
		Params: []string{"runIds"},
	}
	OpRemoveRunReports = Operation[bool]{
		Name: "removeRunReports", Group: GroupRuns,
		Params: []string{"runIds", "reportFilter", "cmpData"},
	}
)

// Report operations.
var (
	OpGetRunResults = Operation[[]domain.ReportData]{
		Name: "getRunResults", Group: GroupReports,
		Params: []string{"runIds", "limit", "offset", "sortType", "reportFilter", "cmpData", "getDetails"},
	}
	OpGetRunResultCount = Operation[int64]{
		Name: "getRunResultCount", Group: GroupReports,
		Params: countParams,
	}
	OpGetRunResultTypes = Operation[[]domain.ReportDataTypeCount]{
		Name: "getRunResultTypes", Group: GroupReports,
		Params: []string{"runId", "reportFilters"},
	}
	OpGetReportDetails = Operation[*domain.ReportDetails]{
		Name: "getReportDetails", Group: GroupReports,
		Params: []string{"reportId"},
	}
	OpGetSourceFileData = Operation[*domain.SourceFileData]{
		Name: "getSourceFileData", Group: GroupReports,
		Params: []string{"fileId", "fileContent", "encoding"},
	}
	OpGetLinesInSourceFileContents = Operation[map[int64]map[int64]string]{
		Name: "getLinesInSourceFileContents", Group: GroupReports,
		Params: []string{"linesInFilesRequested", "encoding"},
	}
	OpGetSuppressedBugs = Operation[[]domain.SuppressBugData]{
		Name: "getSuppressedBugs", Group: GroupReports,
		Params: []string{"runId"},
	}
)

// Diff operations.
var (
	OpGetDiffResultsHash = Operation[[]string]{
		Name: "getDiffResultsHash", Group: GroupDiff,
		Params: []string{"runIds", "reportHashes", "diffType", "skipDetectionStatuses"},
	}
	OpGetNewResults = Operation[[]domain.ReportData]{
		Name: "getNewResults", Group: GroupDiff, Params: diffParams,
	}
	OpGetUnresolvedResults = Operation[[]domain.ReportData]{
		Name: "getUnresolvedResults", Group: GroupDiff, Params: diffParams,
	}
	OpGetResolvedResults = Operation[[]domain.ReportData]{
		Name: "getResolvedResults", Group: GroupDiff, Params: diffParams,
	}
)

// Review operations.
var (
	OpChangeReviewStatus = Operation[bool]{
		Name: "changeReviewStatus", Group: GroupReview,
		Params: []string{"reportId", "status", "message"},
	}
	OpChangeReviewStatusByHash = Operation[bool]{
		Name: "changeReviewStatusByHash", Group: GroupReview,
		Params: []string{"bugHash", "status", "message"},
	}
)

// Aggregate operations.
var (
	OpGetSeverityCounts = Operation[map[domain.Severity]int64]{
		Name: "getSeverityCounts", Group: GroupCounts, Params: countParams,
	}
	OpGetReviewStatusCounts = Operation[map[domain.ReviewStatus]int64]{
		Name: "getReviewStatusCounts", Group: GroupCounts, Params: countParams,
	}
	OpGetDetectionStatusCounts = Operation[map[domain.DetectionStatus]int64]{
		Name: "getDetectionStatusCounts", Group: GroupCounts, Params: countParams,
	}
	OpGetCheckerMsgCounts = Operation[map[string]int64]{
		Name: "getCheckerMsgCounts", Group: GroupCounts, Params: pagedCountParams,
	}
	OpGetFileCounts = Operation[map[string]int64]{
		Name: "getFileCounts", Group: GroupCounts, Params: pagedCountParams,
	}
	OpGetCheckerCounts = Operation[[]domain.CheckerCount]{
		Name: "getCheckerCounts", Group: GroupCounts, Params: pagedCountParams,
	}
)

// Source component operations.
var (
	OpAddSourceComponent = Operation[bool]{
		Name: "addSourceComponent", Group: GroupComponents,
		Params: []string{"name", "value", "description"},
	}
	OpGetSourceComponents = Operation[[]domain.SourceComponentData]{
		Name: "getSourceComponents", Group: GroupComponents,
		Params: []string{"componentFilter"},
	}
	OpRemoveSourceComponent = Operation[bool]{
		Name: "removeSourceComponent", Group: GroupComponents,
		Params: []string{"name"},
	}
)

// Storage operations.
var (
	OpGetMissingContentHashes = Operation[[]string]{
		Name: "getMissingContentHashes", Group: GroupStorage,
		Params: []string{"fileHashes"},
	}
	OpMassStoreRun = Operation[int64]{
		Name: "massStoreRun", Group: GroupStorage,
		Params: []string{"name", "tag", "version", "zipfile", "force", "trimPathPrefixes", "description"},
	}
	OpAllowsStoringAnalysisStatistics = Operation[bool]{
		Name: "allowsStoringAnalysisStatistics", Group: GroupStorage,
		Params: []string{},
	}
	OpGetAnalysisStatisticsLimits = Operation[map[domain.StoreLimitKind]int64]{
		Name: "getAnalysisStatisticsLimits", Group: GroupStorage,
		Params: []string{},
	}
	OpStoreAnalysisStatistics = Operation[bool]{
		Name: "storeAnalysisStatistics", Group: GroupStorage,
		Params: []string{"runName", "zipFile"},
	}
)

// Catalog lists every remote operation in catalog order.
func Catalog() []Descriptor {
	return []Descriptor{
		OpGetRunData.Descriptor(),
		OpGetRunHistory.Descriptor(),
		OpUpdateRunData.Descriptor(),
		OpRemoveRun.Descriptor(),
		OpRemoveRunResults.Descriptor(),
		OpRemoveRunReports.Descriptor(),

		OpGetRunResults.Descriptor(),
		OpGetRunResultCount.Descriptor(),
		OpGetRunResultTypes.Descriptor(),
		OpGetReportDetails.Descriptor(),
		OpGetSourceFileData.Descriptor(),
		OpGetLinesInSourceFileContents.Descriptor(),
		OpGetSuppressedBugs.Descriptor(),

		OpGetDiffResultsHash.Descriptor(),
		OpGetNewResults.Descriptor(),
		OpGetUnresolvedResults.Descriptor(),
		OpGetResolvedResults.Descriptor(),

		OpChangeReviewStatus.Descriptor(),
		OpChangeReviewStatusByHash.Descriptor(),

		OpGetSeverityCounts.Descriptor(),
		OpGetReviewStatusCounts.Descriptor(),
		OpGetDetectionStatusCounts.Descriptor(),
		OpGetCheckerMsgCounts.Descriptor(),
		OpGetFileCounts.Descriptor(),
		OpGetCheckerCounts.Descriptor(),

		OpAddSourceComponent.Descriptor(),
		OpGetSourceComponents.Descriptor(),
		OpRemoveSourceComponent.Descriptor(),

		OpGetMissingContentHashes.Descriptor(),
		OpMassStoreRun.Descriptor(),
		OpAllowsStoringAnalysisStatistics.Descriptor(),
		OpGetAnalysisStatisticsLimits.Descriptor(),
		OpStoreAnalysisStatistics.Descriptor(),
	}
}
