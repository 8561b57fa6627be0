package cli

import (
	"bytes"
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/reportctl/internal/core/domain"
	"github.com/custodia-labs/reportctl/internal/core/ports/driving"
)

// mockReportService is a mock implementation of driving.ReportService.
// Methods the commands do not call panic through the nil embedded interface.
type mockReportService struct {
	driving.ReportService

	runs       []domain.RunData
	history    []domain.RunHistoryData
	count      int64
	details    *domain.ReportDetails
	lines      map[int64]map[int64]string
	suppressed []domain.SuppressBugData
	components []domain.SourceComponentData
	severity   map[domain.Severity]int64
	review     map[domain.ReviewStatus]int64
	detection  map[domain.DetectionStatus]int64
	checkers   []domain.CheckerCount
	ok         bool
	err        error

	runFilters   []*domain.RunFilter
	removedRuns  []int64
	renamed      map[int64]string
	reviewStatus domain.ReviewStatus
	reviewMsg    string
	reviewHash   string
	reviewID     int64
	component    domain.SourceComponentData
	countFilter  *domain.ReportFilter
}

func newMockReportService() *mockReportService {
	return &mockReportService{ok: true, renamed: make(map[int64]string)}
}

// GetRunData matches runs by exact name when asked to, otherwise returns all.
func (m *mockReportService) GetRunData(
	_ context.Context, filter *domain.RunFilter, _, _ int64, _ *domain.RunSortMode,
) ([]domain.RunData, error) {
	m.runFilters = append(m.runFilters, filter)
	if m.err != nil {
		return nil, m.err
	}
	if filter == nil || !filter.ExactMatch {
		return m.runs, nil
	}
	var out []domain.RunData
	for _, r := range m.runs {
		for _, name := range filter.Names {
			if r.Name == name {
				out = append(out, r)
			}
		}
	}
	return out, nil
}

func (m *mockReportService) GetRunHistory(
	_ context.Context, _ []int64, _, _ int64, _ *domain.RunHistoryFilter,
) ([]domain.RunHistoryData, error) {
	return m.history, m.err
}

func (m *mockReportService) UpdateRunData(_ context.Context, runID int64, name string) (bool, error) {
	m.renamed[runID] = name
	return m.ok, m.err
}

func (m *mockReportService) RemoveRun(_ context.Context, runID int64, _ *domain.RunFilter) (bool, error) {
	m.removedRuns = append(m.removedRuns, runID)
	return m.ok, m.err
}

func (m *mockReportService) GetRunResultCount(
	_ context.Context, _ []int64, filter *domain.ReportFilter, _ *domain.CompareData,
) (int64, error) {
	m.countFilter = filter
	return m.count, m.err
}

func (m *mockReportService) GetReportDetails(_ context.Context, _ int64) (*domain.ReportDetails, error) {
	return m.details, m.err
}

func (m *mockReportService) GetLinesInSourceFileContents(
	_ context.Context, _ []domain.LinesInFilesRequested, _ domain.Encoding,
) (map[int64]map[int64]string, error) {
	return m.lines, m.err
}

func (m *mockReportService) GetSuppressedBugs(_ context.Context, _ int64) ([]domain.SuppressBugData, error) {
	return m.suppressed, m.err
}

func (m *mockReportService) ChangeReviewStatus(
	_ context.Context, reportID int64, status domain.ReviewStatus, message string,
) (bool, error) {
	m.reviewID, m.reviewStatus, m.reviewMsg = reportID, status, message
	return m.ok, m.err
}

func (m *mockReportService) ChangeReviewStatusByHash(
	_ context.Context, bugHash string, status domain.ReviewStatus, message string,
) (bool, error) {
	m.reviewHash, m.reviewStatus, m.reviewMsg = bugHash, status, message
	return m.ok, m.err
}

func (m *mockReportService) GetSeverityCounts(
	_ context.Context, _ []int64, _ *domain.ReportFilter, _ *domain.CompareData,
) (map[domain.Severity]int64, error) {
	return m.severity, m.err
}

func (m *mockReportService) GetReviewStatusCounts(
	_ context.Context, _ []int64, _ *domain.ReportFilter, _ *domain.CompareData,
) (map[domain.ReviewStatus]int64, error) {
	return m.review, m.err
}

func (m *mockReportService) GetDetectionStatusCounts(
	_ context.Context, _ []int64, _ *domain.ReportFilter, _ *domain.CompareData,
) (map[domain.DetectionStatus]int64, error) {
	return m.detection, m.err
}

func (m *mockReportService) GetCheckerCounts(
	_ context.Context, _ []int64, _ *domain.ReportFilter, _ *domain.CompareData, _, _ int64,
) ([]domain.CheckerCount, error) {
	return m.checkers, m.err
}

func (m *mockReportService) AddSourceComponent(_ context.Context, name, value, description string) (bool, error) {
	m.component = domain.SourceComponentData{Name: name, Value: value, Description: description}
	return m.ok, m.err
}

func (m *mockReportService) GetSourceComponents(_ context.Context, _ []string) ([]domain.SourceComponentData, error) {
	return m.components, m.err
}

func (m *mockReportService) RemoveSourceComponent(_ context.Context, name string) (bool, error) {
	m.component = domain.SourceComponentData{Name: name}
	return m.ok, m.err
}

// mockResultsService is a mock implementation of driving.ResultsService.
type mockResultsService struct {
	reports []domain.ReportData
	err     error

	runIDs []int64
	filter *domain.ReportFilter
	cmp    *domain.CompareData
}

func (m *mockResultsService) AllRunResults(
	_ context.Context, runIDs []int64, filter *domain.ReportFilter, cmp *domain.CompareData,
) ([]domain.ReportData, error) {
	m.runIDs, m.filter, m.cmp = runIDs, filter, cmp
	return m.reports, m.err
}

// mockSuppressService is a mock implementation of driving.SuppressService.
type mockSuppressService struct {
	result  *driving.SuppressImportResult
	err     error
	entries []domain.SuppressEntry
}

func (m *mockSuppressService) Import(
	_ context.Context, entries []domain.SuppressEntry,
) (*driving.SuppressImportResult, error) {
	m.entries = entries
	if m.result == nil && m.err == nil {
		return &driving.SuppressImportResult{Applied: len(entries)}, nil
	}
	return m.result, m.err
}

// mockStoreService is a mock implementation of driving.StoreService.
type mockStoreService struct {
	result  *driving.StoreResult
	records []domain.StoreRecord
	err     error
	req     driving.StoreRequest
}

func (m *mockStoreService) Store(_ context.Context, req driving.StoreRequest) (*driving.StoreResult, error) {
	m.req = req
	if m.err != nil {
		return nil, m.err
	}
	if m.result == nil {
		return &driving.StoreResult{RunID: 1}, nil
	}
	return m.result, nil
}

func (m *mockStoreService) History(_ context.Context, _ int) ([]domain.StoreRecord, error) {
	return m.records, m.err
}

// testServices holds the mocks installed by setupTestServices.
type testServices struct {
	report   *mockReportService
	results  *mockResultsService
	suppress *mockSuppressService
	store    *mockStoreService
}

// setupTestServices installs mock services and returns a cleanup function
// restoring the previous services and resetting command flags.
func setupTestServices() (*testServices, func()) {
	ts := &testServices{
		report:   newMockReportService(),
		results:  &mockResultsService{},
		suppress: &mockSuppressService{},
		store:    &mockStoreService{},
	}

	oldReport, oldResults := reportService, resultsService
	oldSuppress, oldStore, oldConnect := suppressService, storeService, connect

	reportService = ts.report
	resultsService = ts.results
	suppressService = ts.suppress
	storeService = ts.store
	connect = func(*cobra.Command) error { return errors.New("unexpected connect") }

	return ts, func() {
		reportService, resultsService = oldReport, oldResults
		suppressService, storeService, connect = oldSuppress, oldStore, oldConnect
		resetFlags()
	}
}

// resetFlags restores command flag variables to their defaults.
func resetFlags() {
	resetCommandFlags(rootCmd)
	resultsFilters.reset()
	diffFilters.reset()
	sumFilters.reset()
	storeOpts = storeOptions{}
	runsDesc = true
	runsSort = "date"
	diffType = "new"
	sumCheckers = 10
	storeHistoryMax = 20
	runsJSON, resultsJSON, diffJSON, sumJSON, reportJSON, storeJSON = false, false, false, false, false, false
	apiJSON, componentsJSON, suppressJSON = false, false, false
	reportSource, reviewByHash, reviewMessage = false, false, ""
	storeConfigFile, suppressFile = "", ""
	componentDescription, componentValueFile = "", ""
	componentIncludeRules, componentExcludeRules = nil, nil
}

func resetCommandFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	for _, c := range cmd.Commands() {
		resetCommandFlags(c)
	}
}

// execute runs the root command with args and returns its output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
