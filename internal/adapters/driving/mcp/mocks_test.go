package mcp

import (
	"context"

	"github.com/custodia-labs/reportctl/internal/core/domain"
	"github.com/custodia-labs/reportctl/internal/core/ports/driving"
)

// mockReportService is a mock implementation of driving.ReportService.
// Methods the server does not call panic through the nil embedded interface.
type mockReportService struct {
	driving.ReportService

	runs    []domain.RunData
	history []domain.RunHistoryData
	reports []domain.ReportData
	details *domain.ReportDetails
	counts  map[domain.Severity]int64
	changed bool
	err     error

	lastRunFilter *domain.RunFilter
	lastFilter    *domain.ReportFilter
	lastStatus    domain.ReviewStatus
	lastMessage   string
}

func (m *mockReportService) GetRunData(
	_ context.Context, filter *domain.RunFilter, _, _ int64, _ *domain.RunSortMode,
) ([]domain.RunData, error) {
	m.lastRunFilter = filter
	return m.runs, m.err
}

func (m *mockReportService) GetRunHistory(
	_ context.Context, _ []int64, _, _ int64, _ *domain.RunHistoryFilter,
) ([]domain.RunHistoryData, error) {
	return m.history, m.err
}

func (m *mockReportService) GetRunResults(
	_ context.Context, _ []int64, _, _ int64, _ []domain.SortMode,
	filter *domain.ReportFilter, _ *domain.CompareData, _ bool,
) ([]domain.ReportData, error) {
	m.lastFilter = filter
	return m.reports, m.err
}

func (m *mockReportService) GetReportDetails(_ context.Context, _ int64) (*domain.ReportDetails, error) {
	return m.details, m.err
}

func (m *mockReportService) ChangeReviewStatus(
	_ context.Context, _ int64, status domain.ReviewStatus, message string,
) (bool, error) {
	m.lastStatus = status
	m.lastMessage = message
	return m.changed, m.err
}

func (m *mockReportService) GetSeverityCounts(
	_ context.Context, _ []int64, _ *domain.ReportFilter, _ *domain.CompareData,
) (map[domain.Severity]int64, error) {
	return m.counts, m.err
}

// mockResultsService is a mock implementation of driving.ResultsService.
type mockResultsService struct {
	reports []domain.ReportData
	err     error
	calls   int
}

func (m *mockResultsService) AllRunResults(
	_ context.Context, _ []int64, _ *domain.ReportFilter, _ *domain.CompareData,
) ([]domain.ReportData, error) {
	m.calls++
	return m.reports, m.err
}
