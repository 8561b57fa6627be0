package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/reportctl/internal/core/domain"
	"github.com/custodia-labs/reportctl/internal/core/ports/driving"
	"github.com/custodia-labs/reportctl/internal/logger"
)

// ResultsPageSize is the number of reports fetched per getRunResults call.
const ResultsPageSize = 500

// Ensure ResultsService implements the interface.
var _ driving.ResultsService = (*ResultsService)(nil)

// ResultsService fetches complete result sets page by page.
type ResultsService struct {
	reports  driving.ReportQueries
	pageSize int64
}

// NewResultsService creates a results service.
func NewResultsService(reports driving.ReportQueries) *ResultsService {
	return &ResultsService{reports: reports, pageSize: ResultsPageSize}
}

// AllRunResults pages through getRunResults until a short page.
func (s *ResultsService) AllRunResults(
	ctx context.Context, runIDs []int64, filter *domain.ReportFilter, cmp *domain.CompareData,
) ([]domain.ReportData, error) {
	if s.reports == nil {
		return nil, fmt.Errorf("results: %w", domain.ErrNotImplemented)
	}

	var all []domain.ReportData
	for offset := int64(0); ; offset += s.pageSize {
		page, err := s.reports.GetRunResults(ctx, runIDs, s.pageSize, offset, nil, filter, cmp, false)
		if err != nil {
			return nil, fmt.Errorf("fetch results at offset %d: %w", offset, err)
		}
		all = append(all, page...)
		logger.Debug("fetched %d results (total %d)", len(page), len(all))
		if int64(len(page)) < s.pageSize {
			return all, nil
		}
	}
}
