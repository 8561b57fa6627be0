package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/reportctl/internal/core/domain"
)

func setupSummary(m *mockReportService) {
	m.count = 6
	m.severity = map[domain.Severity]int64{domain.SeverityHigh: 2, domain.SeverityLow: 4}
	m.review = map[domain.ReviewStatus]int64{domain.ReviewStatusUnreviewed: 5, domain.ReviewStatusConfirmed: 1}
	m.detection = map[domain.DetectionStatus]int64{domain.DetectionStatusNew: 6}
	m.checkers = []domain.CheckerCount{{Name: "core.NullDereference", Severity: domain.SeverityHigh, Count: 2}}
}

func TestSumCmd(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	setupSummary(ts.report)

	out, err := execute("sum", "1")

	require.NoError(t, err)
	assert.Contains(t, out, "Total reports: 6")
	assert.Contains(t, out, "HIGH")
	assert.Contains(t, out, "UNREVIEWED")
	assert.Contains(t, out, "core.NullDereference")
	assert.Less(t, strings.Index(out, "HIGH "), strings.Index(out, "LOW "), "severities are listed from most severe")
}

func TestSumCmd_JSON(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	setupSummary(ts.report)

	out, err := execute("sum", "1", "--json")

	require.NoError(t, err)
	assert.Contains(t, out, `"total": 6`)
	assert.Contains(t, out, `"40": 2`)
}

func TestSortedKeys(t *testing.T) {
	keys := sortedKeys(map[domain.Severity]int64{
		domain.SeverityCritical: 1, domain.SeverityStyle: 1, domain.SeverityMedium: 1,
	})

	assert.Equal(t, []domain.Severity{domain.SeverityStyle, domain.SeverityMedium, domain.SeverityCritical}, keys)
}
