package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/reportctl/internal/core/domain"
)

func TestReviewCmd_ByID(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("review", "42", "false_positive", "-m", "unreachable")

	require.NoError(t, err)
	assert.Equal(t, int64(42), ts.report.reviewID)
	assert.Equal(t, domain.ReviewStatusFalsePositive, ts.report.reviewStatus)
	assert.Equal(t, "unreachable", ts.report.reviewMsg)
	assert.Contains(t, out, "Review status of 42 set to FALSE_POSITIVE")
}

func TestReviewCmd_ByHash(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("review", "--hash", "abc123", "confirmed")

	require.NoError(t, err)
	assert.Equal(t, "abc123", ts.report.reviewHash)
	assert.Equal(t, domain.ReviewStatusConfirmed, ts.report.reviewStatus)
	assert.Zero(t, ts.report.reviewID)
}

func TestReviewCmd_InvalidStatus(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("review", "42", "maybe")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReviewCmd_RemoteError(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.report.err = domain.NewRequestFailed(
		"changeReviewStatus", domain.ErrorCodeDatabase, "no report found with id 42", nil)

	_, err := execute("review", "42", "confirmed")

	require.Error(t, err)
	assert.Contains(t, renderError(err), "Remote error [DATABASE]: no report found with id 42")
}

func TestReviewCmd_NotChanged(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.report.ok = false

	_, err := execute("review", "42", "confirmed")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not change")
}
