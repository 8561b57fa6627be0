package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/reportctl/internal/core/domain"
)

func testRuns() []domain.RunData {
	return []domain.RunData{
		{RunID: 1, Name: "nightly", RunDate: "2026-10-01 02:00", ResultCount: 12, VersionTag: "v1.2", Duration: 90},
		{RunID: 2, Name: "release", RunDate: "2026-10-02 02:00", ResultCount: 3},
	}
}

func TestRunsListCmd_PrintsRuns(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.report.runs = testRuns()

	out, err := execute("runs", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "[1] nightly  12 reports")
	assert.Contains(t, out, "Tag: v1.2")
	assert.Contains(t, out, "Duration: 1m30s")
	assert.Contains(t, out, "[2] release  3 reports")
}

func TestRunsListCmd_NameFilter(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("runs", "list", "night*")

	require.NoError(t, err)
	assert.Contains(t, out, "No runs found.")
	require.Len(t, ts.report.runFilters, 1)
	require.NotNil(t, ts.report.runFilters[0])
	assert.Equal(t, []string{"night*"}, ts.report.runFilters[0].Names)
	assert.False(t, ts.report.runFilters[0].ExactMatch)
}

func TestRunsListCmd_InvalidSort(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("runs", "list", "--sort", "colour")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRunsListCmd_JSON(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.report.runs = testRuns()

	out, err := execute("runs", "list", "--json")

	require.NoError(t, err)
	assert.Contains(t, out, `"runId": 1`)
	assert.Contains(t, out, `"name": "release"`)
}

func TestRunsListCmd_RemoteError(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.report.err = domain.NewRequestFailed("getRunData", domain.ErrorCodeUnauthorized, "no access", nil)

	_, err := execute("runs", "list")

	require.Error(t, err)
	assert.True(t, domain.IsRemoteOperation(err))
	assert.Contains(t, renderError(err), "Remote error [UNAUTHORIZED]: no access")
}

func TestRunsHistoryCmd(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.report.runs = testRuns()
	ts.report.history = []domain.RunHistoryData{
		{ID: 5, RunID: 1, RunName: "nightly", VersionTag: "v1.2", User: "alice", Time: "2026-10-01 02:00"},
	}

	out, err := execute("runs", "history", "nightly")

	require.NoError(t, err)
	assert.Contains(t, out, "nightly (v1.2)  by alice")
}

func TestRunsRenameCmd(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.report.runs = testRuns()

	out, err := execute("runs", "rename", "release", "release-2026")

	require.NoError(t, err)
	assert.Equal(t, "release-2026", ts.report.renamed[2])
	assert.Contains(t, out, "Renamed run 2 to release-2026")
}

func TestRunsRenameCmd_UnknownRun(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.report.runs = testRuns()

	_, err := execute("runs", "rename", "missing", "other")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, ts.report.renamed)
}

func TestRunsRemoveCmd(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.report.runs = testRuns()

	out, err := execute("runs", "remove", "7", "nightly")

	require.NoError(t, err)
	assert.Equal(t, []int64{7, 1}, ts.report.removedRuns)
	assert.Contains(t, out, "Removed run 7")
	assert.Contains(t, out, "Removed run 1")
}

func TestRunsRemoveCmd_ServerRefuses(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.report.ok = false

	_, err := execute("runs", "remove", "3")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not remove run 3")
}

func TestRunsRemoveCmd_RequiresArg(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("runs", "remove")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg(s)")
}
