package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/reportctl/internal/core/domain"
)

// defaultResultLimit is the page size of run_results without a results service.
const defaultResultLimit = 100

// ListRunsInput is the input schema for the list_runs tool.
type ListRunsInput struct {
	Name  string `json:"name,omitempty" jsonschema:"substring of the run name to match, * is a wildcard"`
	Limit int64  `json:"limit,omitempty" jsonschema:"maximum number of runs to return (default all)"`
}

// ListRunsOutput is the output schema for the list_runs tool.
type ListRunsOutput struct {
	Runs  []RunOutput `json:"runs"`
	Count int         `json:"count"`
}

// RunOutput represents a single run.
type RunOutput struct {
	RunID       int64  `json:"run_id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	ResultCount int64  `json:"result_count"`
	VersionTag  string `json:"version_tag,omitempty"`
}

// RunResultsInput is the input schema for the run_results tool.
type RunResultsInput struct {
	RunIDs       []int64  `json:"run_ids" jsonschema:"IDs of the runs to list reports of"`
	Severities   []string `json:"severities,omitempty" jsonschema:"only reports of these severities (critical, high, medium, low, style)"`
	ReviewStatus []string `json:"review_status,omitempty" jsonschema:"only reports with these review statuses"`
	CheckerNames []string `json:"checker_names,omitempty" jsonschema:"only reports of these checkers, * is a wildcard"`
}

// RunResultsOutput is the output schema for the run_results tool.
type RunResultsOutput struct {
	Reports []ReportOutput `json:"reports"`
	Count   int            `json:"count"`
}

// ReportOutput represents a single report.
type ReportOutput struct {
	ReportID     int64  `json:"report_id"`
	BugHash      string `json:"bug_hash"`
	Checker      string `json:"checker"`
	Message      string `json:"message"`
	File         string `json:"file"`
	Line         int64  `json:"line"`
	Column       int64  `json:"column"`
	Severity     string `json:"severity"`
	ReviewStatus string `json:"review_status"`
	Detection    string `json:"detection_status"`
}

// ChangeReviewStatusInput is the input schema for the change_review_status tool.
type ChangeReviewStatusInput struct {
	ReportID int64  `json:"report_id" jsonschema:"ID of the report to review"`
	Status   string `json:"status" jsonschema:"unreviewed, confirmed, false_positive or intentional"`
	Message  string `json:"message,omitempty" jsonschema:"review comment"`
}

// ChangeReviewStatusOutput is the output schema for the change_review_status tool.
type ChangeReviewStatusOutput struct {
	Changed bool `json:"changed"`
}

// SeverityCountsInput is the input schema for the severity_counts tool.
type SeverityCountsInput struct {
	RunIDs []int64 `json:"run_ids" jsonschema:"IDs of the runs to count reports of"`
}

// SeverityCountsOutput is the output schema for the severity_counts tool.
type SeverityCountsOutput struct {
	Counts map[string]int64 `json:"counts"`
	Total  int64            `json:"total"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_runs",
		Description: "List analysis runs stored on the report server",
	}, s.handleListRuns)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "run_results",
		Description: "List the reports of one or more runs",
	}, s.handleRunResults)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "change_review_status",
		Description: "Set the review status of a report",
	}, s.handleChangeReviewStatus)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "severity_counts",
		Description: "Count the reports of runs by severity",
	}, s.handleSeverityCounts)
}

// handleListRuns handles the list_runs tool invocation.
func (s *Server) handleListRuns(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListRunsInput,
) (*mcp.CallToolResult, ListRunsOutput, error) {
	var filter *domain.RunFilter
	if input.Name != "" {
		filter = &domain.RunFilter{Names: []string{input.Name}}
	}

	runs, err := s.ports.Report.GetRunData(ctx, filter, input.Limit, 0, nil)
	if err != nil {
		return nil, ListRunsOutput{}, err
	}

	output := ListRunsOutput{
		Runs:  make([]RunOutput, len(runs)),
		Count: len(runs),
	}
	for i := range runs {
		output.Runs[i] = RunOutput{
			RunID:       runs[i].RunID,
			Name:        runs[i].Name,
			Date:        runs[i].RunDate,
			ResultCount: runs[i].ResultCount,
			VersionTag:  runs[i].VersionTag,
		}
	}
	return nil, output, nil
}

func (in RunResultsInput) filter() (*domain.ReportFilter, error) {
	if len(in.Severities)+len(in.ReviewStatus)+len(in.CheckerNames) == 0 {
		return nil, nil
	}
	f := &domain.ReportFilter{CheckerName: in.CheckerNames}
	for _, name := range in.Severities {
		sev, err := domain.ParseSeverity(name)
		if err != nil {
			return nil, err
		}
		f.Severity = append(f.Severity, sev)
	}
	for _, name := range in.ReviewStatus {
		st, err := domain.ParseReviewStatus(name)
		if err != nil {
			return nil, err
		}
		f.ReviewStatus = append(f.ReviewStatus, st)
	}
	return f, nil
}

// handleRunResults handles the run_results tool invocation.
func (s *Server) handleRunResults(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RunResultsInput,
) (*mcp.CallToolResult, RunResultsOutput, error) {
	if len(input.RunIDs) == 0 {
		return nil, RunResultsOutput{}, fmt.Errorf("%w: run_ids is required", domain.ErrInvalidInput)
	}
	filter, err := input.filter()
	if err != nil {
		return nil, RunResultsOutput{}, err
	}

	var reports []domain.ReportData
	if s.ports.Results != nil {
		reports, err = s.ports.Results.AllRunResults(ctx, input.RunIDs, filter, nil)
	} else {
		reports, err = s.ports.Report.GetRunResults(
			ctx, input.RunIDs, defaultResultLimit, 0, nil, filter, nil, false)
	}
	if err != nil {
		return nil, RunResultsOutput{}, err
	}

	output := RunResultsOutput{
		Reports: make([]ReportOutput, len(reports)),
		Count:   len(reports),
	}
	for i := range reports {
		r := &reports[i]
		output.Reports[i] = ReportOutput{
			ReportID:     r.ReportID,
			BugHash:      r.BugHash,
			Checker:      r.CheckerID,
			Message:      r.CheckerMsg,
			File:         r.CheckedFile,
			Line:         r.Line,
			Column:       r.Column,
			Severity:     r.Severity.String(),
			ReviewStatus: r.ReviewData.Status.String(),
			Detection:    r.DetectionStatus.String(),
		}
	}
	return nil, output, nil
}

// handleChangeReviewStatus handles the change_review_status tool invocation.
func (s *Server) handleChangeReviewStatus(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ChangeReviewStatusInput,
) (*mcp.CallToolResult, ChangeReviewStatusOutput, error) {
	status, err := domain.ParseReviewStatus(input.Status)
	if err != nil {
		return nil, ChangeReviewStatusOutput{}, err
	}

	ok, err := s.ports.Report.ChangeReviewStatus(ctx, input.ReportID, status, input.Message)
	if err != nil {
		return nil, ChangeReviewStatusOutput{}, err
	}
	return nil, ChangeReviewStatusOutput{Changed: ok}, nil
}

// handleSeverityCounts handles the severity_counts tool invocation.
func (s *Server) handleSeverityCounts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SeverityCountsInput,
) (*mcp.CallToolResult, SeverityCountsOutput, error) {
	counts, err := s.ports.Report.GetSeverityCounts(ctx, input.RunIDs, nil, nil)
	if err != nil {
		return nil, SeverityCountsOutput{}, err
	}

	output := SeverityCountsOutput{Counts: make(map[string]int64, len(counts))}
	for sev, n := range counts {
		output.Counts[sev.String()] = n
		output.Total += n
	}
	return nil, output, nil
}
