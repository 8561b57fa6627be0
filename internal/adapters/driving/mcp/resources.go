package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/reportctl/internal/core/services"
)

const (
	// URIScheme is the custom URI scheme for reportctl resources.
	uriScheme = "reportctl://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource describing the remote operations.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "catalog",
		Name:        "catalog",
		Description: "Remote operations of the report server with their parameters",
		MIMEType:    "application/json",
	}, s.handleCatalogResource)

	// Template for the store history of a run.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "runs/{runId}/history",
		Name:        "run-history",
		Description: "Store history of a specific run",
		MIMEType:    "application/json",
	}, s.handleRunHistoryResource)

	// Template for report bug paths.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "reports/{reportId}",
		Name:        "report-details",
		Description: "Bug path of a specific report",
		MIMEType:    "application/json",
	}, s.handleReportResource)
}

// handleCatalogResource returns the operation catalog.
func (s *Server) handleCatalogResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, services.Catalog())
}

// handleRunHistoryResource returns the store history of a run.
func (s *Server) handleRunHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract runId from URI: reportctl://runs/{runId}/history
	runID, ok := extractRunID(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	history, err := s.ports.Report.GetRunHistory(ctx, []int64{runID}, 0, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("getting run history: %w", err)
	}
	return jsonResource(req.Params.URI, history)
}

// handleReportResource returns the bug path of a report.
func (s *Server) handleReportResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract reportId from URI: reportctl://reports/{reportId}
	reportID, ok := extractReportID(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	details, err := s.ports.Report.GetReportDetails(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("getting report details: %w", err)
	}
	if details == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return jsonResource(req.Params.URI, details)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractRunID extracts the run ID from a URI like reportctl://runs/{runId}/history.
func extractRunID(uri string) (int64, bool) {
	const prefix = uriScheme + "runs/"
	const suffix = "/history"

	if !strings.HasPrefix(uri, prefix) || !strings.HasSuffix(uri, suffix) {
		return 0, false
	}
	return parseID(strings.TrimSuffix(strings.TrimPrefix(uri, prefix), suffix))
}

// extractReportID extracts the report ID from a URI like reportctl://reports/{reportId}.
func extractReportID(uri string) (int64, bool) {
	const prefix = uriScheme + "reports/"

	if !strings.HasPrefix(uri, prefix) {
		return 0, false
	}
	return parseID(strings.TrimPrefix(uri, prefix))
}

func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}
