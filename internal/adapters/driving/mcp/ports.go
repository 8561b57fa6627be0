package mcp

import (
	"github.com/custodia-labs/reportctl/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Report is the remote report service.
	Report driving.ReportService

	// Results pages through run results. Optional; without it run_results
	// returns a single page.
	Results driving.ResultsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Report == nil {
		return ErrMissingReportService
	}
	return nil
}
