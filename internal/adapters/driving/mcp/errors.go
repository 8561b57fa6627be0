// Package mcp provides an MCP (Model Context Protocol) server adapter for reportctl.
// It lets AI assistants list runs, read reports and review findings on a report server.
package mcp

import "errors"

// ErrMissingReportService is returned when the report service is not provided.
var ErrMissingReportService = errors.New("mcp: report service is required")
