// Package driving defines interfaces that external actors (CLI, MCP server)
// use to interact with core services. These are the "driving" ports in
// hexagonal architecture terminology - they drive the application.
//
// ReportService is the remote call catalog. The workflow services build
// multi-call operations (paging, suppress import, store) on top of it.
//
// Implementations of these interfaces live in internal/core/services.
package driving
