// Package domain defines the core entities for reportctl.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Endpoint: Address of a report server product
//   - RunData, ReportData, ReviewData: Records returned by the report server
//   - ReportFilter, CompareData, SortMode: Query arguments
//   - SourceComponentData: Named path filters stored on the server
//   - AuthenticationError, RemoteOperationError, TransportError: The three
//     failure kinds every remote call can surface
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
