// Package rpc implements the driven.Transport port as JSON-RPC 2.0 over
// HTTP POST.
//
// A request carries the operation name as method and the ordered arguments
// as a JSON array. The result member holds either {"success": value} or
// {"requestFailed": {"errorCode", "message", "extraInfo"}}; the error code
// decides between authentication and remote operation failures.
package rpc
