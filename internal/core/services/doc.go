// Package services implements the driving port interfaces.
//
// Session and Dispatcher form the remote call core: every call carries the
// session credential, and a call rejected for authentication is retried
// once after the credential has been renewed. ReportClient exposes the call
// catalog on top of them; ResultsService, SuppressService and StoreService
// build multi-call workflows from the catalog.
//
// Services are pure Go with no CGO dependencies.
package services
