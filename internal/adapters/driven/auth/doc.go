// Package auth provides session token sources for the report server.
//
// LoginSource performs a username and password login against the
// authentication endpoint and is an oauth2.TokenSource. FromTokenSource
// adapts any oauth2.TokenSource to the driven.TokenRefresher port, so a
// session can be renewed from a login or from any other token issuer.
package auth
