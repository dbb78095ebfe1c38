// Package client talks to the Geeks REST API on behalf of the admin console.
//
// # Overview
//
// The Client interface is the transport contract used by list views and
// services: Get for reads, Send for JSON mutations and Upload for
// multipart file uploads. HTTPClient implements it over net/http.
//
// Every request is authenticated with the AuthContext passed in by the
// caller. Authorize rejects an empty or expired token before any I/O.
//
// # Error Handling
//
// Failures are classified into the sentinels of package common and can be
// matched with errors.Is:
//
//   - ErrUnauthorized: missing or expired token, HTTP 401 or 403
//   - ErrUnavailable: transport failure, timeout, HTTP 5xx
//   - ErrRequestFailed: any other non-2xx status or an undecodable body
//
// Non-2xx responses are returned as *StatusError carrying the server's
// message.
//
// The package also bootstraps the local SQLite store (InitDatabase,
// RunMigrations) with embedded goose migrations.
package client
