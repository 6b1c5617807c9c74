// Package http implements the HTTP transport layer of the vault.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as service authentication, request
// tracing, and access logging are handled in this package before requests
// are delegated to the service layer. Plaintext tokens never appear in any
// log line emitted here.
package http
