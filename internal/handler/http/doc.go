// Package http implements the REST API of the contacts server.
//
// It exposes route wiring, request handlers, and middleware. Authentication,
// request tracing, access logging, CORS and response compression are
// handled here before requests are delegated to the service layer.
package http
