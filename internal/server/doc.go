// Package server runs the REST API and the gRPC health endpoint.
//
// Listeners are bound when the server is created. RunServer blocks until
// SIGTERM, SIGINT or SIGQUIT and then drains both transports.
package server
