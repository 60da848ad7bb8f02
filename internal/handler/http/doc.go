// Package http implements the REST transport of the accounts service.
//
// It wires chi routes for users, groups and service endpoints and the
// middleware stack in front of them: request tracing, access logging,
// Prometheus metrics, response compression and per-client rate limiting on
// write routes. Domain errors are mapped to status codes and a JSON
// [models.ErrorResponse] body in errors_mapper.go.
package http
