// Package server wires and runs the application's transport servers.
//
// It provides orchestration for HTTP and gRPC server lifecycles: startup,
// cancellation driven by the caller's context and graceful shutdown of all
// enabled transports.
package server
