package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// RunServer starts serving requests and blocks until ctx is cancelled or
	// a transport fails, then shuts every transport down.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	// Pending work is abandoned once ctx expires.
	Shutdown(ctx context.Context)
}

// transport is one listener managed by [Server].
type transport interface {
	// serve blocks until the transport stops. A graceful stop returns nil.
	serve() error
	shutdown(ctx context.Context) error
	name() string
}
