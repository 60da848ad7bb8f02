package server

import (
	"context"
	"net"

	"github.com/MKhiriev/go-accounts/internal/config"
	myGRPC "github.com/MKhiriev/go-accounts/internal/handler/grpc"
	"github.com/MKhiriev/go-accounts/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		server:  server,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

func (g *grpcServer) serve() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return err
	}

	g.logger.Info().Str("address", g.address).Msg("Launching GRPC server")
	return g.server.Serve(listener)
}

// shutdown waits for in-flight RPCs until ctx expires, then forces the stop.
func (g *grpcServer) shutdown(ctx context.Context) error {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return ctx.Err()
	}
}

func (g *grpcServer) name() string {
	return "grpc"
}
