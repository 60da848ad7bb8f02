package server

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/handler"
	"github.com/MKhiriev/go-accounts/internal/logger"
)

// ShutdownTimeout bounds the graceful stop of all transports.
const ShutdownTimeout = 10 * time.Second

type server struct {
	transports []transport
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.transports = append(servers.transports, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.transports = append(servers.transports, newGRPCServer(handlers.GRPC, cfg, logger))
	}

	if len(servers.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer(ctx context.Context) error {
	errCh := make(chan error, len(s.transports))

	// launch all created servers
	for _, t := range s.transports {
		go func(t transport) {
			if err := t.serve(); err != nil {
				errCh <- fmt.Errorf("%s server: %w", t.name(), err)
			}
		}(t)
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop requested")
	case runErr = <-errCh:
		s.logger.Err(runErr).Msg("server failed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	s.Shutdown(shutdownCtx)

	s.logger.Info().Msg("server Shutdown gracefully")
	return runErr
}

func (s *server) Shutdown(ctx context.Context) {
	for _, t := range s.transports {
		if err := t.shutdown(ctx); err != nil {
			s.logger.Err(err).Str("transport", t.name()).Msg("error during shutdown")
		}
	}
}
