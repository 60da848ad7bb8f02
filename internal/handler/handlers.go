package handler

import (
	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/handler/grpc"
	"github.com/MKhiriev/go-accounts/internal/handler/http"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger).WithRequestTimeout(cfg.RequestTimeout)
		if cfg.RateLimit > 0 {
			handlers.HTTP.WithRateLimiter(http.NewRateLimiter(cfg.RateLimit, cfg.RateBurst))
		}
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

// SetServingStatus forwards storage health to the gRPC health service when
// it is enabled.
func (h *Handlers) SetServingStatus(serving bool) {
	if h.GRPC != nil {
		h.GRPC.SetServingStatus(serving)
	}
}

// Close releases resources held by the handlers.
func (h *Handlers) Close() {
	if h.HTTP != nil {
		h.HTTP.Close()
	}
	if h.GRPC != nil {
		h.GRPC.Shutdown()
	}
}
