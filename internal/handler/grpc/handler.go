package grpc

import (
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name under which the accounts service reports its
// health in addition to the server-wide "" entry.
const ServiceName = "accounts.v1.Accounts"

// Handler is the root gRPC transport handler.
//
// It exposes the standard grpc.health.v1.Health service. The serving status
// starts as NOT_SERVING and is driven by the health worker through
// [Handler.SetServingStatus].
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.SetServingStatus(false)

	return h
}

// Register attaches every service of the handler to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServingStatus flips the reported health of the server and of
// [ServiceName].
func (h *Handler) SetServingStatus(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}

// Shutdown reports NOT_SERVING for every service and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
