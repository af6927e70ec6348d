// Package grpc exposes the standard gRPC health checking service.
//
// No application RPCs are served; orchestrators use the health service to
// probe whether the process is ready.
package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-contacts/internal/logger"
)

// ServiceName is the service name reported alongside the overall ("")
// health status.
const ServiceName = "contacts"

// Handler owns the health state reported over gRPC.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler returns a handler whose services all report NOT_SERVING until
// [Handler.SetServing] is called.
func NewHandler(logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing marks the process and the contacts service as ready.
func (h *Handler) SetServing() {
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	h.logger.Info().Msg("health status set to SERVING")
}

// Shutdown switches every service to NOT_SERVING and ignores later updates,
// so that watchers are told before the listener closes.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
	h.logger.Info().Msg("health status set to NOT_SERVING")
}
