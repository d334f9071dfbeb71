package router

import (
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/asconalumni/alumni-server/internal/api/grpc/health"
	"github.com/asconalumni/alumni-server/internal/api/grpc/middleware"
	"github.com/asconalumni/alumni-server/internal/logger"
)

// Router represents the gRPC health surface of the alumni service.
type Router struct {
	checker *health.Checker
	logger  *logger.Logger
}

// New creates new gRPC Router instance.
func New(checker *health.Checker, logger *logger.Logger) *Router {
	return &Router{
		checker: checker,
		logger:  logger,
	}
}

// Register builds a gRPC server with logging and panic recovery and
// registers the health and reflection services on it.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	recoveryOpts := middleware.NewRecovery(r.logger)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			recovery.UnaryServerInterceptor(recoveryOpts...),
			logging.HandleGRPC,
		),
		grpc.ChainStreamInterceptor(
			recovery.StreamServerInterceptor(recoveryOpts...),
		),
	)
	healthpb.RegisterHealthServer(s, r.checker.Server())
	reflection.Register(s)

	return s
}
