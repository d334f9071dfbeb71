// Package health reports service readiness over the standard gRPC health
// protocol. Readiness follows the database.
package health

import (
	"context"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/asconalumni/alumni-server/internal/logger"
)

const (
	// ServiceName is the service reported alongside the overall ("") status.
	ServiceName = "alumni.API"

	// DefaultInterval replaces a non-positive check interval.
	DefaultInterval = 10 * time.Second
)

// Pinger checks that the database accepts queries.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Recorder receives every check result.
type Recorder interface {
	SetDatabaseUp(up bool)
}

// Checker periodically pings the database and publishes the result.
type Checker struct {
	pinger   Pinger
	server   *health.Server
	recorder Recorder
	interval time.Duration
	logger   *logger.Logger
}

// NewChecker creates a Checker. The server starts NOT_SERVING until the
// first successful ping.
func NewChecker(pinger Pinger, recorder Recorder, interval time.Duration, logger *logger.Logger) *Checker {
	if interval <= 0 {
		interval = DefaultInterval
	}

	server := health.NewServer()
	server.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	server.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Checker{
		pinger:   pinger,
		server:   server,
		recorder: recorder,
		interval: interval,
		logger:   logger,
	}
}

// Server returns the health service to register on a gRPC server.
func (c *Checker) Server() *health.Server {
	return c.server
}

// Run checks until ctx is done, then marks the service NOT_SERVING so that
// in-flight watchers see the shutdown.
func (c *Checker) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			c.server.Shutdown()
			return nil
		case <-ticker.C:
			c.Check(ctx)
		}
	}
}

// Check runs a single check bounded by the check interval.
func (c *Checker) Check(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, c.interval)
	defer cancel()

	up := true
	if err := c.pinger.Ping(ctx); err != nil {
		up = false
		c.logger.Warn("Health checker: database ping failed",
			"error", err.Error())
	}

	status := healthpb.HealthCheckResponse_SERVING
	if !up {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	c.server.SetServingStatus("", status)
	c.server.SetServingStatus(ServiceName, status)
	c.recorder.SetDatabaseUp(up)

	return up
}
