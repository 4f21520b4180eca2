package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	gogrpc "google.golang.org/grpc"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	healthProbeTimeout = time.Second
	healthInitialDelay = 200 * time.Millisecond
	healthMaximumDelay = time.Second
)

// WaitForHealth blocks until the gRPC health check for service reports
// SERVING or the context ends. An empty service checks the whole server.
func WaitForHealth(ctx context.Context, conn *gogrpc.ClientConn, service string, logger *slog.Logger) error {
	if conn == nil {
		return fmt.Errorf("gRPC connection is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	healthClient := grpc_health_v1.NewHealthClient(conn)
	backoff := healthInitialDelay
	for {
		callCtx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
		response, err := healthClient.Check(callCtx, &grpc_health_v1.HealthCheckRequest{Service: service})
		cancel()
		if err == nil && response.GetStatus() == grpc_health_v1.HealthCheckResponse_SERVING {
			if logger != nil {
				logger.Debug("gRPC health check is SERVING", "service", service)
			}
			return nil
		}
		if logger != nil {
			if err != nil {
				logger.Debug("waiting for gRPC health", "service", service, "error", err)
			} else {
				logger.Debug("waiting for gRPC health", "service", service, "status", response.GetStatus().String())
			}
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for gRPC health: %w", ctx.Err())
		case <-time.After(backoff):
		}

		if backoff < healthMaximumDelay {
			backoff = min(backoff*2, healthMaximumDelay)
		}
	}
}
